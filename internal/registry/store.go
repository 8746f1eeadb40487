// Package registry holds the CSS produced by a transform session and
// publishes it either as virtual modules or as chunk associations.
//
// All stores are keyed by module identity and safe for concurrent use.
// They belong to a single session; nothing here is package-global.
package registry

import (
	"sort"
	"sync"
)

// VirtualModule is the CSS exposed under a virtual id.
type VirtualModule struct {
	ID  string
	CSS string
}

// VirtualModules maps virtual ids to their CSS.
type VirtualModules struct {
	mu   sync.RWMutex
	byID map[string]string
}

// NewVirtualModules returns an empty store.
func NewVirtualModules() *VirtualModules {
	return &VirtualModules{byID: make(map[string]string)}
}

// Put stores css under id, replacing any previous entry.
func (v *VirtualModules) Put(id, css string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.byID[id] = css
}

// Get returns the CSS stored under id.
func (v *VirtualModules) Get(id string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	css, ok := v.byID[id]
	return css, ok
}

// Has reports whether id is registered.
func (v *VirtualModules) Has(id string) bool {
	_, ok := v.Get(id)
	return ok
}

// List returns every module sorted by id.
func (v *VirtualModules) List() []VirtualModule {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]VirtualModule, 0, len(v.byID))
	for id, css := range v.byID {
		out = append(out, VirtualModule{ID: id, CSS: css})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ChunkEntry is the CSS recorded for one module in build mode. Seq orders
// entries by the time they were recorded.
type ChunkEntry struct {
	Path string
	CSS  string
	Seq  uint64
}

// ChunkCSS maps module paths to their CSS in build mode.
type ChunkCSS struct {
	mu     sync.RWMutex
	seq    uint64
	byPath map[string]ChunkEntry
}

// NewChunkCSS returns an empty store.
func NewChunkCSS() *ChunkCSS {
	return &ChunkCSS{byPath: make(map[string]ChunkEntry)}
}

// Record stores css for modulePath. Re-recording a path replaces its CSS
// and moves it to the end of the processing order.
func (c *ChunkCSS) Record(modulePath, css string) {
	key := NormalizePath(modulePath)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.byPath[key] = ChunkEntry{Path: key, CSS: css, Seq: c.seq}
}

// Len returns the number of recorded modules.
func (c *ChunkCSS) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byPath)
}

// Ordered returns the recorded entries for paths, sorted by processing
// order. Paths without CSS and duplicate paths are skipped.
func (c *ChunkCSS) Ordered(paths []string) []ChunkEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool, len(paths))
	var out []ChunkEntry
	for _, p := range paths {
		key := NormalizePath(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		if e, ok := c.byPath[key]; ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// PendingStore holds transformed text computed by a hot update until the
// next transform of the same path consumes it.
type PendingStore struct {
	mu     sync.Mutex
	byPath map[string]string
}

// NewPendingStore returns an empty store.
func NewPendingStore() *PendingStore {
	return &PendingStore{byPath: make(map[string]string)}
}

// Put stores code for modulePath, replacing an unconsumed entry.
func (p *PendingStore) Put(modulePath, code string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byPath[NormalizePath(modulePath)] = code
}

// Take returns and removes the entry for modulePath.
func (p *PendingStore) Take(modulePath string) (string, bool) {
	key := NormalizePath(modulePath)
	p.mu.Lock()
	defer p.mu.Unlock()
	code, ok := p.byPath[key]
	if ok {
		delete(p.byPath, key)
	}
	return code, ok
}

// Len returns the number of unconsumed entries.
func (p *PendingStore) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byPath)
}
