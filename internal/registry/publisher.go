package registry

// Publisher makes the CSS of one transformed module available to the
// host. It is chosen once per session.
type Publisher interface {
	// Publish stores css for modulePath. It returns the id the module must
	// import to pull the CSS in, or "" when no import is needed.
	Publish(modulePath, css string) string
}

// VirtualModulePublisher exposes CSS as virtual modules (dev mode).
type VirtualModulePublisher struct {
	Prefix  string
	Modules *VirtualModules
}

// Publish implements Publisher.
func (p *VirtualModulePublisher) Publish(modulePath, css string) string {
	id := VirtualID(p.Prefix, modulePath)
	p.Modules.Put(id, css)
	return id
}

// ChunkAssociationPublisher records CSS against module paths so it can be
// appended to chunk assets once the bundle is known (build mode).
type ChunkAssociationPublisher struct {
	Chunks *ChunkCSS
}

// Publish implements Publisher.
func (p *ChunkAssociationPublisher) Publish(modulePath, css string) string {
	p.Chunks.Record(modulePath, css)
	return ""
}
