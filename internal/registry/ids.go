package registry

import (
	"path/filepath"
	"strings"
)

// DefaultPrefix starts every virtual CSS module id.
const DefaultPrefix = "virtual:gfcss/"

// internalMarker marks ids that have no file behind them, so other
// resolvers and loaders leave them alone.
const internalMarker = "\x00"

// NormalizePath cleans p and converts it to forward slashes. Module paths
// are keyed in this form everywhere in the registry.
func NormalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// VirtualID derives the virtual module id for a source module path.
func VirtualID(prefix, modulePath string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + strings.TrimPrefix(NormalizePath(modulePath), "/") + ".css"
}

// InternalID returns the resolved identity of a virtual id.
func InternalID(virtualID string) string {
	return internalMarker + virtualID
}

// PublicID strips the internal marker. The second result is false when id
// is not an internal id.
func PublicID(id string) (string, bool) {
	if !strings.HasPrefix(id, internalMarker) {
		return "", false
	}
	return strings.TrimPrefix(id, internalMarker), true
}
