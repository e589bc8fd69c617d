// Package collect implements spec section 4.2's import collectors:
// per-extension, regex-grade parsers that extract imports and resources
// from a file's contents. Matching is intentionally pattern-based rather
// than AST-level -- spec section 9 explicitly allows keeping this for
// parity -- so a dynamic or malformed specifier simply fails to resolve
// and is dropped rather than aborting the scan.
package collect

import (
	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/resolver"
)

// Collector is the contract spec section 4.2 names: supports(File) and
// collect(cwd, File, ImportCollection).
type Collector interface {
	Supports(f bfile.File) bool
	Collect(res *resolver.Resolver, f bfile.File, contents string, out *bfile.ImportCollection)
}

// Registry is the closed, ordered set of collectors consulted for a file.
// First-match wins, the same semantics as the teacher's extension-indexed
// loader table (internal/config's ExtensionToLoader map), re-architected
// here as an explicit slice per design note "Dynamic dispatch over
// collectors/processors".
type Registry struct {
	collectors []Collector
}

// NewRegistry builds a Registry trying each collector in order.
func NewRegistry(collectors ...Collector) *Registry {
	return &Registry{collectors: collectors}
}

// Find returns the first collector that supports f, or nil if none do --
// spec section 4.3 treats that file as a leaf.
func (r *Registry) Find(f bfile.File) Collector {
	for _, c := range r.collectors {
		if c.Supports(f) {
			return c
		}
	}
	return nil
}

// DefaultRegistry wires the core's built-in collectors in priority order:
// the ES-module collector first (it claims .js and .ts and also scans for
// require calls), then the JS collector (left with .node), then JSON.
func DefaultRegistry() *Registry {
	return NewRegistry(
		ESModuleCollector{},
		JSCollector{},
		JSONCollector{},
	)
}
