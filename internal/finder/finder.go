// Package finder implements spec section 4.3's Import Finder: the
// depth-first, post-order traversal that turns one entry file into its
// deduplicated, topologically-ordered dependency list.
package finder

import (
	"github.com/pjordaan/asset-lib/internal/berrors"
	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/collect"
	"github.com/pjordaan/asset-lib/internal/iofs"
	"github.com/pjordaan/asset-lib/internal/resolver"
)

// CollectFunc is the cached, content-hash-memoized collection function
// collect.CachedCollect produces, threaded through so the same memo table
// is reused for every file visited in one Finder.All call as well as
// across separate invocations.
type CollectFunc func(res *resolver.Resolver, f bfile.File, contents string) *bfile.ImportCollection

// Finder walks the import graph rooted at one file.
type Finder struct {
	fs       iofs.FS
	res      *resolver.Resolver
	registry *collect.Registry
	collect  CollectFunc
}

// New builds a Finder. collectFn is typically collect.CachedCollect
// wrapping the collector Registry picks for each file.
func New(fs iofs.FS, res *resolver.Resolver, registry *collect.Registry, collectFn CollectFunc) *Finder {
	return &Finder{fs: fs, res: res, registry: registry, collect: collectFn}
}

// All returns the transitive, deduplicated closure of imports rooted at
// entry, with entry itself last in emission order (spec section 4.3).
// Any virtual dependencies (e.g. the runtime shim) are prepended ahead of
// the traversal result, exactly as spec section 4.3 describes entry
// points doing.
func (fd *Finder) All(entry bfile.File, virtual ...bfile.Dependency) ([]bfile.Dependency, error) {
	v := &visitor{
		fd:           fd,
		visited:      make(map[string]bool),
		inlinedAsset: make(map[string]bool),
		moduleNames:  make(map[string]string),
	}
	if err := v.visit(entry); err != nil {
		return nil, err
	}

	result := make([]bfile.Dependency, 0, len(virtual)+len(v.deps))
	result = append(result, virtual...)
	for _, dep := range v.deps {
		if v.inlinedAsset[dep.File.Path()] {
			dep.InlinedAsset = true
		}
		result = append(result, dep)
	}
	return result, nil
}

type visitor struct {
	fd           *Finder
	visited      map[string]bool
	inlinedAsset map[string]bool
	moduleNames  map[string]string
	deps         []bfile.Dependency
}

func (v *visitor) visit(f bfile.File) error {
	if v.visited[f.Path()] {
		return nil
	}
	v.visited[f.Path()] = true

	collector := v.fd.registry.Find(f)
	if collector != nil {
		if !iofs.Exists(v.fd.fs, f.Path()) {
			return &berrors.NotFoundError{Specifier: f.Path(), From: ""}
		}
		contents, err := v.fd.fs.ReadFile(f.Path())
		if err != nil {
			return &berrors.IOError{Path: f.Path(), Op: "read", Err: err}
		}
		coll := v.fd.collect(v.fd.res, f, contents)

		for _, imp := range coll.Imports() {
			if imp.IsModule {
				v.moduleNames[imp.ResolvedFile().Path()] = imp.Module.Name
			}
			if err := v.visit(imp.ResolvedFile()); err != nil {
				return err
			}
		}
		for _, resource := range coll.Resources() {
			if err := v.visit(resource); err != nil {
				return err
			}
			v.inlinedAsset[resource.Path()] = true
		}
	}

	v.deps = append(v.deps, bfile.NewDependency(f, v.moduleNames[f.Path()]))
	return nil
}
