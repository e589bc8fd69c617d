// Package bundler implements spec section 4.5 (entry/asset partition),
// 4.6 (freshness oracle wiring), and 4.7 (the driver that orchestrates
// the whole build and writes outputs).
package bundler

import (
	"strings"

	"github.com/pjordaan/asset-lib/internal/bfile"
)

// externalPackagesMarker is the directory segment spec section 3's
// "vendor" invariant names: any dependency whose resolved path contains
// this segment is external.
const externalPackagesMarker = "/node_modules/"

// scriptExtension is the one terminal extension spec section 4.5 treats
// as "script-like". Every processor chain in this module resolves
// scripts down to plain JS; anything else (stylesheets, images, ...) is
// an asset.
const scriptExtension = ".js"

// Partition is the result of splitting one entry's dependency list into
// the three groups spec section 4.5 names.
type Partition struct {
	Bundle []bfile.Dependency
	Vendor []bfile.Dependency
	Assets []bfile.Dependency
}

// PeekFunc computes the terminal extension a dependency's file would
// have after transpilation, without running any content transform.
type PeekFunc func(f bfile.File) (string, error)

// PartitionDeps is a pure function of deps and the peek oracle: it never
// reads file contents itself (spec section 4.5). A dependency reached only
// as an inlined resource (e.g. a CSS url() reference) always lands in
// Assets regardless of its terminal extension -- spec section 3 requires
// it be emitted separately rather than concatenated into Bundle/Vendor.
func PartitionDeps(deps []bfile.Dependency, peek PeekFunc) (Partition, error) {
	var p Partition
	for _, dep := range deps {
		if dep.Virtual {
			continue
		}
		if dep.InlinedAsset {
			p.Assets = append(p.Assets, dep)
			continue
		}

		terminalExt, err := peek(dep.File)
		if err != nil {
			return Partition{}, err
		}

		if terminalExt != scriptExtension {
			p.Assets = append(p.Assets, dep)
			continue
		}
		if isExternal(dep.File) {
			p.Vendor = append(p.Vendor, dep)
		} else {
			p.Bundle = append(p.Bundle, dep)
		}
	}
	return p, nil
}

func isExternal(f bfile.File) bool {
	return strings.Contains("/"+f.Path(), externalPackagesMarker)
}

// InputPaths returns the sorted-at-use-site list of on-disk paths backing
// deps, for the freshness oracle's input-set comparison.
func InputPaths(deps []bfile.Dependency) []string {
	paths := make([]string, 0, len(deps))
	for _, dep := range deps {
		if dep.Virtual {
			continue
		}
		paths = append(paths, dep.File.Path())
	}
	return paths
}
