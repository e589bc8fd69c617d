package bundler

import (
	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/cachestore"
	"github.com/pjordaan/asset-lib/internal/pipeline"
)

func (d *Driver) buildEntry(entryPoint string) error {
	entryFile := bfile.NewFile(bfile.Join(d.options.ProjectRoot, entryPoint))

	deps, err := d.find.All(entryFile)
	if err != nil {
		return err
	}

	pipe := d.newPipe()
	part, err := PartitionDeps(deps, pipe.Peek)
	if err != nil {
		return err
	}

	entryName := EntryName(entryPoint)
	bundleTarget := BundleTargetPath(d.options.WebRoot, d.options.OutputDir, entryName)
	vendorTarget := VendorTargetPath(d.options.WebRoot, d.options.OutputDir, entryName)

	if err := d.buildTarget(bundleTarget, part.Bundle, pipe); err != nil {
		return err
	}
	if err := d.buildTarget(vendorTarget, part.Vendor, pipe); err != nil {
		return err
	}
	for _, asset := range part.Assets {
		if err := d.buildAssetDependency(asset.File); err != nil {
			return err
		}
	}
	return nil
}

// buildTarget writes one bundle or vendor artifact if it is stale,
// skipping the freshness check entirely in non-dev mode (spec section
// 4.6: "In non-dev mode the oracle is bypassed and outputs are always
// rewritten").
func (d *Driver) buildTarget(target string, deps []bfile.Dependency, pipe *pipeline.Pipeline) error {
	if len(deps) == 0 {
		return nil
	}

	if d.options.IsDev && d.store != nil {
		stale, err := d.store.IsStale(target, InputPaths(deps), cachestore.OSStat)
		if err != nil {
			return err
		}
		if !stale {
			return nil
		}
	}

	content, err := pipe.Push(deps, target, d.readFile, cachestore.OSStat)
	if err != nil {
		return err
	}
	return d.writeFile(target, content)
}

// buildAssetDependency processes one asset reached through an entry's
// dependency graph: spec section 4.5 treats every such asset as "a fresh
// root processed as its own pipeline push".
func (d *Driver) buildAssetDependency(assetFile bfile.File) error {
	deps, err := d.find.All(assetFile)
	if err != nil {
		return err
	}

	pipe := d.newPipe()
	terminalExt, err := pipe.Peek(assetFile)
	if err != nil {
		return err
	}

	target := AssetTargetPath(d.options.WebRoot, d.options.OutputDir, d.options.SourceRoot, assetFile, terminalExt)
	return d.buildTarget(target, deps, pipe)
}

func (d *Driver) buildStandaloneAsset(assetPath string) error {
	assetFile := bfile.NewFile(bfile.Join(d.options.ProjectRoot, assetPath))
	return d.buildAssetDependency(assetFile)
}
