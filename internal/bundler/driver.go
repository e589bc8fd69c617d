package bundler

import (
	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/cachestore"
	"github.com/pjordaan/asset-lib/internal/collect"
	"github.com/pjordaan/asset-lib/internal/config"
	"github.com/pjordaan/asset-lib/internal/finder"
	"github.com/pjordaan/asset-lib/internal/iofs"
	"github.com/pjordaan/asset-lib/internal/logger"
	"github.com/pjordaan/asset-lib/internal/pipeline"
	"github.com/pjordaan/asset-lib/internal/resolver"
	"github.com/pjordaan/asset-lib/internal/shim"
)

// Driver orchestrates spec section 4.7's build: find, partition, check
// freshness, push through the pipeline, and write.
type Driver struct {
	fs       iofs.FS
	options  config.Options
	log      logger.Log
	res      *resolver.Resolver
	registry *collect.Registry
	store    *cachestore.Store
	find     *finder.Finder
	newPipe  func() *pipeline.Pipeline
}

// New wires every core package together per the SPEC_FULL domain-stack
// layout: one Resolver, one collector Registry, one disk-backed Store,
// one Finder, and a Pipeline factory (each entry point gets a fresh
// Pipeline instance shared by its bundle and vendor targets, and each
// asset gets its own, the way spec section 4.5 treats every asset as "a
// fresh root processed as its own pipeline push").
func New(fs iofs.FS, options config.Options, processors []pipeline.Processor, events pipeline.Events) *Driver {
	res := resolver.New(fs, options.Extensions, options.IncludePaths)
	registry := collect.DefaultRegistry()

	var store *cachestore.Store
	if options.IsDev {
		store = cachestore.New(options.CacheDir)
	}

	fd := finder.New(fs, res, registry, makeCollectFn(store, registry))

	return &Driver{
		fs:       fs,
		options:  options,
		log:      options.LogSink,
		res:      res,
		registry: registry,
		store:    store,
		find:     fd,
		newPipe: func() *pipeline.Pipeline {
			return pipeline.New(pipeline.Config{
				Cwd:        options.ProjectRoot,
				Processors: processors,
				Events:     events,
				Cache:      store,
				SourceRoot: options.SourceRoot,
			})
		},
	}
}

// makeCollectFn adapts collect.Registry's per-file first-match dispatch
// into the single finder.CollectFunc signature, each concrete collector
// still going through collect.CachedCollect for memoization.
func makeCollectFn(store *cachestore.Store, registry *collect.Registry) finder.CollectFunc {
	cached := make(map[collect.Collector]finder.CollectFunc)
	return func(res *resolver.Resolver, f bfile.File, contents string) *bfile.ImportCollection {
		c := registry.Find(f)
		if c == nil {
			return &bfile.ImportCollection{}
		}
		fn, ok := cached[c]
		if !ok {
			fn = collect.CachedCollect(store, c)
			cached[c] = fn
		}
		return fn(res, f, contents)
	}
}

func (d *Driver) readFile(f bfile.File) (string, error) {
	return d.fs.ReadFile(f.Path())
}

// Run executes spec section 4.7's full build: every entry point, then
// every top-level asset, then the runtime shim.
func (d *Driver) Run() error {
	for _, entryPoint := range d.options.EntryPoints {
		if err := d.buildEntry(entryPoint); err != nil {
			return err
		}
	}
	for _, assetPath := range d.options.AssetFiles {
		if err := d.buildStandaloneAsset(assetPath); err != nil {
			return err
		}
	}
	return d.buildShim()
}

func (d *Driver) buildShim() error {
	target := ShimTargetPath(d.options.WebRoot, d.options.OutputDir)
	source := shim.For(d.options.IsDev)

	if d.options.IsDev && d.store != nil {
		stale, err := d.store.IsStale(target, []string{"__shim__"}, cachestore.OSStat)
		if err != nil {
			return err
		}
		if !stale {
			return nil
		}
	}
	return d.writeFile(target, source)
}
