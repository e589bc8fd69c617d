package finder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/collect"
	"github.com/pjordaan/asset-lib/internal/config"
	"github.com/pjordaan/asset-lib/internal/finder"
	"github.com/pjordaan/asset-lib/internal/iofs"
	"github.com/pjordaan/asset-lib/internal/resolver"
)

func newFinder(fs iofs.FS) *finder.Finder {
	res := resolver.New(fs, config.DefaultExtensions, nil)
	registry := collect.DefaultRegistry()
	collectFn := func(res *resolver.Resolver, f bfile.File, contents string) *bfile.ImportCollection {
		var out bfile.ImportCollection
		if c := registry.Find(f); c != nil {
			c.Collect(res, f, contents, &out)
		}
		return &out
	}
	return finder.New(fs, res, registry, collectFn)
}

func paths(deps []bfile.Dependency) []string {
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = d.File.Path()
	}
	return out
}

// Property 3 — every import precedes its importer in emission order, and
// the entry point is last.
func TestFinderEmitsImportsBeforeImporterEntryLast(t *testing.T) {
	fs := iofs.NewMock(map[string]string{
		"main.js": `require("./a"); require("./b");`,
		"a.js":    `require("./c");`,
		"b.js":    ``,
		"c.js":    ``,
	})
	fd := newFinder(fs)

	deps, err := fd.All(bfile.NewFile("main.js"))
	require.NoError(t, err)

	got := paths(deps)
	assert.Equal(t, []string{"c.js", "a.js", "b.js", "main.js"}, got)
}

// Property 2 — a diamond dependency (both a.js and b.js require c.js) is
// visited exactly once in the result.
func TestFinderDedupesDiamondDependency(t *testing.T) {
	fs := iofs.NewMock(map[string]string{
		"main.js": `require("./a"); require("./b");`,
		"a.js":    `require("./c");`,
		"b.js":    `require("./c");`,
		"c.js":    ``,
	})
	fd := newFinder(fs)

	deps, err := fd.All(bfile.NewFile("main.js"))
	require.NoError(t, err)

	got := paths(deps)
	assert.Len(t, got, 4)
	count := 0
	for _, p := range got {
		if p == "c.js" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestFinderPrependsVirtualDependencies(t *testing.T) {
	fs := iofs.NewMock(map[string]string{
		"main.js": ``,
	})
	fd := newFinder(fs)

	shim := bfile.Dependency{File: bfile.NewFile("__shim.js"), Virtual: true}
	deps, err := fd.All(bfile.NewFile("main.js"), shim)
	require.NoError(t, err)

	require.Len(t, deps, 2)
	assert.Equal(t, "__shim.js", deps[0].File.Path())
	assert.True(t, deps[0].Virtual)
	assert.Equal(t, "main.js", deps[1].File.Path())
}

func TestFinderErrorsOnUnresolvedEntry(t *testing.T) {
	fs := iofs.NewMock(map[string]string{})
	fd := newFinder(fs)

	_, err := fd.All(bfile.NewFile("missing.js"))
	assert.Error(t, err)
}

// A file with no registered collector (e.g. a stylesheet) is a leaf: it is
// emitted but never scanned for further edges.
func TestFinderTreatsUnsupportedExtensionAsLeaf(t *testing.T) {
	fs := iofs.NewMock(map[string]string{
		"main.css": `body { color: red; }`,
	})
	fd := newFinder(fs)

	deps, err := fd.All(bfile.NewFile("main.css"))
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "main.css", deps[0].File.Path())
}

// A bare-specifier import's resolved Dependency carries the package's
// module name (the identity used in the emitted runtime registry), not the
// empty string -- Module naming must survive traversal, not just resolution.
func TestFinderPropagatesModuleNameForBareSpecifierImports(t *testing.T) {
	fs := iofs.NewMock(map[string]string{
		"app/main.js":                   `require("lodash");`,
		"node_modules/lodash/index.js": `module.exports = {};`,
	})
	fd := newFinder(fs)

	deps, err := fd.All(bfile.NewFile("app/main.js"))
	require.NoError(t, err)

	require.Len(t, deps, 2)
	assert.Equal(t, "node_modules/lodash/index.js", deps[0].File.Path())
	assert.Equal(t, "lodash", deps[0].ModuleName)
	assert.Equal(t, "app/main.js", deps[1].File.Path())
	assert.Equal(t, "", deps[1].ModuleName)
}

// resourceCollector is a fake Collector exercising the AddResource path
// (e.g. a stylesheet's url() references), which the built-in collectors
// never populate.
type resourceCollector struct{ resource string }

func (c resourceCollector) Supports(f bfile.File) bool { return f.Extension() == ".css" }
func (c resourceCollector) Collect(res *resolver.Resolver, f bfile.File, contents string, out *bfile.ImportCollection) {
	out.AddResource(bfile.NewFile(c.resource))
}

func TestFinderMarksResourcesAsInlinedAssets(t *testing.T) {
	fs := iofs.NewMock(map[string]string{
		"main.css":   `body { background: url(sprite.png); }`,
		"sprite.png": ``,
	})
	registry := collect.NewRegistry(resourceCollector{resource: "sprite.png"})
	res := resolver.New(fs, config.DefaultExtensions, nil)
	collectFn := func(res *resolver.Resolver, f bfile.File, contents string) *bfile.ImportCollection {
		var out bfile.ImportCollection
		if c := registry.Find(f); c != nil {
			c.Collect(res, f, contents, &out)
		}
		return &out
	}
	fd := finder.New(fs, res, registry, collectFn)

	deps, err := fd.All(bfile.NewFile("main.css"))
	require.NoError(t, err)

	require.Len(t, deps, 2)
	assert.Equal(t, "sprite.png", deps[0].File.Path())
	assert.True(t, deps[0].InlinedAsset)
	assert.Equal(t, "main.css", deps[1].File.Path())
	assert.False(t, deps[1].InlinedAsset)
}
