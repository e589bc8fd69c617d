package cachestore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjordaan/asset-lib/internal/cachestore"
)

func fixedStat(mtimes map[string]time.Time) cachestore.StatFunc {
	return func(path string) (time.Time, bool) {
		t, ok := mtimes[path]
		return t, ok
	}
}

// S3 / Property 5 — first build is stale (no sidecar yet); a second build
// with unchanged inputs and a freshly-written output is not stale.
func TestFreshnessCycleStaleThenFresh(t *testing.T) {
	store := cachestore.New(t.TempDir())
	inputs := []string{"a.js", "b.js"}
	base := time.Now().Add(-time.Hour)

	stat := fixedStat(map[string]time.Time{
		"a.js": base,
		"b.js": base,
	})

	stale, err := store.IsStale("bundle.js", inputs, stat)
	require.NoError(t, err)
	assert.True(t, stale, "no sidecar yet and no output on disk: must be stale")

	stat2 := fixedStat(map[string]time.Time{
		"a.js":      base,
		"b.js":      base,
		"bundle.js": base.Add(time.Minute),
	})
	stale, err = store.IsStale("bundle.js", inputs, stat2)
	require.NoError(t, err)
	assert.False(t, stale, "same input set, output newer than inputs: must be fresh")
}

func TestFreshnessDetectsInputSetChange(t *testing.T) {
	store := cachestore.New(t.TempDir())
	base := time.Now().Add(-time.Hour)

	stat := fixedStat(map[string]time.Time{
		"a.js":      base,
		"bundle.js": base.Add(time.Minute),
	})
	_, err := store.IsStale("bundle.js", []string{"a.js"}, stat)
	require.NoError(t, err)

	stat2 := fixedStat(map[string]time.Time{
		"a.js":      base,
		"b.js":      base,
		"bundle.js": base.Add(time.Minute),
	})
	stale, err := store.IsStale("bundle.js", []string{"a.js", "b.js"}, stat2)
	require.NoError(t, err)
	assert.True(t, stale, "input set grew: must be stale even though output is newer")
}

func TestFreshnessDetectsNewerInput(t *testing.T) {
	store := cachestore.New(t.TempDir())
	base := time.Now().Add(-time.Hour)

	stat := fixedStat(map[string]time.Time{
		"a.js":      base,
		"bundle.js": base.Add(time.Minute),
	})
	_, err := store.IsStale("bundle.js", []string{"a.js"}, stat)
	require.NoError(t, err)

	stat2 := fixedStat(map[string]time.Time{
		"a.js":      base.Add(time.Hour),
		"bundle.js": base.Add(time.Minute),
	})
	stale, err := store.IsStale("bundle.js", []string{"a.js"}, stat2)
	require.NoError(t, err)
	assert.True(t, stale, "input modified after output was written: must be stale")
}

// Property 6 — once fresh, calling IsStale again with the exact same
// arguments does not flip it back to stale (no unexpected rewrite loop).
func TestFreshnessSecondCallStaysFreshWithoutRewrite(t *testing.T) {
	store := cachestore.New(t.TempDir())
	base := time.Now().Add(-time.Hour)
	stat := fixedStat(map[string]time.Time{
		"a.js":      base,
		"bundle.js": base.Add(time.Minute),
	})

	_, err := store.IsStale("bundle.js", []string{"a.js"}, stat)
	require.NoError(t, err)

	stale, err := store.IsStale("bundle.js", []string{"a.js"}, stat)
	require.NoError(t, err)
	assert.False(t, stale)

	stale, err = store.IsStale("bundle.js", []string{"a.js"}, stat)
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestItemCacheRoundTrip(t *testing.T) {
	store := cachestore.New(t.TempDir())
	key := cachestore.HashString("main.ts")

	_, _, ok := store.LoadItem(key)
	assert.False(t, ok)

	require.NoError(t, store.StoreItem(key, "var x=1;", ".js"))

	content, ext, ok := store.LoadItem(key)
	require.True(t, ok)
	assert.Equal(t, "var x=1;", content)
	assert.Equal(t, ".js", ext)
}

func TestItemCachePersistsAcrossStoreInstances(t *testing.T) {
	dir := t.TempDir()
	key := cachestore.HashString("main.ts")

	first := cachestore.New(dir)
	require.NoError(t, first.StoreItem(key, "cached content", ".js"))

	second := cachestore.New(dir)
	content, ext, ok := second.LoadItem(key)
	require.True(t, ok)
	assert.Equal(t, "cached content", content)
	assert.Equal(t, ".js", ext)
}

func TestBlobRoundTrip(t *testing.T) {
	store := cachestore.New(t.TempDir())
	key := cachestore.HashString("contents-of-a-file")

	_, ok := store.LoadBlob(key, ".imports")
	assert.False(t, ok)

	require.NoError(t, store.StoreBlob(key, ".imports", []byte(`{"imports":[]}`)))

	data, ok := store.LoadBlob(key, ".imports")
	require.True(t, ok)
	assert.Equal(t, `{"imports":[]}`, string(data))
}

func TestHashStringIsDeterministic(t *testing.T) {
	assert.Equal(t, cachestore.HashString("same"), cachestore.HashString("same"))
	assert.NotEqual(t, cachestore.HashString("a"), cachestore.HashString("b"))
}
