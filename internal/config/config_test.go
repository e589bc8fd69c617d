package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjordaan/asset-lib/internal/config"
)

func TestNormalizeFillsDefaultExtensionsAndLogSink(t *testing.T) {
	opts := config.Options{}
	require.NoError(t, opts.Normalize())

	assert.Equal(t, config.DefaultExtensions, opts.Extensions)
	assert.NotNil(t, opts.LogSink.AddMsg)
}

func TestNormalizePreservesExplicitExtensions(t *testing.T) {
	opts := config.Options{Extensions: []string{".js"}}
	require.NoError(t, opts.Normalize())
	assert.Equal(t, []string{".js"}, opts.Extensions)
}

func TestNormalizeLeavesPlainEntryPointsUntouched(t *testing.T) {
	opts := config.Options{EntryPoints: []string{"src/main.ts", "src/admin.ts"}}
	require.NoError(t, opts.Normalize())
	assert.Equal(t, []string{"src/main.ts", "src/admin.ts"}, opts.EntryPoints)
}

func TestNormalizeExpandsGlobEntryPoints(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "pages"), 0o755))
	for _, name := range []string{"a.ts", "b.ts"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, "src", "pages", name), []byte(""), 0o644))
	}

	opts := config.Options{ProjectRoot: root, EntryPoints: []string{"src/pages/*.ts"}}
	require.NoError(t, opts.Normalize())

	assert.ElementsMatch(t, []string{"src/pages/a.ts", "src/pages/b.ts"}, opts.EntryPoints)
}

func TestNormalizeExpandsGlobAssetFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "logo.png"), []byte(""), 0o644))

	opts := config.Options{ProjectRoot: root, AssetFiles: []string{"assets/*.png"}}
	require.NoError(t, opts.Normalize())

	assert.Equal(t, []string{"assets/logo.png"}, opts.AssetFiles)
}
