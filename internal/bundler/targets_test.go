package bundler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/bundler"
)

func TestBundleTargetPath(t *testing.T) {
	got := bundler.BundleTargetPath("web", "build", "main")
	assert.Equal(t, "web/build/main.js", got)
}

func TestVendorTargetPath(t *testing.T) {
	got := bundler.VendorTargetPath("web", "build", "main")
	assert.Equal(t, "web/build/main.vendor.js", got)
}

func TestAssetTargetPathStripsSourceRootAndReplacesExtension(t *testing.T) {
	got := bundler.AssetTargetPath("web", "build", "src", bfile.NewFile("src/images/logo.png"), ".png")
	assert.Equal(t, "web/build/images/logo.png", got)
}

func TestAssetTargetPathWithoutSourceRoot(t *testing.T) {
	got := bundler.AssetTargetPath("web", "build", "", bfile.NewFile("images/logo.png"), ".png")
	assert.Equal(t, "web/build/images/logo.png", got)
}

// A sibling directory that merely starts with the same characters as
// sourceRoot ("src" vs "src-legacy") must not have anything stripped: the
// boundary check requires an exact match or a "/" after the prefix.
func TestAssetTargetPathDoesNotStripFalsePrefixSibling(t *testing.T) {
	got := bundler.AssetTargetPath("web", "build", "src", bfile.NewFile("src-legacy/logo.png"), ".png")
	assert.Equal(t, "web/build/src-legacy/logo.png", got)
}

func TestEntryName(t *testing.T) {
	assert.Equal(t, "main", bundler.EntryName("src/main.ts"))
}

func TestShimTargetPath(t *testing.T) {
	got := bundler.ShimTargetPath("web", "build")
	assert.Equal(t, "web/build/require.js", got)
}
