package bundler

import (
	"strings"

	"github.com/pjordaan/asset-lib/internal/bfile"
)

// outputRoot joins webRoot and outputDir, the common prefix every target
// path in spec section 4.5 is rooted at.
func outputRoot(webRoot, outputDir string) string {
	return bfile.Join(webRoot, outputDir)
}

// BundleTargetPath is "<web>/<outputDir>/<entryName>.js".
func BundleTargetPath(webRoot, outputDir, entryName string) string {
	return bfile.Join(outputRoot(webRoot, outputDir), entryName+".js")
}

// VendorTargetPath is "<web>/<outputDir>/<entryName>.vendor.js".
func VendorTargetPath(webRoot, outputDir, entryName string) string {
	return bfile.Join(outputRoot(webRoot, outputDir), entryName+".vendor.js")
}

// AssetTargetPath is "<web>/<outputDir>/<assetPath>" with the source
// extension replaced by terminalExt and the sourceRoot prefix stripped,
// per spec section 4.5.
func AssetTargetPath(webRoot, outputDir, sourceRoot string, assetFile bfile.File, terminalExt string) string {
	rel := assetFile.Path()
	if sourceRoot != "" && (rel == sourceRoot || strings.HasPrefix(rel, sourceRoot+"/")) {
		rel = strings.TrimPrefix(strings.TrimPrefix(rel, sourceRoot), "/")
	}
	relNoExt := strings.TrimSuffix(rel, assetFile.Extension())
	return bfile.Join(outputRoot(webRoot, outputDir), relNoExt+terminalExt)
}

// EntryName is an entry point's basename without extension, the
// "<entryName>" spec section 4.5's target paths are keyed by.
func EntryName(entryPoint string) string {
	return bfile.NewFile(entryPoint).Basename()
}

// ShimTargetPath is "<outputDir>/require.js" (relative to webRoot, joined
// the same way every other output path is).
func ShimTargetPath(webRoot, outputDir string) string {
	return bfile.Join(outputRoot(webRoot, outputDir), "require.js")
}
