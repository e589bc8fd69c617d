package collect

import (
	"regexp"

	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/resolver"
)

// requirePattern matches require("...") calls whose argument is a single
// string literal, per spec section 4.2's JS collector row. Anything more
// dynamic (a concatenated expression, a variable) simply does not match
// and is invisible to this collector, which is the intended behavior --
// the core never attempts to evaluate arbitrary JS.
var requirePattern = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)

// JSCollector extracts require() calls from .js and .node files.
type JSCollector struct{}

func (JSCollector) Supports(f bfile.File) bool {
	switch f.Extension() {
	case ".js", ".node":
		return true
	}
	return false
}

func (JSCollector) Collect(res *resolver.Resolver, f bfile.File, contents string, out *bfile.ImportCollection) {
	for _, m := range requirePattern.FindAllStringSubmatch(contents, -1) {
		addResolved(res, f, m[1], out)
	}
}
