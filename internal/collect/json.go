package collect

import (
	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/resolver"
)

// JSONCollector supports .json files. JSON files are always leaves: spec
// section 4.2 says plainly "no imports; file is itself a leaf".
type JSONCollector struct{}

func (JSONCollector) Supports(f bfile.File) bool {
	return f.Extension() == ".json"
}

func (JSONCollector) Collect(*resolver.Resolver, bfile.File, string, *bfile.ImportCollection) {
}
