// Package shim embeds the runtime loader shim: the small module registry
// copied verbatim into every output folder as require.js. Its contents
// are an external collaborator per spec.md section 1 ("the runtime
// loader shim copied verbatim into the output folder") -- this package
// just carries the two variants (dev and minified) the driver picks
// between based on config.Options.IsDev.
package shim

import _ "embed"

//go:embed require.js
var Source string

//go:embed require.min.js
var SourceMinified string

// For selects the dev or minified variant.
func For(isDev bool) string {
	if isDev {
		return Source
	}
	return SourceMinified
}
