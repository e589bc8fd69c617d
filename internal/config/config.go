// Package config holds the external interface spec section 6 describes:
// the set of options the (out-of-scope) configuration loader hands to the
// driver.
package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pjordaan/asset-lib/internal/logger"
)

// Options is the full set of inputs spec section 6 lists. Every field from
// ProjectRoot to IsDev maps 1:1 to a row of that table; Extensions and
// LogSink are additions of this module.
type Options struct {
	ProjectRoot string
	WebRoot     string
	OutputDir   string
	SourceRoot  string

	EntryPoints  []string
	AssetFiles   []string
	IncludePaths []string

	CacheDir string
	IsDev    bool

	// Extensions lists the candidate extensions the resolver probes, in
	// strict priority order (spec section 4.1).
	Extensions []string

	// LogSink is where the driver and its collaborators report messages.
	// Defaults to logger.NewDiscardLog() if left zero.
	LogSink logger.Log
}

// DefaultExtensions matches the order the teacher's resolver defaults to
// for a JS/TS-flavored project: TypeScript before JavaScript before JSON
// before native addons.
var DefaultExtensions = []string{".ts", ".js", ".json", ".node"}

// Normalize fills in defaults and glob-expands EntryPoints/AssetFiles in
// place. It must be called once before the options reach the driver; the
// core packages themselves never call doublestar.
func (o *Options) Normalize() error {
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	if o.LogSink.AddMsg == nil {
		o.LogSink = logger.NewDiscardLog()
	}

	expandedEntries, err := expandGlobs(o.ProjectRoot, o.EntryPoints)
	if err != nil {
		return err
	}
	o.EntryPoints = expandedEntries

	expandedAssets, err := expandGlobs(o.ProjectRoot, o.AssetFiles)
	if err != nil {
		return err
	}
	o.AssetFiles = expandedAssets
	return nil
}

// expandGlobs resolves any entry containing a glob meta-character against
// projectRoot using doublestar, the way bennypowers-cem and
// standardbeagle-lci both expand user-declared path sets. Plain paths pass
// through untouched and in order, so a non-glob entryPoints list is
// unaffected.
func expandGlobs(projectRoot string, patterns []string) ([]string, error) {
	var out []string
	for _, p := range patterns {
		if !containsMeta(p) {
			out = append(out, p)
			continue
		}
		matches, err := doublestar.Glob(rootFS(projectRoot), p)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

func containsMeta(p string) bool {
	return strings.ContainsAny(p, "*?[")
}
