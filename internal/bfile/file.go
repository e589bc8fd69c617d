// Package bfile holds the bundler's core value objects: File, Module,
// Import, and Dependency. These are immutable once constructed, the same
// way the teacher's logger.Path and graph.EntryPoint values are.
package bfile

import "strings"

// File is a relative-or-absolute POSIX-style path. Two Files are equal iff
// their normalized Path strings are equal.
//
// This has a custom dir/base/ext split instead of "path/filepath" because
// the result must not depend on the host OS: module names derived from a
// File end up in the emitted runtime registry and must be stable across
// platforms, exactly the reasoning behind
// logger.PlatformIndependentPathDirBaseExt in the teacher.
type File struct {
	path string
}

// NewFile normalizes slashes and collapses "." segments before storing path.
func NewFile(path string) File {
	return File{path: normalize(path)}
}

func normalize(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if path == "" {
		return path
	}
	segments := strings.Split(path, "/")
	absolute := strings.HasPrefix(path, "/")
	var out []string
	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
			} else if !absolute {
				out = append(out, seg)
			}
		default:
			out = append(out, seg)
		}
	}
	joined := strings.Join(out, "/")
	if absolute {
		return "/" + joined
	}
	return joined
}

// Path returns the normalized path string.
func (f File) Path() string { return f.path }

// IsZero reports whether this File was never assigned a path.
func (f File) IsZero() bool { return f.path == "" }

// Dir returns the directory portion (no trailing slash; "" at root).
func (f File) Dir() string {
	dir, _, _ := split(f.path)
	return dir
}

// Basename returns the final path segment without its extension.
func (f File) Basename() string {
	_, base, _ := split(f.path)
	return base
}

// Extension returns the final dot-suffix of the final segment, including
// the leading dot, or "" if there is none.
func (f File) Extension() string {
	_, _, ext := split(f.path)
	return ext
}

// Name returns Basename()+Extension().
func (f File) Name() string {
	_, base, ext := split(f.path)
	return base + ext
}

// WithExtension returns a copy of f whose final-segment extension is
// replaced by ext (which must include the leading dot, or be empty to
// strip the extension entirely).
func (f File) WithExtension(ext string) File {
	dir, base, _ := split(f.path)
	if dir == "" {
		return NewFile(base + ext)
	}
	return NewFile(dir + "/" + base + ext)
}

// Join joins dir with the given relative path segments, the same
// semantics as path.Join (empty elements are ignored, so an empty dir
// yields a relative result) but without touching "/" normalization twice.
func Join(dir string, rest ...string) string {
	var parts []string
	for _, p := range append([]string{dir}, rest...) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return normalize(strings.Join(parts, "/"))
}

func split(p string) (dir, base, ext string) {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		base = p
	} else {
		dir, base = p[:i], p[i+1:]
	}
	if dot := strings.LastIndexByte(base, '.'); dot > 0 {
		base, ext = base[:dot], base[dot:]
	}
	return
}

// Equal reports whether two Files refer to the same normalized path.
func (f File) Equal(other File) bool { return f.path == other.path }

func (f File) String() string { return f.path }
