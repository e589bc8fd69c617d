// Package iofs is a small file-system abstraction in the spirit of the
// teacher's internal/fs: the resolver, finder and bundler driver reach the
// file system only through it, so tests can swap in an in-memory
// filesystem instead of touching disk (internal/cachestore is the
// exception and uses "os" directly), and the real
// implementation is free to add caching later without touching callers.
package iofs

import "time"

// FS is the file-system contract the resolver, collectors, and bundler
// driver depend on.
type FS interface {
	ReadFile(path string) (string, error)
	Stat(path string) (mtime time.Time, isDir bool, exists bool)
	MkdirAll(path string) error
	WriteFile(path string, data []byte) error
}

// Exists is a convenience wrapper over Stat.
func Exists(fs FS, path string) bool {
	_, _, exists := fs.Stat(path)
	return exists
}

// IsDir is a convenience wrapper over Stat.
func IsDir(fs FS, path string) bool {
	_, isDir, exists := fs.Stat(path)
	return exists && isDir
}
