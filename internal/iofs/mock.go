package iofs

import (
	"fmt"
	"strings"
	"time"
)

// Mock is an in-memory FS for tests, grounded on the teacher's fs.MockFS:
// a flat map of path to contents, with directories inferred from path
// prefixes rather than stored explicitly.
type Mock struct {
	Files map[string]string
	dirs  map[string]bool
	mtime map[string]time.Time
}

// NewMock builds a Mock from a path->contents map. Every directory implied
// by a file's path is automatically considered to exist.
func NewMock(files map[string]string) *Mock {
	m := &Mock{Files: files, dirs: map[string]bool{}, mtime: map[string]time.Time{}}
	for p := range files {
		dir := p
		for {
			i := strings.LastIndexByte(dir, '/')
			if i < 0 {
				break
			}
			dir = dir[:i]
			if dir == "" {
				break
			}
			m.dirs[dir] = true
		}
	}
	return m
}

// SetMTime fixes path's modification time for freshness-oracle tests.
func (m *Mock) SetMTime(path string, t time.Time) {
	m.mtime[path] = t
}

func (m *Mock) ReadFile(path string) (string, error) {
	if contents, ok := m.Files[path]; ok {
		return contents, nil
	}
	return "", fmt.Errorf("file not found: %s", path)
}

func (m *Mock) Stat(path string) (time.Time, bool, bool) {
	if _, ok := m.Files[path]; ok {
		return m.mtime[path], false, true
	}
	if m.dirs[path] {
		return m.mtime[path], true, true
	}
	return time.Time{}, false, false
}

func (m *Mock) MkdirAll(path string) error {
	m.dirs[path] = true
	return nil
}

func (m *Mock) WriteFile(path string, data []byte) error {
	m.Files[path] = string(data)
	m.mtime[path] = m.mtime[path].Add(0)
	return nil
}
