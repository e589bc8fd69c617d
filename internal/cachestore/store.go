// Package cachestore implements the two disk-backed caches spec section 6
// describes: the freshness sidecar ("<cacheDir>/<hash>.sources") and the
// per-item processed-content cache ("<cacheDir>/<hash>", dev mode only).
// It mirrors the shape of the teacher's internal/cache -- a small struct of
// maps guarded by a mutex, populated lazily -- but persists to disk instead
// of staying purely in-process, since this bundler's cache must survive
// across separate invocations rather than just within one build.
package cachestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Store is the disk-backed cache rooted at a single cacheDir. A Store must
// not be shared between concurrent driver invocations (spec section 5:
// "concurrent invocations against the same cache are undefined behavior").
type Store struct {
	dir string

	mu    sync.Mutex
	items map[uint64]itemEntry
}

type itemEntry struct {
	Content   string `json:"content"`
	Extension string `json:"extension"`
}

// New returns a Store rooted at dir. dir is created lazily on first write.
func New(dir string) *Store {
	return &Store{dir: dir, items: make(map[uint64]itemEntry)}
}

// HashString returns the content-hash used for every cache key in this
// package, grounded on standardbeagle-lci's use of xxhash for
// content-addressed caches.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

func (s *Store) ensureDir() error {
	if s.dir == "" {
		return fmt.Errorf("cachestore: empty cache directory")
	}
	return os.MkdirAll(s.dir, 0o755)
}

func (s *Store) path(key uint64, suffix string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x%s", key, suffix))
}

// --- generic blob storage, shared by the collector cache (section 4.2)
// and the per-item processed-content cache below ---

// LoadBlob returns the raw bytes stored under key with the given
// namespace suffix, if any exist on disk.
func (s *Store) LoadBlob(key uint64, namespace string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key, namespace))
	if err != nil {
		return nil, false
	}
	return data, true
}

// StoreBlob persists raw bytes under key with the given namespace suffix.
func (s *Store) StoreBlob(key uint64, namespace string, data []byte) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	return writeFileAtomic(s.path(key, namespace), data)
}

// --- per-item processed-content cache (spec section 4.4) ---

// LoadItem returns the cached (content, extension) pair for key, if any.
func (s *Store) LoadItem(key uint64) (content, extension string, ok bool) {
	s.mu.Lock()
	if entry, found := s.items[key]; found {
		s.mu.Unlock()
		return entry.Content, entry.Extension, true
	}
	s.mu.Unlock()

	data, err := os.ReadFile(s.path(key, ""))
	if err != nil {
		return "", "", false
	}
	var entry itemEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", "", false
	}
	s.mu.Lock()
	s.items[key] = entry
	s.mu.Unlock()
	return entry.Content, entry.Extension, true
}

// StoreItem persists the (content, extension) pair for key.
func (s *Store) StoreItem(key uint64, content, extension string) error {
	entry := itemEntry{Content: content, Extension: extension}
	s.mu.Lock()
	s.items[key] = entry
	s.mu.Unlock()

	if err := s.ensureDir(); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path(key, ""), data)
}

// --- sources sidecar / freshness oracle (spec section 4.6) ---

type sidecar struct {
	Inputs []string `json:"inputs"`
}

// SidecarPath returns the path of the sources sidecar for outputPath.
func (s *Store) SidecarPath(outputPath string) string {
	return s.path(HashString(outputPath), ".sources")
}

func readSidecar(path string) (sidecar, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sidecar{}, false
	}
	var sc sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return sidecar{}, false
	}
	return sc, true
}

func (s *Store) writeSidecar(outputPath string, inputs []string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	sorted := append([]string(nil), inputs...)
	sort.Strings(sorted)
	data, err := json.Marshal(sidecar{Inputs: sorted})
	if err != nil {
		return err
	}
	return writeFileAtomic(s.SidecarPath(outputPath), data)
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func sameSortedSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
