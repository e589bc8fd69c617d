package cachestore

import (
	"os"
	"sort"
	"time"
)

// StatFunc abstracts the filesystem so tests can fake mtimes without
// touching disk, the same role the teacher's fs.FS interface plays for
// internal/resolver and internal/bundler.
type StatFunc func(path string) (mtime time.Time, exists bool)

// OSStat is the default StatFunc, backed by os.Stat.
func OSStat(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// IsStale implements spec section 4.6's four staleness conditions in
// order and, if any holds, rewrites the sidecar with the current input set
// before returning true -- so a second call in the same run (property 5 in
// spec section 8) sees a consistent, fresh state.
func (s *Store) IsStale(outputPath string, inputs []string, stat StatFunc) (bool, error) {
	sorted := append([]string(nil), inputs...)
	sort.Strings(sorted)

	sc, ok := readSidecar(s.SidecarPath(outputPath))
	stale := !ok || !sameSortedSet(sc.Inputs, sorted)

	outMTime, outExists := stat(outputPath)
	if !outExists {
		stale = true
	}

	if !stale {
		for _, in := range sorted {
			if inMTime, exists := stat(in); exists && inMTime.After(outMTime) {
				stale = true
				break
			}
		}
	}

	if stale {
		if err := s.writeSidecar(outputPath, sorted); err != nil {
			return true, err
		}
	}
	return stale, nil
}
