package pipeline

import (
	"strings"
	"time"

	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/cachestore"
)

// Reader resolves a File to its source contents; callers typically
// close over an iofs.FS.
type Reader func(f bfile.File) (string, error)

// Push runs every non-virtual dependency in deps through the processor
// chain and concatenates the resulting contents in dependency-list order,
// per spec section 4.4. target is the output path this push is headed
// for; it is only consulted by the dev-mode per-item cache to decide
// whether a cached (content, extension) pair is still usable.
func (p *Pipeline) Push(deps []bfile.Dependency, target string, read Reader, stat cachestore.StatFunc) (string, error) {
	var out strings.Builder

	targetMTime, targetExists := time.Time{}, false
	if p.cache != nil && stat != nil {
		targetMTime, targetExists = stat(target)
	}

	for _, dep := range deps {
		if dep.Virtual {
			continue
		}

		item, err := p.resolveItem(dep, read, stat, targetExists, targetMTime)
		if err != nil {
			return "", err
		}

		if item.State.Phase != PhaseReady {
			if err := p.driveTranspile(item); err != nil {
				return "", err
			}
			if p.cache != nil {
				content, _ := item.Content()
				key := cachestore.HashString(dep.File.Path())
				_ = p.cache.StoreItem(key, content, item.State.Extension)
			}
		}

		content, err := item.Content()
		if err != nil {
			return "", err
		}
		out.WriteString(content)
	}

	result := out.String()
	p.events.fireReady(target, NewBufferedItem(bfile.NewFile(target), target, result, ""))
	return result, nil
}

// resolveItem builds the Item for dep, short-circuiting straight to READY
// when the dev-mode per-item cache has a usable entry: the cached pair is
// only trusted when target is newer than the input file, per spec section
// 4.4.
func (p *Pipeline) resolveItem(dep bfile.Dependency, read Reader, stat cachestore.StatFunc, targetExists bool, targetMTime time.Time) (*Item, error) {
	moduleName := p.moduleNameFor(dep)

	if p.cache != nil && stat != nil && targetExists {
		if inMTime, exists := stat(dep.File.Path()); exists && targetMTime.After(inMTime) {
			key := cachestore.HashString(dep.File.Path())
			if content, ext, ok := p.cache.LoadItem(key); ok {
				return NewBufferedItem(dep.File, moduleName, content, ext), nil
			}
		}
	}

	return NewItem(dep.File, moduleName, func() (string, error) { return read(dep.File) }), nil
}
