package pipeline

import "github.com/pjordaan/asset-lib/internal/bfile"

// Item is ContentItem: a State bound to a File and a module name, plus
// either a lazy reader or buffered content. Processors transition Item by
// replacing its buffered content and State together.
type Item struct {
	File       bfile.File
	ModuleName string
	State      State

	content    string
	hasContent bool
	reader     func() (string, error)
}

// NewItem builds an Item whose content is read lazily via reader the
// first time Content() is called.
func NewItem(f bfile.File, moduleName string, reader func() (string, error)) *Item {
	return &Item{File: f, ModuleName: moduleName, State: NewState(f.Extension()), reader: reader}
}

// NewBufferedItem builds an already-READY Item whose content is already
// in memory (used by per-item cache hits and by the final concatenated
// "ready" event item -- in both cases the content is already in its
// terminal form, so there is nothing left for the driver loop to do).
func NewBufferedItem(f bfile.File, moduleName string, content string, ext string) *Item {
	item := &Item{File: f, ModuleName: moduleName, State: State{Phase: PhaseReady, Extension: ext}}
	item.content = content
	item.hasContent = true
	return item
}

// Content returns the item's current buffered content, reading it lazily
// from the configured reader on first access.
func (it *Item) Content() (string, error) {
	if it.hasContent {
		return it.content, nil
	}
	if it.reader == nil {
		return "", nil
	}
	content, err := it.reader()
	if err != nil {
		return "", err
	}
	it.content = content
	it.hasContent = true
	return content, nil
}

// SetContent replaces the item's buffered content. Processors call this
// alongside advancing State; the pipeline driver does not enforce the
// pairing itself (processors are trusted to keep both in sync), matching
// the teacher's convention of processors owning their own mutation.
func (it *Item) SetContent(content string) {
	it.content = content
	it.hasContent = true
}
