package bfile

// ImportCollection is the mutable builder a collector fills in while
// scanning a single file. Insertion order is preserved and forms the
// stable emission order downstream consumers (the Finder, S1's ordering
// assertion) depend on.
type ImportCollection struct {
	imports   []Import
	resources []File
}

// AddImport appends imp to the collection, preserving call order.
func (c *ImportCollection) AddImport(imp Import) {
	c.imports = append(c.imports, imp)
}

// AddResource appends a side-channel resource file (e.g. a CSS url())
// reference) to the collection.
func (c *ImportCollection) AddResource(f File) {
	c.resources = append(c.resources, f)
}

// Imports returns the imports collected so far, in insertion order.
func (c *ImportCollection) Imports() []Import { return c.imports }

// Resources returns the resources collected so far, in insertion order.
func (c *ImportCollection) Resources() []File { return c.resources }

// IsEmpty reports whether nothing was collected at all.
func (c *ImportCollection) IsEmpty() bool {
	return len(c.imports) == 0 && len(c.resources) == 0
}
