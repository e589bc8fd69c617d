package bfile

// Module is a File plus the logical module name dependents use to import
// it -- the specifier by which the runtime registry looks this file up at
// load time. For project files the name is the source-root-relative path;
// for packages resolved through node_modules it is the specifier as
// written (see resolver.Resolver).
type Module struct {
	Name string
	File File
}

// Import is a single resolved import edge: the textual specifier the
// collector saw, plus what it resolved to. At most one of File / Module
// is meaningful -- relative imports resolve to ResolvedFile
// directly, package imports resolve to ResolvedModule (whose inner File is
// used for traversal).
type Import struct {
	Specifier string
	File      File
	IsModule  bool
	Module    Module
}

// ResolvedFile returns the on-disk File this import points at, whichever
// of the two resolution shapes produced it.
func (i Import) ResolvedFile() File {
	if i.IsModule {
		return i.Module.File
	}
	return i.File
}

// FileImport builds an Import whose resolved side is a plain project File.
func FileImport(specifier string, f File) Import {
	return Import{Specifier: specifier, File: f}
}

// ModuleImport builds an Import whose resolved side is a named package.
func ModuleImport(specifier string, m Module) Import {
	return Import{Specifier: specifier, IsModule: true, Module: m}
}

// Dependency wraps a File with the bookkeeping the pipeline and the
// freshness oracle need: whether it is synthesized rather than read from
// disk (Virtual), whether it is a side-channel resource referenced by
// another file rather than a concatenation unit (InlinedAsset), and the
// chain of extensions it has traversed so far (used by processor matcher
// decisions the same way ContentState's history is used in the pipeline).
type Dependency struct {
	File          File
	ModuleName    string
	Virtual       bool
	InlinedAsset  bool
	ExtensionPath []string
}

// NewDependency builds a non-virtual, non-asset Dependency rooted at f.
func NewDependency(f File, moduleName string) Dependency {
	return Dependency{File: f, ModuleName: moduleName, ExtensionPath: []string{f.Extension()}}
}
