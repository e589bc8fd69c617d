package pipeline

import (
	"strings"

	"github.com/pjordaan/asset-lib/internal/berrors"
	"github.com/pjordaan/asset-lib/internal/bfile"
	"github.com/pjordaan/asset-lib/internal/cachestore"
)

// Pipeline drives ContentItems through a fixed, ordered chain of
// Processors until each reaches the READY phase, per spec section 4.4.
type Pipeline struct {
	cwd        string
	processors []Processor
	events     Events

	// cache, when non-nil, enables the dev-mode per-item cache described
	// in spec section 4.4. It is nil in non-dev mode.
	cache *cachestore.Store

	sourceRoot string
}

// Config bundles Pipeline's construction parameters.
type Config struct {
	Cwd        string
	Processors []Processor
	Events     Events
	Cache      *cachestore.Store // nil disables the per-item dev cache
	SourceRoot string
}

// New builds a Pipeline. The implicit terminal pass-through processor
// (see processor.go) is always appended last.
func New(cfg Config) *Pipeline {
	procs := append(append([]Processor(nil), cfg.Processors...), terminalProcessor{})
	return &Pipeline{
		cwd:        cfg.Cwd,
		processors: procs,
		events:     cfg.Events,
		cache:      cfg.Cache,
		sourceRoot: cfg.SourceRoot,
	}
}

func (p *Pipeline) find(state State) Processor {
	for _, proc := range p.processors {
		if proc.Supports(state) {
			return proc
		}
	}
	return nil
}

// moduleNameFor implements spec section 4.4's "module naming during
// push": a dependency whose path starts with the configured source root
// has that prefix stripped to form its emitted module name; a dependency
// that already carries an explicit module name (a vendor package
// resolved through node_modules) keeps it unchanged.
func (p *Pipeline) moduleNameFor(dep bfile.Dependency) string {
	if dep.ModuleName != "" {
		return dep.ModuleName
	}
	path := dep.File.Path()
	if p.sourceRoot != "" && (path == p.sourceRoot || strings.HasPrefix(path, p.sourceRoot+"/")) {
		return strings.TrimPrefix(strings.TrimPrefix(path, p.sourceRoot), "/")
	}
	return path
}

// driveTranspile runs item through processors (mutating its content)
// until it reaches READY, firing pre/post events around each step.
func (p *Pipeline) driveTranspile(item *Item) error {
	for item.State.Phase != PhaseReady {
		before := item.State
		proc := p.find(before)
		if proc == nil {
			return &berrors.StateStuckError{Module: item.ModuleName, State: before.String()}
		}
		p.events.firePre(item, proc)
		if err := proc.Transpile(p.cwd, item); err != nil {
			return &berrors.ParseError{Module: item.ModuleName, Err: err}
		}
		p.events.firePost(item, proc)
		if !before.Changed(item.State) {
			return &berrors.StateStuckError{Module: item.ModuleName, State: before.String()}
		}
	}
	return nil
}

// drivePeek runs only the state-machine side of processors against a bare
// State, never touching content, per spec section 4.4's peek contract.
func (p *Pipeline) drivePeek(state State) (State, error) {
	for state.Phase != PhaseReady {
		before := state
		proc := p.find(before)
		if proc == nil {
			return state, &berrors.StateStuckError{State: before.String()}
		}
		if err := proc.Peek(p.cwd, &state); err != nil {
			return state, &berrors.ParseError{Err: err}
		}
		if !before.Changed(state) {
			return state, &berrors.StateStuckError{State: before.String()}
		}
	}
	return state, nil
}

// Peek returns the terminal extension f would have after transpilation,
// without running any content transform (spec section 4.4).
func (p *Pipeline) Peek(f bfile.File) (string, error) {
	final, err := p.drivePeek(NewState(f.Extension()))
	if err != nil {
		return "", err
	}
	return final.Extension, nil
}
