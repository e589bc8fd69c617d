package pipeline

// Processor is the contract spec section 4.4 names for every stage in the
// content pipeline: concrete transpilers (TypeScript, Less, ...) are out
// of this module's scope per spec.md section 1 and are supplied by the
// embedding application; this package only defines the interface they
// plug into and drives them.
type Processor interface {
	Supports(state State) bool
	Transpile(cwd string, item *Item) error
	Peek(cwd string, state *State) error
}

// terminalProcessor is the implicit pass-through stage every Pipeline
// registers after the caller's own processors: any item still in the
// READING phase once every configured processor has declined it is
// considered already in its terminal form (e.g. plain .js with no
// transform registered for it) and is advanced straight to READY without
// changing its extension. Without this, a file needing no transformation
// would have no processor willing to make the state-machine progress the
// driver loop requires, tripping StateStuckError for no reason. This is a
// design decision the teacher doesn't need to make explicit (its loader
// table always resolves every extension to *some* handling), recorded in
// DESIGN.md.
type terminalProcessor struct{}

func (terminalProcessor) Supports(state State) bool {
	return state.Phase == PhaseReading || state.Phase == PhaseProcessing
}

func (terminalProcessor) Transpile(cwd string, item *Item) error {
	item.State = item.State.Advance(PhaseReady, item.State.Extension)
	return nil
}

func (terminalProcessor) Peek(cwd string, state *State) error {
	*state = state.Advance(PhaseReady, state.Extension)
	return nil
}
