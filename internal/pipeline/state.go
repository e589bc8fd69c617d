// Package pipeline implements spec section 4.4's content pipeline: the
// state-machine-driven chain of processors that drives each source file
// from its input extension to a terminal "ready" form, plus the
// non-mutating peek mode.
package pipeline

import "strings"

// Phase is ContentState's small state machine, spec section 3's
// READING/PROCESSING/READY triple.
type Phase uint8

const (
	PhaseReading Phase = iota
	PhaseProcessing
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseReading:
		return "reading"
	case PhaseProcessing:
		return "processing"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State is the ContentState value spec section 3 describes: the current
// phase, the current extension, and an append-only history of prior
// extensions.
type State struct {
	Phase     Phase
	Extension string
	History   []string
}

// NewState starts a fresh state machine at extension ext, in the READING
// phase with an empty history.
func NewState(ext string) State {
	return State{Phase: PhaseReading, Extension: ext}
}

// Advance returns the State that results from moving to phase/ext,
// recording the previous extension in History whenever the extension
// actually changed.
func (s State) Advance(phase Phase, ext string) State {
	next := State{Phase: phase, Extension: ext, History: s.History}
	if ext != s.Extension {
		next.History = append(append([]string(nil), s.History...), s.Extension)
	}
	return next
}

// Changed reports whether next differs from s in phase or extension --
// the progress check spec section 3's invariant requires of every
// processor transition.
func (s State) Changed(next State) bool {
	return s.Phase != next.Phase || s.Extension != next.Extension
}

func (s State) String() string {
	if len(s.History) == 0 {
		return s.Extension
	}
	return strings.Join(append(append([]string(nil), s.History...), s.Extension), "->")
}
