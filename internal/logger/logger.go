// Package logger mirrors the shape of the teacher's internal/logger: a Log
// value carrying an AddMsg callback and a HasErrors predicate, so the core
// never depends on how messages are ultimately rendered. Unlike the
// teacher -- a zero-dependency CLI binary that renders its own ANSI colors
// -- this module's default sink renders through pterm, matching how
// bennypowers-cem presents all of its CLI output.
package logger

import "sync"

// MsgKind is one of four severities: plain info, debug-logged resolution
// misses (spec section 7), warnings, and fatal pipeline/IO/parse failures.
type MsgKind uint8

const (
	Info MsgKind = iota
	Debug
	Warning
	Error
)

func (k MsgKind) String() string {
	switch k {
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Msg is one log entry. Detail carries arbitrary structured context (a
// module name, a path) the sink may choose to render.
type Msg struct {
	Kind   MsgKind
	Text   string
	Detail map[string]string
}

// Log is the sink contract the core calls into. It is deliberately the
// same shape as the teacher's logger.Log so a caller can swap in a
// deferred, silent, or test log without touching core code.
type Log struct {
	AddMsg    func(Msg)
	HasErrors func() bool
	Done      func() []Msg
}

// NewMemoryLog returns a Log that only accumulates messages in memory,
// useful for tests that want to assert on what was logged.
func NewMemoryLog() Log {
	var mu sync.Mutex
	var msgs []Msg
	hasErrors := false
	return Log{
		AddMsg: func(m Msg) {
			mu.Lock()
			defer mu.Unlock()
			msgs = append(msgs, m)
			if m.Kind == Error {
				hasErrors = true
			}
		},
		HasErrors: func() bool {
			mu.Lock()
			defer mu.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mu.Lock()
			defer mu.Unlock()
			out := make([]Msg, len(msgs))
			copy(out, msgs)
			return out
		},
	}
}

// NewDiscardLog returns a Log that drops every message; used when a
// caller truly does not want any output (e.g. peek-only callers).
func NewDiscardLog() Log {
	return Log{
		AddMsg:    func(Msg) {},
		HasErrors: func() bool { return false },
		Done:      func() []Msg { return nil },
	}
}

func (l Log) AddDebug(text string, detail map[string]string) {
	if l.AddMsg != nil {
		l.AddMsg(Msg{Kind: Debug, Text: text, Detail: detail})
	}
}

func (l Log) AddError(text string, detail map[string]string) {
	if l.AddMsg != nil {
		l.AddMsg(Msg{Kind: Error, Text: text, Detail: detail})
	}
}
