package logger

import (
	"fmt"

	"github.com/pterm/pterm"
)

// NewPtermLog renders messages through pterm's styled printers, the way
// bennypowers-cem reports progress and diagnostics to its users. This is
// the default sink cmd/assetlib wires up; the core packages never call
// this constructor directly.
func NewPtermLog() Log {
	hasErrors := false
	var done []Msg
	return Log{
		AddMsg: func(m Msg) {
			done = append(done, m)
			line := m.Text
			if len(m.Detail) > 0 {
				for k, v := range m.Detail {
					line += fmt.Sprintf(" %s=%s", k, v)
				}
			}
			switch m.Kind {
			case Error:
				hasErrors = true
				pterm.Error.Println(line)
			case Warning:
				pterm.Warning.Println(line)
			case Debug:
				pterm.Debug.Println(line)
			default:
				pterm.Info.Println(line)
			}
		},
		HasErrors: func() bool { return hasErrors },
		Done:      func() []Msg { return done },
	}
}
