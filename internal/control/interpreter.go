// Package control implements the line-oriented command protocol that
// drives the display. One command per line, processed to completion
// (including the render) before the next line is read.
package control

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/nightdial/nightdial/internal/state"
)

// Renderer is what the interpreter triggers after a recognized command.
type Renderer interface {
	Render(*state.RenderState)
}

// Interpreter mutates the render state per command and re-renders the
// full frame. No command can fail: numeric arguments have documented
// fallbacks and unknown commands are ignored outright.
type Interpreter struct {
	State  *state.RenderState
	Render Renderer

	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// Run reads commands until QUIT or end of input. Both are a normal stop;
// the only error is a failed read on the input stream. On QUIT, any
// further buffered lines are dropped unread.
func (it *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if quit := it.HandleLine(sc.Text()); quit {
			if it.Logger != nil {
				it.Logger.Infof("control", "QUIT received")
			}
			return nil
		}
	}
	return sc.Err()
}

// HandleLine processes one command line and reports whether it was QUIT.
// Every recognized command except QUIT ends with a full render cycle,
// even when the mutated field would not change the frame; a full-frame
// render is already the unit of work, so there is nothing to save.
func (it *Interpreter) HandleLine(line string) (quit bool) {
	line = strings.TrimRight(line, " \t\r\n")
	cmd, rest, _ := strings.Cut(line, " ")

	switch cmd {
	case "TIME":
		it.State.TimeText = strings.TrimSpace(rest)
	case "DATE":
		it.State.DateText = strings.TrimSpace(rest)
	case "BRIGHT":
		if arg := firstField(rest); arg != "" {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				v = 1.0
			}
			it.State.Brightness = state.ClampBrightness(v)
		}
	case "COLOR":
		if arg := firstField(rest); arg != "" {
			it.State.Color = state.ParseHexColor(arg)
		}
	case "SHIFT":
		// Both operands or nothing: a lone operand leaves the shift as
		// it was. Operands that are present but unparsable read as 0.
		fields := strings.Fields(rest)
		if len(fields) >= 2 {
			it.State.ShiftX = state.ClampShift(atoiOr(fields[0], 0))
			it.State.ShiftY = state.ClampShift(atoiOr(fields[1], 0))
		}
	case "QUIT":
		return true
	default:
		// Unknown commands (and blank lines) change nothing and do not
		// trigger a render.
		return false
	}

	it.Render.Render(it.State)
	return false
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
