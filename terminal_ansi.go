package tui

import (
	"fmt"
	"io"
	"os"
)

// ANSITerminal implements Terminal using ANSI escape sequences.
// It works with any terminal emulator that supports ANSI codes.
type ANSITerminal struct {
	out      io.Writer
	esc      *escBuilder
	inFd     int // -1 when input is not a file
	outFd    int // -1 when output is not a file
	rawState *rawModeState
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal writing to out. When in and out are
// *os.File their descriptors are used for raw mode and size queries.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		esc:   newEscBuilder(4096),
		inFd:  -1,
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	if t.outFd < 0 {
		return 80, 24
	}
	w, h, err := getTerminalSize(t.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Flush writes the given cell changes to the terminal, moving the cursor
// only when the next change is not directly after the previous one.
func (t *ANSITerminal) Flush(changes []CellChange) error {
	if len(changes) == 0 {
		return nil
	}

	t.esc.Reset()
	lastX, lastY := -1, -1
	for _, ch := range changes {
		// The primary cell of a wide character already covered this column.
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}
		if ch.Cell.Rune > 0 {
			t.esc.WriteRune(ch.Cell.Rune)
		} else {
			t.esc.WriteRune(' ')
		}
		lastX = ch.X + max(int(ch.Cell.Width), 1) - 1
		lastY = ch.Y
	}
	return t.write("flush")
}

// Clear clears the entire terminal screen and homes the cursor.
func (t *ANSITerminal) Clear() error {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ClearScreen()
	t.esc.MoveTo(0, 0)
	return t.write("clear")
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() error {
	t.esc.Reset()
	t.esc.HideCursor()
	return t.write("hide cursor")
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() error {
	t.esc.Reset()
	t.esc.ShowCursor()
	return t.write("show cursor")
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() error {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	return t.write("enter alt screen")
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() error {
	t.esc.Reset()
	t.esc.ExitAltScreen()
	return t.write("exit alt screen")
}

// EnterRawMode puts the input terminal into raw mode, saving the previous
// mode for ExitRawMode.
func (t *ANSITerminal) EnterRawMode() error {
	if t.inFd < 0 {
		return ErrNotTerminal
	}
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the terminal mode saved by EnterRawMode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(t.inFd, t.rawState)
	t.rawState = nil
	if err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}

func (t *ANSITerminal) write(op string) error {
	if _, err := t.out.Write(t.esc.Bytes()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
