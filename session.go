package tui

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Session owns a terminal for the lifetime of a full-screen program: raw
// input, alternate screen, hidden cursor. Close undoes exactly the steps
// that succeeded, in reverse order, so the terminal is restored on normal
// exit and on error paths alike.
type Session struct {
	term     Terminal
	reader   EventReader
	screen   *Screen
	teardown []func() error
	closed   bool
}

// Open starts a session on the process's stdin and stdout.
func Open() (*Session, error) {
	return NewSession(NewANSITerminal(os.Stdout, os.Stdin), NewEventReader(os.Stdin))
}

// NewSession prepares term for full-screen use and takes ownership of reader.
// If any step fails, the steps already taken are rolled back and reader is closed.
func NewSession(term Terminal, reader EventReader) (*Session, error) {
	s := &Session{term: term, reader: reader}

	steps := []struct {
		name string
		do   func() error
		undo func() error
	}{
		{"enter raw mode", term.EnterRawMode, term.ExitRawMode},
		{"enter alt screen", term.EnterAltScreen, term.ExitAltScreen},
		{"hide cursor", term.HideCursor, term.ShowCursor},
		{"clear screen", term.Clear, nil},
	}

	for _, step := range steps {
		if err := step.do(); err != nil {
			return nil, errors.Join(fmt.Errorf("%s: %w", step.name, err), s.Close())
		}
		if step.undo != nil {
			s.teardown = append(s.teardown, step.undo)
		}
	}

	s.screen = NewScreen(term)
	return s, nil
}

// Draw renders a frame. See Screen.Draw.
func (s *Session) Draw(fn func(f *Frame)) error {
	return s.screen.Draw(fn)
}

// Clear blanks the screen.
func (s *Session) Clear() error {
	return s.screen.Clear()
}

// Poll waits up to timeout for input. See EventReader.Poll.
func (s *Session) Poll(timeout time.Duration) (bool, error) {
	return s.reader.Poll(timeout)
}

// Read returns the next input event. See EventReader.Read.
func (s *Session) Read() (Event, error) {
	return s.reader.Read()
}

// Close restores the terminal and closes the reader. It is safe to call
// more than once; only the first call does any work.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for i := len(s.teardown) - 1; i >= 0; i-- {
		if err := s.teardown[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.reader.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close reader: %w", err))
	}
	return errors.Join(errs...)
}
