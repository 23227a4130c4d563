package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func newTestTerminal() (*ANSITerminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewANSITerminal(&out, strings.NewReader("")), &out
}

func TestANSITerminal_Flush(t *testing.T) {
	type tc struct {
		changes  []CellChange
		expected string
	}

	tests := map[string]tc{
		"no changes": {
			changes:  nil,
			expected: "",
		},
		"adjacent cells share one move": {
			changes: []CellChange{
				{X: 0, Y: 0, Cell: NewCell('a')},
				{X: 1, Y: 0, Cell: NewCell('b')},
			},
			expected: "\x1b[1;1Hab",
		},
		"gap moves the cursor": {
			changes: []CellChange{
				{X: 0, Y: 0, Cell: NewCell('a')},
				{X: 5, Y: 2, Cell: NewCell('c')},
			},
			expected: "\x1b[1;1Ha\x1b[3;6Hc",
		},
		"wide rune skips continuation": {
			changes: []CellChange{
				{X: 0, Y: 0, Cell: NewCell('日')},
				{X: 1, Y: 0, Cell: Cell{}},
				{X: 2, Y: 0, Cell: NewCell('x')},
			},
			expected: "\x1b[1;1H日x",
		},
		"next row": {
			changes: []CellChange{
				{X: 2, Y: 0, Cell: NewCell('a')},
				{X: 0, Y: 1, Cell: NewCell('b')},
			},
			expected: "\x1b[1;3Ha\x1b[2;1Hb",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, out := newTestTerminal()
			if err := term.Flush(tt.changes); err != nil {
				t.Fatalf("Flush() error = %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("Flush() wrote %q, want %q", out.String(), tt.expected)
			}
		})
	}
}

func TestANSITerminal_Sequences(t *testing.T) {
	type tc struct {
		op       func(*ANSITerminal) error
		expected string
	}

	tests := map[string]tc{
		"clear":            {op: (*ANSITerminal).Clear, expected: "\x1b[0m\x1b[2J\x1b[1;1H"},
		"hide cursor":      {op: (*ANSITerminal).HideCursor, expected: "\x1b[?25l"},
		"show cursor":      {op: (*ANSITerminal).ShowCursor, expected: "\x1b[?25h"},
		"enter alt screen": {op: (*ANSITerminal).EnterAltScreen, expected: "\x1b[?1049h"},
		"exit alt screen":  {op: (*ANSITerminal).ExitAltScreen, expected: "\x1b[?1049l"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, out := newTestTerminal()
			if err := tt.op(term); err != nil {
				t.Fatalf("error = %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("wrote %q, want %q", out.String(), tt.expected)
			}
		})
	}
}

func TestANSITerminal_WriteErrors(t *testing.T) {
	errWrite := errors.New("broken pipe")
	term := NewANSITerminal(failingWriter{err: errWrite}, strings.NewReader(""))

	err := term.Clear()
	if !errors.Is(err, errWrite) {
		t.Fatalf("Clear() error = %v, want %v", err, errWrite)
	}
	if !strings.HasPrefix(err.Error(), "clear: ") {
		t.Errorf("Clear() error = %q, want clear prefix", err)
	}

	err = term.Flush([]CellChange{{X: 0, Y: 0, Cell: NewCell('a')}})
	if !errors.Is(err, errWrite) {
		t.Errorf("Flush() error = %v, want %v", err, errWrite)
	}
}

func TestANSITerminal_NotATerminal(t *testing.T) {
	term, out := newTestTerminal()

	if w, h := term.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %dx%d, want default 80x24", w, h)
	}
	if err := term.EnterRawMode(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("EnterRawMode() error = %v, want ErrNotTerminal", err)
	}
	if err := term.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode() without raw mode error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("raw mode calls wrote %q", out.String())
	}
}
