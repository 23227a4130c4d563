package tui

import "fmt"

// Event is something that happened on the terminal: a key press or a resize.
// The set is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// KeyEvent is one key press.
// Printable input has Key == KeyRune and the character in Rune.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// ResizeEvent reports the new terminal size in cells.
type ResizeEvent struct {
	Width  int
	Height int
}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}

// String formats the event for logs, e.g. "Up", "Rune(q)", "Ctrl+Rune(c)".
func (e KeyEvent) String() string {
	s := e.Key.String()
	if e.Key == KeyRune {
		s = fmt.Sprintf("Rune(%c)", e.Rune)
	}
	if e.Mod != ModNone {
		s = e.Mod.String() + "+" + s
	}
	return s
}
