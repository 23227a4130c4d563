package view

import (
	tui "github.com/grindlemire/go-tui-counter"
	"github.com/grindlemire/go-tui-counter/internal/counter"
)

// quitRune stops the loop.
const quitRune = 'q'

// ActionFor maps a key press to the action it requests.
// Up increments, Down decrements; every other key requests nothing.
func ActionFor(ev tui.KeyEvent) (counter.Action, bool) {
	switch ev.Key {
	case tui.KeyUp:
		return counter.Increment, true
	case tui.KeyDown:
		return counter.Decrement, true
	default:
		return 0, false
	}
}

// IsQuit reports whether the key press ends the loop.
func IsQuit(ev tui.KeyEvent) bool {
	return ev.Key == tui.KeyRune && ev.Rune == quitRune
}
