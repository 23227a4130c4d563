package tui

// Terminal abstracts terminal operations for rendering and mode switching.
// Implementations handle ANSI terminals or mock terminals for testing.
//
// Every operation that writes to the terminal reports the write error; a
// terminal that can no longer be written to is not recoverable.
type Terminal interface {
	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// Flush writes the given cell changes to the terminal.
	// Changes are expected to be in row-major order.
	Flush(changes []CellChange) error

	// Clear clears the entire terminal screen.
	Clear() error

	// HideCursor makes the cursor invisible.
	HideCursor() error

	// ShowCursor makes the cursor visible.
	ShowCursor() error

	// EnterRawMode puts the terminal into raw mode for character-by-character input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to the mode saved by EnterRawMode.
	// Calling it when raw mode is not active is a no-op.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen() error

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen() error
}
