package tui

// Cell represents a single character cell in the terminal buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is a continuation with zero width.
type Cell struct {
	Rune  rune
	Width uint8
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: uint8(RuneWidth(r))}
}

// blankCell is what cleared regions are filled with.
var blankCell = Cell{Rune: ' ', Width: 1}

// IsContinuation returns true if this cell is the second half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the display width of a rune in terminal cells.
// Returns 2 for the common East Asian wide and emoji ranges, 1 otherwise.
func RuneWidth(r rune) int {
	switch {
	case r < 0x1100:
		return 1
	case r <= 0x115F: // Hangul Jamo
		return 2
	case r >= 0x2E80 && r <= 0xA4CF: // CJK radicals through Yi
		return 2
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
		return 2
	case r >= 0xF900 && r <= 0xFAFF: // CJK compatibility ideographs
		return 2
	case r >= 0xFF00 && r <= 0xFF60: // Fullwidth forms
		return 2
	case r >= 0xFFE0 && r <= 0xFFE6:
		return 2
	case r >= 0x1F300 && r <= 0x1F64F: // Emoji
		return 2
	case r >= 0x1F900 && r <= 0x1F9FF:
		return 2
	case r >= 0x20000 && r <= 0x3FFFD: // CJK extension planes
		return 2
	}
	return 1
}
