package tui

import "strings"

// MockTerminal is a Terminal for testing.
// It applies flushed changes to an in-memory grid and records mode switches.
// Setting one of the Fail* fields makes the matching operation return it.
type MockTerminal struct {
	width, height int
	cells         []Cell

	cursorHidden bool
	inRawMode    bool
	inAltScreen  bool
	clearCount   int
	flushCount   int

	FailFlush    error
	FailClear    error
	FailRawMode  error
	FailAltEnter error
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a new mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{}
	m.Resize(width, height)
	return m
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// Flush applies the given cell changes to the grid.
func (m *MockTerminal) Flush(changes []CellChange) error {
	if m.FailFlush != nil {
		return m.FailFlush
	}
	m.flushCount++
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
	return nil
}

// Clear blanks the grid.
func (m *MockTerminal) Clear() error {
	if m.FailClear != nil {
		return m.FailClear
	}
	m.clearCount++
	for i := range m.cells {
		m.cells[i] = blankCell
	}
	return nil
}

// HideCursor records that the cursor is hidden.
func (m *MockTerminal) HideCursor() error {
	m.cursorHidden = true
	return nil
}

// ShowCursor records that the cursor is visible.
func (m *MockTerminal) ShowCursor() error {
	m.cursorHidden = false
	return nil
}

// EnterRawMode records raw mode.
func (m *MockTerminal) EnterRawMode() error {
	if m.FailRawMode != nil {
		return m.FailRawMode
	}
	m.inRawMode = true
	return nil
}

// ExitRawMode records leaving raw mode.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	return nil
}

// EnterAltScreen records the alternate screen.
func (m *MockTerminal) EnterAltScreen() error {
	if m.FailAltEnter != nil {
		return m.FailAltEnter
	}
	m.inAltScreen = true
	return nil
}

// ExitAltScreen records leaving the alternate screen.
func (m *MockTerminal) ExitAltScreen() error {
	m.inAltScreen = false
	return nil
}

// Resize changes the reported size and blanks the grid.
func (m *MockTerminal) Resize(width, height int) {
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	for i := range m.cells {
		m.cells[i] = blankCell
	}
}

// CellAt returns the cell at (x, y), or an empty Cell when out of bounds.
func (m *MockTerminal) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String returns the grid content, one line per row.
func (m *MockTerminal) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := m.cells[y*m.width+x]
			if c.IsContinuation() {
				continue
			}
			sb.WriteRune(c.Rune)
		}
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each line.
func (m *MockTerminal) StringTrimmed() string {
	lines := strings.Split(m.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// IsBlank reports whether every cell is a space.
func (m *MockTerminal) IsBlank() bool {
	return strings.TrimSpace(m.String()) == ""
}

// IsCursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool { return m.cursorHidden }

// IsInRawMode reports whether raw mode is active.
func (m *MockTerminal) IsInRawMode() bool { return m.inRawMode }

// IsInAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) IsInAltScreen() bool { return m.inAltScreen }

// ClearCount returns how many times Clear succeeded.
func (m *MockTerminal) ClearCount() int { return m.clearCount }

// FlushCount returns how many times Flush succeeded.
func (m *MockTerminal) FlushCount() int { return m.flushCount }
