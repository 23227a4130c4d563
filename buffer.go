package tui

import "strings"

// Buffer is a double-buffered 2D grid of cells.
// Writes go to the back buffer; Diff reports what changed since the last Swap.
type Buffer struct {
	front  []Cell // Currently displayed state
	back   []Cell // State being built
	width  int
	height int
}

// CellChange represents a single cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a new double-buffered grid of the specified dimensions.
// Both buffers are initialized with spaces.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.alloc(width, height)
	return b
}

func (b *Buffer) alloc(width, height int) {
	width = max(width, 0)
	height = max(height, 0)

	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	for i := range b.front {
		b.front[i] = blankCell
		b.back[i] = blankCell
	}
	b.width = width
	b.height = height
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y) from the back buffer.
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.back[i]
}

// SetCell sets the cell at position (x, y) in the back buffer.
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.back[i] = c
}

// SetRune sets a rune at position (x, y).
// A wide rune that does not fit before the right edge is replaced by a space.
func (b *Buffer) SetRune(x, y int, r rune) {
	if b.idx(x, y) < 0 {
		return
	}

	// Overwriting either half of a wide character blanks the other half.
	cur := b.Cell(x, y)
	if cur.IsContinuation() {
		b.SetCell(x-1, y, blankCell)
	} else if cur.Width == 2 {
		b.SetCell(x+1, y, blankCell)
	}

	width := RuneWidth(r)
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, blankCell)
		return
	}

	b.SetCell(x, y, Cell{Rune: r, Width: uint8(width)})
	if width == 2 {
		if next := b.Cell(x+1, y); next.Width == 2 {
			b.SetCell(x+2, y, blankCell)
		}
		b.SetCell(x+1, y, Cell{})
	}
}

// SetString writes a string starting at position (x, y).
// Returns the total display width consumed. Stops at the buffer edge without wrapping.
func (b *Buffer) SetString(x, y int, s string) int {
	return b.SetStringClipped(x, y, s, b.Rect())
}

// SetStringClipped writes a string clipped to a rectangle.
// Characters outside clip are not rendered.
func (b *Buffer) SetStringClipped(x, y int, s string, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	total := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Right() || curX+width > clip.Right() {
			break
		}
		if curX >= clip.X {
			b.SetRune(curX, y, r)
			total += width
		}
		curX += width
	}
	return total
}

// Clear clears the entire back buffer to spaces.
func (b *Buffer) Clear() {
	b.ClearRect(b.Rect())
}

// ClearRect clears a rectangular region to spaces.
func (b *Buffer) ClearRect(rect Rect) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetCell(x, y, blankCell)
		}
	}
}

// Diff returns all cells that changed between front and back buffers,
// in row-major order.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			if b.back[i] != b.front[i] {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[i]})
			}
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer.
// Call this after flushing changes to the terminal.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Resize changes the buffer dimensions. Both buffers are reset, so the next
// Diff after drawing reports every non-blank cell; callers are expected to
// clear the terminal alongside a resize.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	b.alloc(width, height)
}

// String renders the back buffer to a string, one line per row.
func (b *Buffer) String() string {
	return b.render(false)
}

// StringTrimmed is String with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	return b.render(true)
}

func (b *Buffer) render(trim bool) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			line.WriteRune(cell.Rune)
		}
		if trim {
			sb.WriteString(strings.TrimRight(line.String(), " "))
		} else {
			sb.WriteString(line.String())
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
