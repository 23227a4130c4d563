package tui

// BorderStyle selects the characters a box is drawn with.
type BorderStyle int

const (
	BorderNone   BorderStyle = iota // no border, content uses the full area
	BorderSingle                    // ┌─┐│└┘
)

// BorderChars are the six runes of a box: corners clockwise from the top
// left, then the horizontal and vertical edges.
type BorderChars struct {
	TopLeft, TopRight, BottomRight, BottomLeft rune
	Horizontal, Vertical                       rune
}

var borderSets = [...]BorderChars{
	BorderNone:   {' ', ' ', ' ', ' ', ' ', ' '},
	BorderSingle: {'┌', '┐', '┘', '└', '─', '│'},
}

// Chars returns the runes for b. Unknown styles draw blanks.
func (b BorderStyle) Chars() BorderChars {
	if b < 0 || int(b) >= len(borderSets) {
		return borderSets[BorderNone]
	}
	return borderSets[b]
}

// DrawBox draws the outline of rect, clipped to buf.
// Nothing is drawn when the visible part is smaller than 2x2.
func DrawBox(buf *Buffer, rect Rect, border BorderStyle) {
	if border == BorderNone {
		return
	}
	rect = rect.Intersect(buf.Rect())
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	c := border.Chars()
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.Right()-1, rect.Bottom()-1

	for x := x0 + 1; x < x1; x++ {
		buf.SetRune(x, y0, c.Horizontal)
		buf.SetRune(x, y1, c.Horizontal)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.SetRune(x0, y, c.Vertical)
		buf.SetRune(x1, y, c.Vertical)
	}

	buf.SetRune(x0, y0, c.TopLeft)
	buf.SetRune(x1, y0, c.TopRight)
	buf.SetRune(x1, y1, c.BottomRight)
	buf.SetRune(x0, y1, c.BottomLeft)
}
