package tui

// Widget is anything that can draw itself into a region of a Buffer.
type Widget interface {
	Render(buf *Buffer, area Rect)
}

// Block is a container decoration with an optional border.
// Its Inner area is where content goes.
type Block struct {
	Border BorderStyle
}

// Inner returns the part of area left for content once the border is drawn.
func (b Block) Inner(area Rect) Rect {
	if b.Border == BorderNone {
		return area
	}
	return area.Inset(1)
}

// Render clears area and draws the border.
func (b Block) Render(buf *Buffer, area Rect) {
	buf.ClearRect(area)
	DrawBox(buf, area, b.Border)
}

// Paragraph is a block of text, one line per '\n', drawn from the top-left
// of its (optionally bordered) area. Lines are clipped, not wrapped.
type Paragraph struct {
	Text  string
	Block *Block
}

// Render draws the paragraph into area.
func (p Paragraph) Render(buf *Buffer, area Rect) {
	inner := area
	if p.Block != nil {
		p.Block.Render(buf, area)
		inner = p.Block.Inner(area)
	} else {
		buf.ClearRect(area)
	}
	if inner.IsEmpty() {
		return
	}

	y := inner.Y
	start := 0
	for i := 0; i <= len(p.Text) && y < inner.Bottom(); i++ {
		if i == len(p.Text) || p.Text[i] == '\n' {
			buf.SetStringClipped(inner.X, y, p.Text[start:i], inner)
			start = i + 1
			y++
		}
	}
}
