package tui

// Screen pairs a Terminal with a Buffer and implements the drawable surface:
// each Draw builds a complete frame in the back buffer and sends only the
// cells that changed since the previous Draw.
type Screen struct {
	term Terminal
	buf  *Buffer
}

// NewScreen creates a Screen sized to the terminal.
func NewScreen(term Terminal) *Screen {
	w, h := term.Size()
	return &Screen{term: term, buf: NewBuffer(w, h)}
}

// Size returns the current frame dimensions.
func (s *Screen) Size() (width, height int) {
	return s.buf.Width(), s.buf.Height()
}

// Draw renders one frame. The buffer follows the terminal size; after a
// size change the terminal is cleared and the whole frame is sent again.
func (s *Screen) Draw(fn func(f *Frame)) error {
	if w, h := s.term.Size(); w != s.buf.Width() || h != s.buf.Height() {
		s.buf.Resize(w, h)
		if err := s.term.Clear(); err != nil {
			return err
		}
	}

	s.buf.Clear()
	fn(&Frame{buf: s.buf})

	if err := s.term.Flush(s.buf.Diff()); err != nil {
		return err
	}
	s.buf.Swap()
	return nil
}

// Clear blanks the buffer and the terminal.
func (s *Screen) Clear() error {
	s.buf.Clear()
	s.buf.Swap()
	return s.term.Clear()
}

// Frame is the handle passed to a Draw callback.
type Frame struct {
	buf *Buffer
}

// NewFrame wraps buf so render functions can be exercised without a Screen.
func NewFrame(buf *Buffer) *Frame {
	return &Frame{buf: buf}
}

// Area returns the full drawable area.
func (f *Frame) Area() Rect {
	return f.buf.Rect()
}

// RenderWidget draws w into area, clipped to the frame.
func (f *Frame) RenderWidget(w Widget, area Rect) {
	area = area.Intersect(f.buf.Rect())
	if area.IsEmpty() {
		return
	}
	w.Render(f.buf, area)
}

// Buffer exposes the underlying cell buffer.
func (f *Frame) Buffer() *Buffer {
	return f.buf
}
