package view

import (
	"strconv"

	tui "github.com/grindlemire/go-tui-counter"
)

// Text returns the line shown for value.
func Text(value int64) string {
	return "Counter: " + strconv.FormatInt(value, 10)
}

// Render draws value as a bordered paragraph filling the whole frame.
// It depends on nothing but its arguments.
func Render(f *tui.Frame, value int64) {
	chunks := tui.Split(f.Area(), tui.Vertical, tui.Percent(100))

	f.RenderWidget(tui.Paragraph{
		Text:  Text(value),
		Block: &tui.Block{Border: tui.BorderSingle},
	}, chunks[0])
}
