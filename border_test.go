package tui

import "testing"

func TestDrawBox(t *testing.T) {
	type tc struct {
		width, height int
		rect          Rect
		border        BorderStyle
		expected      string
	}

	tests := map[string]tc{
		"single": {
			width: 4, height: 3, rect: NewRect(0, 0, 4, 3), border: BorderSingle,
			expected: "┌──┐\n│  │\n└──┘",
		},
		"two rows": {
			width: 3, height: 2, rect: NewRect(0, 0, 3, 2), border: BorderSingle,
			expected: "┌─┐\n└─┘",
		},
		"unknown style": {
			width: 3, height: 2, rect: NewRect(0, 0, 3, 2), border: BorderStyle(9),
			expected: "   \n   ",
		},
		"none": {
			width: 3, height: 2, rect: NewRect(0, 0, 3, 2), border: BorderNone,
			expected: "   \n   ",
		},
		"too narrow": {
			width: 4, height: 3, rect: NewRect(0, 0, 1, 3), border: BorderSingle,
			expected: "    \n    \n    ",
		},
		"clipped to buffer": {
			width: 4, height: 3, rect: NewRect(-2, 0, 10, 3), border: BorderSingle,
			expected: "┌──┐\n│  │\n└──┘",
		},
		"inner rect": {
			width: 5, height: 4, rect: NewRect(1, 1, 3, 3), border: BorderSingle,
			expected: "     \n ┌─┐ \n │ │ \n └─┘ ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(tt.width, tt.height)
			DrawBox(buf, tt.rect, tt.border)
			if buf.String() != tt.expected {
				t.Errorf("DrawBox() =\n%s\nwant\n%s", buf.String(), tt.expected)
			}
		})
	}
}
