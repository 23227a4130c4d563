package tui

import (
	"slices"
	"testing"
)

func TestParseInput(t *testing.T) {
	type tc struct {
		input    string
		expected []Event
	}

	tests := map[string]tc{
		"letter":         {input: "q", expected: []Event{KeyEvent{Key: KeyRune, Rune: 'q'}}},
		"several runes":  {input: "ab", expected: []Event{KeyEvent{Key: KeyRune, Rune: 'a'}, KeyEvent{Key: KeyRune, Rune: 'b'}}},
		"utf8 rune":      {input: "日", expected: []Event{KeyEvent{Key: KeyRune, Rune: '日'}}},
		"csi up":         {input: "\x1b[A", expected: []Event{KeyEvent{Key: KeyUp}}},
		"csi down":       {input: "\x1b[B", expected: []Event{KeyEvent{Key: KeyDown}}},
		"csi right":      {input: "\x1b[C", expected: []Event{KeyEvent{Key: KeyRight}}},
		"csi left":       {input: "\x1b[D", expected: []Event{KeyEvent{Key: KeyLeft}}},
		"ss3 up":         {input: "\x1bOA", expected: []Event{KeyEvent{Key: KeyUp}}},
		"ss3 down":       {input: "\x1bOB", expected: []Event{KeyEvent{Key: KeyDown}}},
		"ss3 f1":         {input: "\x1bOP", expected: []Event{KeyEvent{Key: KeyF1}}},
		"ctrl up":        {input: "\x1b[1;5A", expected: []Event{KeyEvent{Key: KeyUp, Mod: ModCtrl}}},
		"shift down":     {input: "\x1b[1;2B", expected: []Event{KeyEvent{Key: KeyDown, Mod: ModShift}}},
		"ctrl alt right": {input: "\x1b[1;7C", expected: []Event{KeyEvent{Key: KeyRight, Mod: ModCtrl | ModAlt}}},
		"home":           {input: "\x1b[H", expected: []Event{KeyEvent{Key: KeyHome}}},
		"delete":         {input: "\x1b[3~", expected: []Event{KeyEvent{Key: KeyDelete}}},
		"page up":        {input: "\x1b[5~", expected: []Event{KeyEvent{Key: KeyPageUp}}},
		"f5":             {input: "\x1b[15~", expected: []Event{KeyEvent{Key: KeyF5}}},
		"f12":            {input: "\x1b[24~", expected: []Event{KeyEvent{Key: KeyF12}}},
		"unknown csi":    {input: "\x1b[Z", expected: nil},
		"unknown tilde":  {input: "\x1b[99~", expected: nil},
		"lone escape":    {input: "\x1b", expected: []Event{KeyEvent{Key: KeyEscape}}},
		"truncated csi":  {input: "\x1b[", expected: []Event{KeyEvent{Key: KeyEscape}, KeyEvent{Key: KeyRune, Rune: '['}}},
		"alt rune":       {input: "\x1bx", expected: []Event{KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModAlt}}},
		"enter":          {input: "\r", expected: []Event{KeyEvent{Key: KeyEnter}}},
		"tab":            {input: "\t", expected: []Event{KeyEvent{Key: KeyTab}}},
		"del":            {input: "\x7f", expected: []Event{KeyEvent{Key: KeyBackspace}}},
		"ctrl h":         {input: "\x08", expected: []Event{KeyEvent{Key: KeyBackspace}}},
		"ctrl c":         {input: "\x03", expected: []Event{KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl}}},
		"ctrl space":     {input: "\x00", expected: []Event{KeyEvent{Key: KeyRune, Rune: ' ', Mod: ModCtrl}}},
		"unmapped ctrl":  {input: "\x1c", expected: nil},
		"invalid utf8":   {input: "\xffa", expected: []Event{KeyEvent{Key: KeyRune, Rune: 'a'}}},
		"burst": {
			input: "\x1b[A\x1b[A\x1bOBq",
			expected: []Event{
				KeyEvent{Key: KeyUp},
				KeyEvent{Key: KeyUp},
				KeyEvent{Key: KeyDown},
				KeyEvent{Key: KeyRune, Rune: 'q'},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := parseInput([]byte(tt.input))
			if !slices.Equal(got, tt.expected) {
				t.Errorf("parseInput(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIncompleteUTF8Suffix(t *testing.T) {
	type tc struct {
		input    string
		expected string
	}

	tests := map[string]tc{
		"ascii":              {input: "ab", expected: ""},
		"complete 3 byte":    {input: "a日", expected: ""},
		"lead byte only":     {input: "a\xe6", expected: "\xe6"},
		"missing last byte":  {input: "a\xe6\x97", expected: "\xe6\x97"},
		"4 byte missing one": {input: "\xf0\x9f\x98", expected: "\xf0\x9f\x98"},
		"complete 4 byte":    {input: "😀", expected: ""},
		"empty":              {input: "", expected: ""},
		"2 byte missing one": {input: "x\xc3", expected: "\xc3"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := string(incompleteUTF8Suffix([]byte(tt.input)))
			if got != tt.expected {
				t.Errorf("incompleteUTF8Suffix(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIncompleteEscapeSuffix(t *testing.T) {
	type tc struct {
		input    string
		expected string
	}

	tests := map[string]tc{
		"no escape":          {input: "ab", expected: ""},
		"bare escape":        {input: "a\x1b", expected: "\x1b"},
		"csi introducer":     {input: "\x1b[", expected: "\x1b["},
		"csi with params":    {input: "x\x1b[1;5", expected: "\x1b[1;5"},
		"ss3 introducer":     {input: "\x1bO", expected: "\x1bO"},
		"complete csi":       {input: "\x1b[A", expected: ""},
		"complete ss3":       {input: "\x1bOB", expected: ""},
		"alt rune":           {input: "\x1bx", expected: ""},
		"complete then bare": {input: "\x1b[B\x1b", expected: "\x1b"},
		"malformed csi":      {input: "\x1b[1\x01", expected: ""},
		"empty":              {input: "", expected: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := string(incompleteEscapeSuffix([]byte(tt.input)))
			if got != tt.expected {
				t.Errorf("incompleteEscapeSuffix(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
