package tui

import "unicode/utf8"

// parseInput parses buffered bytes into events.
// Handles:
//   - printable characters (including multi-byte UTF-8) -> KeyRune
//   - control characters -> Enter/Tab/Backspace/Escape or Ctrl+letter
//   - CSI sequences (ESC [ ...) -> arrows, navigation and function keys with modifiers
//   - SS3 sequences (ESC O x) -> arrows and F1-F4 in application cursor mode
//   - ESC followed by a printable byte -> that rune with ModAlt
func parseInput(data []byte) []Event {
	var events []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				// Lone escape at end of read
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			switch next := data[i+1]; {
			case next == '[':
				key, mod, consumed := parseCSISequence(data[i:])
				if consumed > 0 {
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key, Mod: mod})
					}
					i += consumed
					continue
				}
			case next == 'O':
				if i+2 < len(data) {
					if key := parseSS3(data[i+2]); key != KeyNone {
						events = append(events, KeyEvent{Key: key})
						i += 3
						continue
					}
				}
			case next >= 0x20 && next < 0x7f:
				events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
				i += 2
				continue
			}

			// Unknown or malformed sequence
			events = append(events, KeyEvent{Key: KeyEscape})
			i++
			continue
		}

		if b < 0x20 {
			if ev := controlToKey(b); ev.Key != KeyNone {
				events = append(events, ev)
			}
			i++
			continue
		}

		// DEL is backspace on most terminals
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8, skip byte
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events
}

// controlToKey converts a control character (0x00-0x1F) to a KeyEvent.
func controlToKey(b byte) KeyEvent {
	switch b {
	case 0x00:
		return KeyEvent{Key: KeyRune, Rune: ' ', Mod: ModCtrl}
	case 0x08:
		return KeyEvent{Key: KeyBackspace}
	case 0x09:
		return KeyEvent{Key: KeyTab}
	case 0x0d:
		return KeyEvent{Key: KeyEnter}
	case 0x1b:
		return KeyEvent{Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyEvent{Key: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}
	}
	return KeyEvent{Key: KeyNone}
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the key, modifier, and number of bytes consumed.
// Returns (KeyNone, ModNone, 0) if the sequence is malformed or incomplete.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	current := 0
	hasParam := false

	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			current = current*10 + int(b-'0')
			hasParam = true
		case b == ';':
			params = append(params, current)
			current = 0
			hasParam = false
		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, current)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, 0
		}
	}

	return KeyNone, ModNone, 0
}

// tildeKeys maps the first parameter of "CSI n ~" sequences.
var tildeKeys = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	7: KeyHome, 8: KeyEnd,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10, 23: KeyF11, 24: KeyF12,
}

// parseCSI maps a complete CSI sequence's parameters and final byte to a key.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	// xterm-style: CSI 1;mod X
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	if final == '~' {
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		if key, ok := tildeKeys[params[0]]; ok {
			return key, mod
		}
		return KeyNone, ModNone
	}

	if key := parseSS3(final); key != KeyNone {
		return key, mod
	}
	return KeyNone, ModNone
}

// parseSS3 maps the final byte shared by SS3 and short CSI sequences.
func parseSS3(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	case 'P':
		return KeyF1
	case 'Q':
		return KeyF2
	case 'R':
		return KeyF3
	case 'S':
		return KeyF4
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter:
// 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// incompleteUTF8Suffix returns the trailing bytes of data that start a
// UTF-8 sequence whose continuation bytes have not arrived yet.
func incompleteUTF8Suffix(data []byte) []byte {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		if b >= 0xC0 {
			need := 4
			switch {
			case b < 0xE0:
				need = 2
			case b < 0xF0:
				need = 3
			}
			if i < need {
				return data[len(data)-i:]
			}
			return nil
		}
		if b < 0x80 {
			return nil
		}
		// continuation byte, keep looking for the lead byte
	}
	return nil
}

// incompleteEscapeSuffix returns the trailing bytes of data that start an
// escape sequence whose remaining bytes have not arrived yet: a bare ESC,
// "ESC O", or "ESC [" followed only by parameter bytes.
func incompleteEscapeSuffix(data []byte) []byte {
	start := -1
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] == 0x1b {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	tail := data[start:]
	if len(tail) == 1 {
		return tail
	}
	switch tail[1] {
	case 'O':
		if len(tail) == 2 {
			return tail
		}
	case '[':
		for _, b := range tail[2:] {
			if (b < '0' || b > '9') && b != ';' {
				return nil
			}
		}
		return tail
	}
	return nil
}
