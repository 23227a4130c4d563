package tui

import "errors"

var (
	// ErrNotTerminal is returned when raw mode is requested on something that
	// is not an interactive terminal (for example, redirected stdin).
	ErrNotTerminal = errors.New("not a terminal")

	// ErrUnsupportedPlatform is returned by terminal operations on platforms
	// without termios support.
	ErrUnsupportedPlatform = errors.New("terminal operations are not supported on this platform")

	// ErrInputClosed is returned when the input stream reaches end of file.
	ErrInputClosed = errors.New("input closed")

	// ErrReaderClosed is returned when polling a reader after Close.
	ErrReaderClosed = errors.New("event reader closed")
)
