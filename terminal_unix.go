//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tui

import (
	"errors"

	"golang.org/x/sys/unix"
)

// rawModeState is the termios saved by enableRawMode.
type rawModeState struct {
	termios unix.Termios
}

// makeRaw switches t to byte-at-a-time input without echo, signal keys,
// flow control or output post-processing, like cfmakeraw(3).
func makeRaw(t *unix.Termios) {
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
}

func enableRawMode(fd int) (*rawModeState, error) {
	current, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if errors.Is(err, unix.ENOTTY) {
		return nil, ErrNotTerminal
	}
	if err != nil {
		return nil, err
	}

	saved := &rawModeState{termios: *current}
	makeRaw(current)
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, current); err != nil {
		return nil, err
	}
	return saved, nil
}

func disableRawMode(fd int, state *rawModeState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, ioctlSetTermios, &state.termios)
}

func getTerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
