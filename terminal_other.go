//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package tui

import (
	"os"
	"time"
)

type rawModeState struct{}

func enableRawMode(int) (*rawModeState, error) {
	return nil, ErrUnsupportedPlatform
}

func disableRawMode(int, *rawModeState) error {
	return nil
}

func getTerminalSize(int) (int, int, error) {
	return 0, 0, ErrUnsupportedPlatform
}

func selectWithTimeout(int, time.Duration) (bool, error) {
	return false, ErrUnsupportedPlatform
}

func readInput(int, []byte) (int, error) {
	return 0, ErrUnsupportedPlatform
}

func notifyResize(chan<- os.Signal) {}
