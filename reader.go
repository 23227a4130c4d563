package tui

import (
	"fmt"
	"os"
	"os/signal"
	"time"
)

// EventReader reads events from the terminal.
// It is designed for polling-based event loops: Poll waits a bounded time
// for input and Read returns the next event.
type EventReader interface {
	// Poll reports whether an event is ready, waiting at most timeout.
	// A timeout of 0 performs a non-blocking check; a negative timeout
	// blocks until an event arrives. Errors are not recoverable.
	Poll(timeout time.Duration) (bool, error)

	// Read returns the next event, blocking until one is available.
	Read() (Event, error)

	// Close releases resources. Must be called when done.
	Close() error
}

// escapeTimeout is how long an unfinished escape sequence waits for the
// rest of its bytes before it is delivered as typed.
const escapeTimeout = 50 * time.Millisecond

// stdinReader implements EventReader for a real terminal.
type stdinReader struct {
	fd        int
	buf       []byte
	partial   []byte         // incomplete UTF-8 or escape sequence from the previous read
	partialAt time.Time      // when partial started holding an escape sequence
	pending   []Event        // parsed events not yet returned by Read
	sigCh     chan os.Signal // SIGWINCH
	closed    bool
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) EventReader {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	notifyResize(r.sigCh)
	return r
}

// Poll waits up to timeout for an event.
func (r *stdinReader) Poll(timeout time.Duration) (bool, error) {
	if r.closed {
		return false, ErrReaderClosed
	}
	if len(r.pending) > 0 {
		return true, nil
	}

	deadline := time.Now().Add(timeout)
	for {
		select {
		case <-r.sigCh:
			w, h, err := getTerminalSize(r.fd)
			if err != nil {
				w, h = 80, 24
			}
			r.pending = append(r.pending, ResizeEvent{Width: w, Height: h})
			return true, nil
		default:
		}

		wait := timeout
		if timeout > 0 {
			wait = max(time.Until(deadline), 0)
		}
		if r.escapePending() {
			left := max(escapeTimeout-time.Since(r.partialAt), 0)
			if wait < 0 || left < wait {
				wait = left
			}
		}

		ready, err := selectWithTimeout(r.fd, wait)
		if err != nil {
			return false, fmt.Errorf("select: %w", err)
		}
		if ready {
			if err := r.fill(); err != nil {
				return false, err
			}
			if len(r.pending) > 0 {
				return true, nil
			}
		}

		// Nothing followed the escape in time: it was typed on its own.
		if r.escapePending() && time.Since(r.partialAt) >= escapeTimeout {
			r.pending = append(r.pending, parseInput(r.partial)...)
			r.partial = nil
			if len(r.pending) > 0 {
				return true, nil
			}
		}

		// Interrupted by a signal or only part of a key arrived: keep waiting
		// until the deadline.
		if timeout >= 0 && !time.Now().Before(deadline) {
			return false, nil
		}
	}
}

// Read returns the next event, blocking until one is available.
func (r *stdinReader) Read() (Event, error) {
	for len(r.pending) == 0 {
		if _, err := r.Poll(-1); err != nil {
			return nil, err
		}
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, nil
}

// Close stops resize notifications. Further Poll calls fail.
func (r *stdinReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	signal.Stop(r.sigCh)
	return nil
}

// fill reads the available bytes and parses them into pending events.
func (r *stdinReader) fill() error {
	n, err := readInput(r.fd, r.buf)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if n == 0 {
		return ErrInputClosed
	}

	data := r.buf[:n]
	wasEscape := r.escapePending()
	if len(r.partial) > 0 {
		data = append(r.partial, data...)
		r.partial = nil
	}

	rest := incompleteEscapeSuffix(data)
	if len(rest) == 0 {
		rest = incompleteUTF8Suffix(data)
	}
	if len(rest) > 0 {
		r.partial = append([]byte(nil), rest...)
		data = data[:len(data)-len(rest)]
		if r.escapePending() && (!wasEscape || len(data) > 0) {
			r.partialAt = time.Now()
		}
	}

	r.pending = append(r.pending, parseInput(data)...)
	return nil
}

// escapePending reports whether partial holds the start of an escape sequence.
func (r *stdinReader) escapePending() bool {
	return len(r.partial) > 0 && r.partial[0] == 0x1b
}
