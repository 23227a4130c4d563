package tui

import (
	"errors"
	"time"
)

// MockEventReader is an EventReader for testing.
// It replays a script one Poll at a time: an event makes Poll report ready
// and Read return it, a nil event makes Poll time out, and an error makes
// Poll fail. Once the script is exhausted Poll times out forever.
type MockEventReader struct {
	steps  []mockStep
	index  int
	polls  int
	closed bool
}

type mockStep struct {
	event Event
	err   error
}

var _ EventReader = (*MockEventReader)(nil)

var errNoMockEvent = errors.New("mock reader: Read called with no event ready")

// NewMockEventReader creates a MockEventReader with the given events.
// A nil entry scripts one timed-out Poll.
func NewMockEventReader(events ...Event) *MockEventReader {
	m := &MockEventReader{}
	m.AddEvents(events...)
	return m
}

// AddEvents appends events to the script.
func (m *MockEventReader) AddEvents(events ...Event) {
	for _, ev := range events {
		m.steps = append(m.steps, mockStep{event: ev})
	}
}

// AddError appends a failing Poll to the script.
func (m *MockEventReader) AddError(err error) {
	m.steps = append(m.steps, mockStep{err: err})
}

// Poll consumes a timeout or error step, or reports a ready event.
// The timeout is ignored.
func (m *MockEventReader) Poll(time.Duration) (bool, error) {
	if m.closed {
		return false, ErrReaderClosed
	}
	m.polls++
	if m.index >= len(m.steps) {
		return false, nil
	}
	step := m.steps[m.index]
	if step.event != nil {
		return true, nil
	}
	m.index++
	return false, step.err
}

// Read returns the ready event.
func (m *MockEventReader) Read() (Event, error) {
	if m.index >= len(m.steps) || m.steps[m.index].event == nil {
		return nil, errNoMockEvent
	}
	ev := m.steps[m.index].event
	m.index++
	return ev, nil
}

// Close marks the reader closed.
func (m *MockEventReader) Close() error {
	m.closed = true
	return nil
}

// Remaining returns the number of script steps not yet consumed.
func (m *MockEventReader) Remaining() int {
	return len(m.steps) - m.index
}

// Polls returns how many times Poll was called.
func (m *MockEventReader) Polls() int {
	return m.polls
}

// Closed reports whether Close was called.
func (m *MockEventReader) Closed() bool {
	return m.closed
}
