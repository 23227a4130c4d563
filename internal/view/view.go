package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	tui "github.com/grindlemire/go-tui-counter"
	"github.com/grindlemire/go-tui-counter/internal/counter"
	"github.com/grindlemire/go-tui-counter/internal/logger"
)

// Surface is where frames are drawn.
type Surface interface {
	Draw(fn func(f *tui.Frame)) error
	Clear() error
}

// Input is a source of terminal events with a bounded wait.
type Input interface {
	Poll(timeout time.Duration) (bool, error)
	Read() (tui.Event, error)
}

// StateReader gives read access to the counter.
type StateReader interface {
	Value() (int64, error)
}

// Dispatcher accepts actions for the counter.
type Dispatcher interface {
	Dispatch(ctx context.Context, a counter.Action) error
}

// Phase is the loop's position in its two-state lifecycle.
type Phase int

const (
	// Running draws and handles input each iteration.
	Running Phase = iota
	// Terminating clears the screen and ends the loop.
	Terminating
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Terminating {
		return "terminating"
	}
	return "running"
}

// DefaultPollTimeout bounds the input wait of one iteration.
const DefaultPollTimeout = 50 * time.Millisecond

// ErrInvalidPollTimeout is returned by WithPollTimeout for non-positive durations.
var ErrInvalidPollTimeout = errors.New("poll timeout must be positive")

// Option configures a View.
type Option func(*View) error

// WithPollTimeout sets how long each iteration waits for input.
// A value of 0 (busy polling) or below is not allowed.
func WithPollTimeout(d time.Duration) Option {
	return func(v *View) error {
		if d <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidPollTimeout, d)
		}
		v.pollTimeout = d
		return nil
	}
}

// View owns the output surface and input source and runs the loop.
type View struct {
	surface     Surface
	input       Input
	state       StateReader
	dispatcher  Dispatcher
	pollTimeout time.Duration
	phase       Phase
}

// New creates a View in the Running phase.
func New(surface Surface, input Input, state StateReader, dispatcher Dispatcher, opts ...Option) (*View, error) {
	v := &View{
		surface:     surface,
		input:       input,
		state:       state,
		dispatcher:  dispatcher,
		pollTimeout: DefaultPollTimeout,
		phase:       Running,
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Phase returns the current lifecycle phase.
func (v *View) Phase() Phase {
	return v.phase
}

// Run iterates until q is pressed or ctx is cancelled, then clears the
// screen. Any error from the surface, the input or the dispatcher ends the
// loop immediately and is returned; the screen is not cleared in that case.
func (v *View) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "view")

	for v.phase == Running {
		if err := v.Step(ctx); err != nil {
			return err
		}
	}

	if err := v.surface.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	logger.Info(ctx, "View terminated")

	return nil
}

// Step runs one Running iteration: read the value, draw it, then wait up to
// the poll timeout for one event and handle it. Drawing always happens
// before new input is consumed.
func (v *View) Step(ctx context.Context) error {
	if v.phase != Running {
		return nil
	}

	if err := ctx.Err(); err != nil {
		logger.InfoKV(ctx, "Loop cancelled", "reason", err)
		v.phase = Terminating
		return nil
	}

	value, err := v.state.Value()
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}

	if err := v.surface.Draw(func(f *tui.Frame) { Render(f, value) }); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	ready, err := v.input.Poll(v.pollTimeout)
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}
	if !ready {
		return nil
	}

	ev, err := v.input.Read()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return v.handle(ctx, ev)
}

// handle applies one event: q terminates, Up and Down dispatch, the rest is
// ignored. A resize needs no work because the next Draw follows the
// terminal size.
func (v *View) handle(ctx context.Context, ev tui.Event) error {
	switch e := ev.(type) {
	case tui.KeyEvent:
		if IsQuit(e) {
			logger.Debug(ctx, "Quit requested")
			v.phase = Terminating
			return nil
		}

		a, ok := ActionFor(e)
		if !ok {
			logger.DebugKV(ctx, "Key ignored", "key", e)
			return nil
		}

		if err := v.dispatcher.Dispatch(ctx, a); err != nil {
			return fmt.Errorf("dispatch %s: %w", a, err)
		}

	case tui.ResizeEvent:
		logger.DebugKV(ctx, "Terminal resized", "width", e.Width, "height", e.Height)
	}

	return nil
}
