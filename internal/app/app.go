// Package app wires the counter together: configuration, logging, the
// terminal session, the store, the dispatcher and the view loop.
package app

import (
	"context"
	"errors"
	"fmt"

	tui "github.com/grindlemire/go-tui-counter"
	"github.com/grindlemire/go-tui-counter/internal/config"
	"github.com/grindlemire/go-tui-counter/internal/counter"
	"github.com/grindlemire/go-tui-counter/internal/logger"
	"github.com/grindlemire/go-tui-counter/internal/version"
	"github.com/grindlemire/go-tui-counter/internal/view"
)

// Session is a terminal the view can draw to and read from.
// Close must restore the terminal.
type Session interface {
	view.Surface
	view.Input
	Close() error
}

// Options defines configuration for running the counter.
type Options struct {
	// ConfigPath is an optional YAML settings file.
	ConfigPath string
	// OpenSession acquires the terminal. Nil means the process's stdin and stdout.
	OpenSession func() (Session, error)
}

// Run loads settings, sets up logging, opens the terminal and runs the
// counter until q is pressed or ctx is done.
func Run(ctx context.Context, opts *Options) (err error) {
	if opts == nil {
		opts = &Options{}
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, closeLog, err := setupLogging(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeLog()) }()

	open := opts.OpenSession
	if open == nil {
		open = openTerminal
	}

	session, err := open()
	if err != nil {
		logger.ErrorKV(ctx, "Failed to open terminal", "error", err)
		return fmt.Errorf("open terminal: %w", err)
	}

	return RunWithSession(ctx, cfg, session)
}

// RunWithSession runs the counter on an already opened session.
// The session is closed before returning, on every path, and a close
// failure is joined into the returned error.
func RunWithSession(ctx context.Context, cfg *config.Config, session Session) (err error) {
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", closeErr))
		}
	}()

	if cfg == nil {
		cfg = config.Default()
	}

	store := counter.NewStore()

	v, err := view.New(session, session, store, counter.NewDispatcher(store),
		view.WithPollTimeout(cfg.PollTimeout))
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Counter started", "poll_timeout", cfg.PollTimeout)

	if err := v.Run(ctx); err != nil {
		logger.ErrorKV(ctx, "Counter failed", "error", err)
		return err
	}

	value, err := store.Value()
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Counter stopped", "value", value)

	return nil
}

func openTerminal() (Session, error) {
	s, err := tui.Open()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// setupLogging returns ctx carrying the counter's logger and a function
// that releases it. Without a log file nothing is written.
func setupLogging(ctx context.Context, cfg *config.Config) (context.Context, func() error, error) {
	noop := func() error { return nil }

	if cfg.LogFile == "" {
		return logger.WithName(ctx, "counter"), noop, nil
	}

	if lvl, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(lvl)
	}

	l, closeFn, err := logger.NewFile(cfg.LogFile, nil)
	if err != nil {
		return nil, nil, err
	}

	ctx = logger.WithName(logger.ToContext(ctx, l), "counter")
	return logger.WithKV(ctx, "version", version.Version), closeFn, nil
}
