// Package view drives the counter's only loop: it reads the current value,
// draws it, waits a bounded time for a key, turns Up and Down into actions
// for the dispatcher, and stops on q.
//
// The view depends on small interfaces rather than on a terminal, so tests
// run it against tui.MockTerminal and tui.MockEventReader.
package view
