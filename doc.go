// Package tui is the terminal layer of the counter: raw mode and the
// alternate screen, a double-buffered cell grid, box and paragraph widgets,
// and a polling event reader that parses keyboard input.
//
// A Session bundles all of it for a full-screen program and guarantees the
// terminal is restored when it is closed. MockTerminal and MockEventReader
// stand in for the real terminal in tests.
package tui
