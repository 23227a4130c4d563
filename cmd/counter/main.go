// Command counter is a full-screen terminal counter: Up increments, Down
// decrements, q quits.
//
// Usage:
//
//	counter [--config path]
//	counter version
package main

import "github.com/grindlemire/go-tui-counter/cmd/counter/cmd"

func main() {
	cmd.Execute()
}
