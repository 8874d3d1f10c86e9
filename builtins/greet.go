// Package builtins implements the output produced by the H, Q and 9
// commands.
package builtins

import "io"

const (
	// Greeting is printed by the H command.
	Greeting = "Hello, world!"
	// ExactGreeting is printed by the H command when exact output is
	// requested.
	ExactGreeting = "Hello, World"
)

// Greet writes the greeting followed by a line break.
func Greet(w io.Writer, exact bool) error {
	text := Greeting
	if exact {
		text = ExactGreeting
	}
	_, err := io.WriteString(w, text+"\n")
	return err
}
