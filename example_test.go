package hq9_test

import (
	"fmt"
	"os"

	"github.com/deepnoodle-ai/hq9"
	"github.com/deepnoodle-ai/hq9/source"
)

func ExampleInterpreter_Run() {
	interp := hq9.New(hq9.WithStdout(os.Stdout), hq9.WithStderr(os.Stdout))
	summary := interp.Run(source.NewLiteral("example", "Hq+x+"))
	fmt.Println("accumulator:", summary.Accumulator)
	fmt.Println("errors:", summary.Errors)
	// Output:
	// Hello, world!
	// Hq+x+
	// Unknown command: x
	// accumulator: 2
	// errors: 1
}
