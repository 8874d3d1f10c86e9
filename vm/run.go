package vm

import "github.com/deepnoodle-ai/hq9/source"

// Run executes the given program in a new Machine and returns the result.
func Run(src source.Source, options ...Option) Result {
	return New(src, options...).Run()
}

// RunString executes program text held in memory. Used mostly in tests and
// examples.
func RunString(program string, options ...Option) Result {
	return Run(source.NewLiteral("<string>", program), options...)
}
