package hq9

import "github.com/deepnoodle-ai/hq9/vm"

// SourceResult is the outcome of one program in a batch.
type SourceResult struct {
	Name string
	vm.Result
}

// Summary is the outcome of a batch of programs.
type Summary struct {
	// RunID identifies the batch in log output.
	RunID string
	// Accumulator is the value left by the last program that ran.
	Accumulator int32
	// Errors is the total error count of every program that ran.
	Errors int
	Runs   []SourceResult
	// Err aggregates the file errors of the batch, or is nil.
	Err error
}

func (s *Summary) add(name string, result vm.Result) {
	s.Runs = append(s.Runs, SourceResult{Name: name, Result: result})
	s.Accumulator = result.Accumulator
	s.Errors += result.Errors
}

// ExitStatus returns the accumulator as a process exit status, which the
// calling environment reads modulo 256.
func (s *Summary) ExitStatus() int {
	return int(uint8(s.Accumulator))
}
