package vm

import (
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/hq9/errz"
	"github.com/deepnoodle-ai/hq9/op"
)

// Observer is an interface for observing Machine execution events. It can
// be used for tracing or for collecting statistics without modifying the
// machine itself.
//
// Implementations can embed NoOpObserver to provide default no-op
// implementations for methods they don't need.
type Observer interface {
	// OnStep is called for every character, before it is executed.
	OnStep(event StepEvent)

	// OnHalt is called once, when the machine stops.
	OnHalt(result Result)
}

// StepEvent contains information about a single character step.
type StepEvent struct {
	// Source is the name of the running program.
	Source string

	// Pos is the byte offset of the character in the program.
	Pos int

	// Char is the character being executed.
	Char byte

	// Code is the command the character maps to.
	Code op.Code

	// Accumulator and Errors are the values before the step executes.
	Accumulator int32
	Errors      int
}

// NoOpObserver is an Observer implementation that does nothing.
type NoOpObserver struct{}

func (NoOpObserver) OnStep(StepEvent) {}
func (NoOpObserver) OnHalt(Result)    {}

var _ Observer = NoOpObserver{}

// LogObserver writes every step to a logger at trace level.
type LogObserver struct {
	NoOpObserver
	logger zerolog.Logger
}

// NewLogObserver returns an observer that traces execution to logger.
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnStep(event StepEvent) {
	o.logger.Trace().
		Str("source", event.Source).
		Int("pos", event.Pos).
		Str("char", errz.FormatChar(event.Char)).
		Stringer("op", event.Code).
		Int32("accumulator", event.Accumulator).
		Msg("step")
}
