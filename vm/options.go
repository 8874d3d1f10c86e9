package vm

import (
	"io"

	"github.com/rs/zerolog"
)

// Option is a configuration function for a Machine.
type Option func(*Machine)

// WithConfig sets the interpreter settings.
func WithConfig(cfg Config) Option {
	return func(m *Machine) {
		m.cfg = cfg
	}
}

// WithAccumulator sets the starting accumulator value. It is used to carry
// the accumulator from one program to the next.
func WithAccumulator(acc int32) Option {
	return func(m *Machine) {
		m.acc = acc
	}
}

// WithOutput sets the stream written by H, Q and 9. Output is discarded by
// default.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		m.out = w
	}
}

// WithDiagnostics sets the stream that receives error messages. Diagnostics
// are discarded by default.
func WithDiagnostics(w io.Writer) Option {
	return func(m *Machine) {
		m.diag = w
	}
}

// WithColor enables colored diagnostics.
func WithColor(enabled bool) Option {
	return func(m *Machine) {
		m.color = enabled
	}
}

// WithLogger sets the logger used for debug and trace events.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithObserver sets an observer for execution events.
//
// Observer methods are called synchronously during execution, so
// implementations should be fast.
func WithObserver(observer Observer) Option {
	return func(m *Machine) {
		m.observer = observer
	}
}
