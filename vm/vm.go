// Package vm provides a Machine that executes one HQ9+ program.
package vm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/hq9/builtins"
	"github.com/deepnoodle-ai/hq9/errz"
	"github.com/deepnoodle-ai/hq9/op"
	"github.com/deepnoodle-ai/hq9/source"
)

// Config holds the interpreter settings. It is fixed for the duration of a
// run.
type Config struct {
	// ErrorMessages enables diagnostics on the error stream.
	ErrorMessages bool
	// StopOnError halts a program at its first unknown command.
	StopOnError bool
	// IgnoreNewlines treats '\n' as a no-op instead of an unknown command.
	IgnoreNewlines bool
	// LiteralIfMissing runs a command line argument as the program text when
	// no file by that name exists.
	LiteralIfMissing bool
	// Exact makes H print "Hello, World".
	Exact bool
}

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		ErrorMessages:  true,
		IgnoreNewlines: true,
	}
}

// HaltReason describes why a Machine stopped.
type HaltReason uint8

const (
	// EndOfProgram means every character of the program was processed.
	EndOfProgram HaltReason = iota
	// StopOnError means an unknown command was found with StopOnError set.
	StopOnError
	// SourceError means the program could not be opened or read, either
	// while scanning it or while a Q command was printing it.
	SourceError
)

func (h HaltReason) String() string {
	switch h {
	case EndOfProgram:
		return "end-of-program"
	case StopOnError:
		return "stop-on-error"
	case SourceError:
		return "source-error"
	default:
		return fmt.Sprintf("halt(%d)", uint8(h))
	}
}

// Result is the outcome of running one program.
type Result struct {
	Accumulator int32
	Errors      int
	Halt        HaltReason
	// Err is the file error that halted the program when Halt is
	// SourceError.
	Err error
}

type state uint8

const (
	running state = iota
	halted
)

// Machine executes a single program. It is not safe for concurrent use and
// runs at most once.
type Machine struct {
	src      source.Source
	cfg      Config
	out      io.Writer
	diag     io.Writer
	color    bool
	logger   zerolog.Logger
	observer Observer

	state state
	pos   int
	acc   int32
	errs  int
	halt  HaltReason
	err   error
}

// New creates a Machine for the given program.
func New(src source.Source, options ...Option) *Machine {
	m := &Machine{
		src:    src,
		cfg:    DefaultConfig(),
		out:    io.Discard,
		diag:   io.Discard,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Run executes the program from its first character to its last, or until
// it halts early. The program source is closed before Run returns.
func (m *Machine) Run() Result {
	r, err := m.src.Open()
	if err != nil {
		m.fail(errz.FileError(errz.Read, m.src.Name(), err))
		return m.result()
	}
	defer r.Close()

	m.logger.Debug().Str("source", m.src.Name()).Int32("accumulator", m.acc).Msg("running")

	br := bufio.NewReader(r)
	for m.state == running {
		c, err := br.ReadByte()
		switch {
		case err == io.EOF:
			m.stop(EndOfProgram, nil)
		case err != nil:
			m.fail(errz.FileError(errz.Read, m.src.Name(), err))
		default:
			m.exec(c)
			m.pos++
		}
	}
	return m.result()
}

func (m *Machine) exec(c byte) {
	code := op.Dispatch(c)
	if m.observer != nil {
		m.observer.OnStep(StepEvent{
			Source:      m.src.Name(),
			Pos:         m.pos,
			Char:        c,
			Code:        code,
			Accumulator: m.acc,
			Errors:      m.errs,
		})
	}
	switch code {
	case op.Greet:
		m.output(builtins.Greet(m.out, m.cfg.Exact))
	case op.Quine:
		if err := builtins.Quine(m.out, m.src); err != nil {
			if errz.IsFileError(err) {
				m.fail(err)
				return
			}
			m.output(err)
		}
	case op.Lyrics:
		m.output(builtins.Lyrics(m.out))
	case op.Increment:
		m.acc++
	default:
		if c == '\n' && m.cfg.IgnoreNewlines {
			return
		}
		m.errs++
		m.report(errz.UnknownCommand(c, m.pos))
		if m.cfg.StopOnError {
			m.stop(StopOnError, nil)
		}
	}
}

// fail counts err as one error and halts the program.
func (m *Machine) fail(err error) {
	m.errs++
	m.report(err)
	m.stop(SourceError, err)
}

func (m *Machine) stop(reason HaltReason, err error) {
	m.state = halted
	m.halt = reason
	m.err = err
	m.logger.Debug().
		Str("source", m.src.Name()).
		Stringer("halt", reason).
		Int32("accumulator", m.acc).
		Int("errors", m.errs).
		Msg("halted")
	if m.observer != nil {
		m.observer.OnHalt(m.result())
	}
}

func (m *Machine) result() Result {
	return Result{
		Accumulator: m.acc,
		Errors:      m.errs,
		Halt:        m.halt,
		Err:         m.err,
	}
}

// report writes a diagnostic line for err when error messages are enabled.
func (m *Machine) report(err error) {
	if !m.cfg.ErrorMessages {
		return
	}
	msg := err.Error()
	if m.color {
		c := color.New(color.FgRed)
		c.EnableColor()
		msg = c.Sprint(msg)
	}
	fmt.Fprintln(m.diag, msg)
}

// output records a failed write to the output stream. Output failures never
// affect the accumulator or the error count.
func (m *Machine) output(err error) {
	if err != nil {
		m.logger.Debug().Err(err).Str("source", m.src.Name()).Msg("write failed")
	}
}
