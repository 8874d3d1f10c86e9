// Package hq9 runs HQ9+ programs.
//
// An Interpreter runs a batch of programs one after another, carrying the
// accumulator from each program into the next:
//
//	summary := hq9.New().RunFiles("hello.hq9", "count.hq9")
//	os.Exit(summary.ExitStatus())
package hq9

import (
	"io"

	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/hq9/source"
	"github.com/deepnoodle-ai/hq9/vm"
)

// Interpreter runs HQ9+ programs with a fixed configuration.
type Interpreter struct {
	cfg *config
}

// New returns an Interpreter configured by the given options.
func New(opts ...Option) *Interpreter {
	return &Interpreter{cfg: collectOptions(opts...)}
}

// Config returns the interpreter settings.
func (i *Interpreter) Config() vm.Config {
	return i.cfg.vm
}

// RunFiles runs the named programs in order. When LiteralIfMissing is set, a
// name with no file behind it is run as program text.
func (i *Interpreter) RunFiles(names ...string) *Summary {
	sources := make([]source.Source, 0, len(names))
	for _, name := range names {
		sources = append(sources, source.Resolve(name, i.cfg.vm.LiteralIfMissing))
	}
	return i.Run(sources...)
}

// RunStdin captures all of standard input and then runs it as a program.
func (i *Interpreter) RunStdin() *Summary {
	src, err := source.ReadAll(source.StdinName, i.cfg.stdin)
	if err != nil {
		return i.Run(&unavailable{name: source.StdinName, err: err})
	}
	return i.Run(src)
}

// Run executes the sources in order. Processing stops early only when
// StopOnError is set and a source reported at least one error.
func (i *Interpreter) Run(sources ...source.Source) *Summary {
	runID := uuid.Must(uuid.NewV4()).String()
	logger := i.cfg.logger.With().Str("run", runID).Logger()
	summary := &Summary{RunID: runID}

	var errs *multierror.Error
	for _, src := range sources {
		result := vm.Run(src, i.cfg.vmOpts(logger, summary.Accumulator)...)
		summary.add(src.Name(), result)
		if result.Err != nil {
			errs = multierror.Append(errs, result.Err)
		}
		if i.cfg.vm.StopOnError && result.Errors > 0 {
			logger.Debug().Str("source", src.Name()).Msg("stopping after error")
			break
		}
	}
	summary.Err = errs.ErrorOrNil()

	logger.Debug().
		Int32("accumulator", summary.Accumulator).
		Int("errors", summary.Errors).
		Int("sources", len(summary.Runs)).
		Msg("finished")
	return summary
}

// unavailable is a program whose text could not be captured.
type unavailable struct {
	name string
	err  error
}

func (u *unavailable) Name() string { return u.name }

func (u *unavailable) Open() (io.ReadCloser, error) { return nil, u.err }
