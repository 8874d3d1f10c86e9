package hq9

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/hq9/vm"
)

// Option describes a function used to configure an Interpreter.
type Option func(*config)

type config struct {
	vm       vm.Config
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	color    bool
	logger   zerolog.Logger
	observer vm.Observer
}

func collectOptions(opts ...Option) *config {
	cfg := &config{
		vm:     vm.DefaultConfig(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func (cfg *config) vmOpts(logger zerolog.Logger, acc int32) []vm.Option {
	opts := []vm.Option{
		vm.WithConfig(cfg.vm),
		vm.WithAccumulator(acc),
		vm.WithOutput(cfg.stdout),
		vm.WithDiagnostics(cfg.stderr),
		vm.WithColor(cfg.color),
		vm.WithLogger(logger),
	}
	if cfg.observer != nil {
		opts = append(opts, vm.WithObserver(cfg.observer))
	}
	return opts
}

// WithConfig sets the interpreter settings. The default is vm.DefaultConfig().
func WithConfig(c vm.Config) Option {
	return func(cfg *config) {
		cfg.vm = c
	}
}

// WithStdin sets the reader used by RunStdin. The default is os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(cfg *config) {
		cfg.stdin = r
	}
}

// WithStdout sets the stream written by H, Q and 9. The default is
// os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(cfg *config) {
		cfg.stdout = w
	}
}

// WithStderr sets the stream that receives diagnostics. The default is
// os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(cfg *config) {
		cfg.stderr = w
	}
}

// WithColor enables colored diagnostics.
func WithColor(enabled bool) Option {
	return func(cfg *config) {
		cfg.color = enabled
	}
}

// WithLogger sets the logger. Logging is disabled by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithObserver attaches an observer to every program run.
func WithObserver(observer vm.Observer) Option {
	return func(cfg *config) {
		cfg.observer = observer
	}
}
