package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/hq9"
	"github.com/deepnoodle-ai/hq9/vm"
)

type app struct {
	v      *viper.Viper
	status int
}

func newApp() *app {
	return &app{v: newViper()}
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()
	configErr := readConfigFile(a.v)
	settings := loadSettings(a.v)

	useColor := shouldColorize(stderr, settings.noColor)
	processGlobalFlags(useColor)
	logger := newLogger(stderr, settings.logLevel, useColor)
	if configErr != nil {
		logger.Warn().Err(configErr).Msg("ignoring config file")
	}

	inv := parseArgs(args, settings.cfg)
	switch inv.usage {
	case fullUsage:
		printUsage(stderr)
		return nil
	case optionsUsage:
		printOptionsUsage(stderr)
		return nil
	}

	opts := []hq9.Option{
		hq9.WithConfig(inv.cfg),
		hq9.WithStdin(cmd.InOrStdin()),
		hq9.WithStdout(cmd.OutOrStdout()),
		hq9.WithStderr(stderr),
		hq9.WithColor(useColor),
		hq9.WithLogger(logger),
	}
	if logger.GetLevel() <= zerolog.TraceLevel {
		opts = append(opts, hq9.WithObserver(vm.NewLogObserver(logger)))
	}
	interp := hq9.New(opts...)

	var summary *hq9.Summary
	if len(inv.files) == 0 {
		summary = interp.RunStdin()
	} else {
		summary = interp.RunFiles(inv.files...)
	}

	if err := writeReport(stderr, settings.report, summary, useColor); err != nil {
		logger.Warn().Err(err).Msg("report")
	}
	a.status = summary.ExitStatus()
	return nil
}
