package main

import (
	"errors"
	"io"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/hq9/vm"
)

// settings are the option defaults read from the environment and the config
// file, before the command line is applied.
type settings struct {
	cfg      vm.Config
	noColor  bool
	logLevel string
	report   string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("HQ9")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("no-color", "HQ9_NO_COLOR", "NO_COLOR")

	v.SetDefault("quiet", false)
	v.SetDefault("stop-on-error", false)
	v.SetDefault("exact", false)
	v.SetDefault("newlines", false)
	v.SetDefault("no-color", false)
	v.SetDefault("log-level", "warn")
	v.SetDefault("report", "")
	return v
}

// readConfigFile loads $HQ9_CONFIG, or ~/.hq9.yaml when that is not set. A
// missing default config file is not an error.
func readConfigFile(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(".hq9")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func loadSettings(v *viper.Viper) settings {
	cfg := vm.DefaultConfig()
	if v.GetBool("quiet") {
		cfg.ErrorMessages = false
	}
	if v.GetBool("newlines") {
		cfg.IgnoreNewlines = false
	}
	cfg.StopOnError = v.GetBool("stop-on-error")
	cfg.Exact = v.GetBool("exact")
	return settings{
		cfg:      cfg,
		noColor:  v.GetBool("no-color"),
		logLevel: v.GetString("log-level"),
		report:   v.GetString("report"),
	}
}

// newLogger returns a console logger on w. Unknown levels fall back to warn.
func newLogger(w io.Writer, level string, colored bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !colored}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
