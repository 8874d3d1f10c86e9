package main

import (
	"strings"

	"github.com/deepnoodle-ai/hq9/vm"
)

type usageKind int

const (
	noUsage usageKind = iota
	fullUsage
	optionsUsage
)

// invocation is the parsed command line.
type invocation struct {
	cfg   vm.Config
	files []string
	usage usageKind
}

// parseArgs interprets the HQ9+ command line:
//
//	hq9 [file ...]
//	hq9 "" [-<options>] [file ...]
//
// A leading empty argument enables options. Alone, it asks for the full
// usage text. The options argument is a dash followed by any of q (no error
// messages), 9 (stop on error), H (exact greeting) and a space (newlines are
// errors). Options can only switch settings on relative to cfg. With no
// files left, the program is read from standard input.
func parseArgs(args []string, cfg vm.Config) invocation {
	inv := invocation{cfg: cfg}
	start := 0
	if len(args) > 0 && args[0] == "" {
		start = 1
		switch {
		case len(args) == 1:
			inv.usage = fullUsage
		case strings.HasPrefix(args[1], "-"):
			start = 2
			for i := 1; i < len(args[1]); i++ {
				switch args[1][i] {
				case 'q':
					inv.cfg.ErrorMessages = false
				case '9':
					inv.cfg.StopOnError = true
				case 'H':
					inv.cfg.Exact = true
				case ' ':
					inv.cfg.IgnoreNewlines = false
				default:
					inv.usage = optionsUsage
				}
			}
		default:
			inv.usage = optionsUsage
		}
		if inv.usage != noUsage {
			return inv
		}
	}
	inv.files = args[start:]
	inv.cfg.LiteralIfMissing = len(inv.files) > 0
	return inv
}
