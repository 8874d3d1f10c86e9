package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		fatal(err)
	}
	os.Exit(a.status)
}

// newRootCmd builds the hq9 command. Flag parsing is left to parseArgs
// because HQ9+ programs given on the command line routinely start with a
// dash or contain flag-like characters.
func newRootCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                `hq9 ["" [-9qH ]] [h | q | 9 | + | file ...]`,
		Short:              "HQ9+ interpreter",
		Long:               "Runs HQ9+ programs from files, literal arguments or standard input.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE:               a.run,
	}
}
