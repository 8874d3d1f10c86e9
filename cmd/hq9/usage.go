package main

import (
	"fmt"
	"io"

	"github.com/deepnoodle-ai/hq9/builtins"
)

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: hq9 [h | q | 9 | + | file ...]\n")
	fmt.Fprintf(w, "       hq9 \"\" [\"\"]\n")
	fmt.Fprintf(w, "HQ9+ is an esoteric programming language.\n")
	fmt.Fprintf(w, "  H  Prints %q\n", builtins.Greeting)
	fmt.Fprintf(w, "  Q  Prints the entire text of the source code file.\n")
	fmt.Fprintf(w, "  9  Prints the complete canonical lyrics to \"99 Bottles of Beer on the Wall\"\n")
	fmt.Fprintf(w, "  +  Increments the accumulator.\n")
	fmt.Fprintf(w, "  For information on HQ9+ see\n")
	fmt.Fprintf(w, "      https://esolangs.org/wiki/HQ9+\n")
	fmt.Fprintf(w, "  hq9 %s (%s, %s)\n", version, commit, date)
	fmt.Fprintf(w, "    - The exit status is the value of the accumulator, a 32-bit\n")
	fmt.Fprintf(w, "      signed integer, modulo 256.\n")
	fmt.Fprintf(w, "    - Commands are not case sensitive.\n")
	fmt.Fprintf(w, "    - Unknown commands emit error messages.\n")
	fmt.Fprintf(w, "    - Any problem with a file may emit an error message and stop the program.\n")
	fmt.Fprintf(w, "    - A file argument that does not exist is run as the program itself.\n")
}

func printOptionsUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: hq9 \"\" -9qH  [h | q | 9 | + | file ...]\n")
	fmt.Fprintf(w, "options:\n")
	fmt.Fprintf(w, "  9  stops when an unknown command is encountered\n")
	fmt.Fprintf(w, "  q  turns off error messages for unknown commands\n")
	fmt.Fprintf(w, "  H  the output for the H command will be exactly %q\n", builtins.ExactGreeting)
	fmt.Fprintf(w, " \" \"  processes newline characters\n")
	fmt.Fprintf(w, "environment:\n")
	fmt.Fprintf(w, "  HQ9_QUIET, HQ9_STOP_ON_ERROR, HQ9_EXACT, HQ9_NEWLINES  option defaults\n")
	fmt.Fprintf(w, "  HQ9_LOG_LEVEL, HQ9_REPORT, HQ9_NO_COLOR, HQ9_CONFIG\n")
}
