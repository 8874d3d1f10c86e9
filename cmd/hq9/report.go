package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hokaccha/go-prettyjson"

	"github.com/deepnoodle-ai/hq9"
)

type report struct {
	RunID       string         `json:"run_id"`
	Accumulator int32          `json:"accumulator"`
	ExitStatus  int            `json:"exit_status"`
	Errors      int            `json:"errors"`
	Sources     []sourceReport `json:"sources"`
}

type sourceReport struct {
	Name        string `json:"name"`
	Accumulator int32  `json:"accumulator"`
	Errors      int    `json:"errors"`
	Halt        string `json:"halt"`
	Error       string `json:"error,omitempty"`
}

func newReport(s *hq9.Summary) report {
	r := report{
		RunID:       s.RunID,
		Accumulator: s.Accumulator,
		ExitStatus:  s.ExitStatus(),
		Errors:      s.Errors,
		Sources:     []sourceReport{},
	}
	for _, run := range s.Runs {
		sr := sourceReport{
			Name:        run.Name,
			Accumulator: run.Accumulator,
			Errors:      run.Errors,
			Halt:        run.Halt.String(),
		}
		if run.Err != nil {
			sr.Error = run.Err.Error()
		}
		r.Sources = append(r.Sources, sr)
	}
	return r
}

// writeReport prints a summary of the run in the requested format. An empty
// format prints nothing.
func writeReport(w io.Writer, format string, s *hq9.Summary, colored bool) error {
	switch strings.ToLower(format) {
	case "":
		return nil
	case "json":
		output, err := getOutputJSON(newReport(s), colored)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	case "text":
		_, err := fmt.Fprintf(w, "accumulator=%d exit_status=%d errors=%d sources=%d\n",
			s.Accumulator, s.ExitStatus(), s.Errors, len(s.Runs))
		return err
	default:
		return fmt.Errorf("unknown report format: %s", format)
	}
}

func getOutputJSON(r report, colored bool) ([]byte, error) {
	if !colored {
		return json.MarshalIndent(r, "", "  ")
	}
	return prettyjson.Marshal(r)
}
