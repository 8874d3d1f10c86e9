package vm

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/hq9/op"
)

// TestObserver is a test observer that records events.
type TestObserver struct {
	NoOpObserver
	Steps   []StepEvent
	Results []Result
}

func (o *TestObserver) OnStep(event StepEvent) {
	o.Steps = append(o.Steps, event)
}

func (o *TestObserver) OnHalt(result Result) {
	o.Results = append(o.Results, result)
}

func TestObserverOnStep(t *testing.T) {
	observer := &TestObserver{}
	RunString("h+x", WithObserver(observer))

	require.Len(t, observer.Steps, 3)
	require.Equal(t, op.Greet, observer.Steps[0].Code)
	require.Equal(t, op.Increment, observer.Steps[1].Code)
	require.Equal(t, op.Unknown, observer.Steps[2].Code)
	require.Equal(t, byte('x'), observer.Steps[2].Char)
	require.Equal(t, 2, observer.Steps[2].Pos)
	require.Equal(t, int32(1), observer.Steps[2].Accumulator)
	require.Equal(t, 0, observer.Steps[2].Errors)
}

func TestObserverOnHalt(t *testing.T) {
	observer := &TestObserver{}
	RunString("+x++", WithObserver(observer), WithConfig(Config{StopOnError: true}))

	require.Len(t, observer.Steps, 2)
	require.Len(t, observer.Results, 1)
	require.Equal(t, StopOnError, observer.Results[0].Halt)
	require.Equal(t, int32(1), observer.Results[0].Accumulator)
}

func TestLogObserver(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	RunString("+x", WithObserver(NewLogObserver(logger)))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	require.Contains(t, string(lines[0]), `"op":"INCREMENT"`)
	require.Contains(t, string(lines[1]), `"char":"x"`)
	require.Contains(t, string(lines[1]), `"accumulator":1`)
}
