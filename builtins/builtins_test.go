package builtins

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/hq9/errz"
	"github.com/deepnoodle-ai/hq9/source"
	"github.com/stretchr/testify/require"
)

func TestGreet(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Greet(&buf, false))
	require.Equal(t, "Hello, world!\n", buf.String())

	buf.Reset()
	require.Nil(t, Greet(&buf, true))
	require.Equal(t, "Hello, World\n", buf.String())
}

func TestQuineAddsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Quine(&buf, source.NewLiteral("prog", "Q")))
	require.Equal(t, "Q\n", buf.String())
}

func TestQuineKeepsExistingNewline(t *testing.T) {
	tests := []struct {
		program  string
		expected string
	}{
		{"Q\n", "Q\n"},
		{"hq\n\n", "hq\n\n"},
		{"q+\nq", "q+\nq\n"},
		{"", "\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.Nil(t, Quine(&buf, source.NewLiteral("prog", tt.program)))
		require.Equal(t, tt.expected, buf.String(), "program: %q", tt.program)
	}
}

func TestQuineLargeProgram(t *testing.T) {
	program := strings.Repeat("q", copyBufferSize*2+7)
	var buf bytes.Buffer
	require.Nil(t, Quine(&buf, source.NewLiteral("prog", program)))
	require.Equal(t, program+"\n", buf.String())
}

type unopenable struct{}

func (unopenable) Name() string { return "gone.hq9" }

func (unopenable) Open() (io.ReadCloser, error) {
	return nil, errors.New("permission denied")
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }
func (brokenReader) Close() error             { return nil }

type unreadable struct{}

func (unreadable) Name() string                 { return "broken.hq9" }
func (unreadable) Open() (io.ReadCloser, error) { return brokenReader{}, nil }

func TestQuineSourceFailures(t *testing.T) {
	var buf bytes.Buffer
	err := Quine(&buf, unopenable{})
	require.True(t, errz.IsFileError(err))
	require.Contains(t, err.Error(), "gone.hq9")
	require.Empty(t, buf.String())

	err = Quine(&buf, unreadable{})
	require.True(t, errz.IsFileError(err))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestQuineWriteFailureIsNotAFileError(t *testing.T) {
	err := Quine(failingWriter{}, source.NewLiteral("prog", "Q"))
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.False(t, errz.IsFileError(err))
}

func TestLyrics(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Lyrics(&buf))
	text := buf.String()

	require.True(t, strings.HasPrefix(text,
		"99 bottles of beer on the wall, 99 bottles of beer.\n"+
			"Take one down and pass it around, 98 bottles of beer on the wall.\n"+
			"\n"+
			"98 bottles of beer on the wall, 98 bottles of beer.\n"))
	require.Contains(t, text,
		"2 bottles of beer on the wall, 2 bottles of beer.\n"+
			"Take one down and pass it around, 1 bottle of beer on the wall.\n"+
			"\n"+
			"1 bottle of beer on the wall, 1 bottle of beer.\n"+
			"Take one down and pass it around, no more bottles of beer on the wall.\n"+
			"\n")
	require.True(t, strings.HasSuffix(text,
		"No more bottles of beer on the wall, no more bottles of beer.\n"+
			"Go to the store and buy some more, 99 bottles of beer on the wall.\n"))
	require.Equal(t, 299, strings.Count(text, "\n"))
	require.NotContains(t, text, "1 bottles")
}

func TestLyricsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.Nil(t, Lyrics(&first))
	require.Nil(t, Lyrics(&second))
	require.Equal(t, first.Bytes(), second.Bytes())
}
