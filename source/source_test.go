package source

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readSource(t *testing.T, src Source) string {
	t.Helper()
	r, err := src.Open()
	require.Nil(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.Nil(t, err)
	return string(data)
}

func TestFileOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.hq9")
	require.Nil(t, os.WriteFile(path, []byte("hq9+\n"), 0o644))

	src := NewFile(path)
	require.Equal(t, path, src.Name())
	require.Equal(t, "hq9+\n", readSource(t, src))
	// Reopening yields the full program again.
	require.Equal(t, "hq9+\n", readSource(t, src))
}

func TestFileOpenMissing(t *testing.T) {
	src := NewFile(filepath.Join(t.TempDir(), "missing.hq9"))
	_, err := src.Open()
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLiteral(t *testing.T) {
	src := NewLiteral("prog", "qq")
	require.Equal(t, "prog", src.Name())
	require.Equal(t, "qq", src.Text())
	require.Equal(t, "qq", readSource(t, src))
	require.Equal(t, "qq", readSource(t, src))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestReadAll(t *testing.T) {
	src, err := ReadAll(StdinName, strings.NewReader("H+\n"))
	require.Nil(t, err)
	require.Equal(t, StdinName, src.Name())
	require.Equal(t, "H+\n", readSource(t, src))

	_, err = ReadAll(StdinName, failingReader{})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.hq9")
	require.Nil(t, os.WriteFile(path, []byte("9"), 0o644))

	src := Resolve(path, true)
	require.IsType(t, &File{}, src)

	missing := filepath.Join(dir, "qh")
	src = Resolve(missing, true)
	require.IsType(t, &Literal{}, src)
	require.Equal(t, missing, readSource(t, src))

	src = Resolve("hq", false)
	require.IsType(t, &File{}, src)
}
