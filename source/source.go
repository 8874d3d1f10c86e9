// Package source supplies HQ9+ program text to the interpreter.
//
// A Source can be opened any number of times. The vm opens it once to scan
// the command stream and the Q command opens it again to print the program.
package source

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
)

// StdinName is the name given to programs captured from standard input.
const StdinName = "<stdin>"

// Source is a named, re-openable program.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// File is a program stored on disk. Every Open reopens the path.
type File struct {
	path string
}

// NewFile returns a Source backed by the file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string {
	return f.path
}

func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

// Literal is a program held in memory.
type Literal struct {
	name string
	text []byte
}

// NewLiteral returns a Source whose program is text.
func NewLiteral(name, text string) *Literal {
	return &Literal{name: name, text: []byte(text)}
}

func (l *Literal) Name() string {
	return l.name
}

func (l *Literal) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.text)), nil
}

// Text returns the program text.
func (l *Literal) Text() string {
	return string(l.text)
}

// ReadAll captures everything r produces before returning, so execution of
// the resulting program never starts while input is still arriving.
func ReadAll(name string, r io.Reader) (*Literal, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Literal{name: name, text: data}, nil
}

// Resolve returns the Source for a command line argument. When
// literalIfMissing is set and no file exists at arg, the argument text is the
// program itself.
func Resolve(arg string, literalIfMissing bool) Source {
	if literalIfMissing {
		if _, err := os.Stat(arg); errors.Is(err, fs.ErrNotExist) {
			return NewLiteral(arg, arg)
		}
	}
	return NewFile(arg)
}
