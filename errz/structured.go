// Package errz defines the errors reported while running HQ9+ programs.
package errz

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrFile indicates a source or stream could not be opened, read or
	// written.
	ErrFile ErrorKind = iota
	// ErrUnknownCommand indicates a character that is not an HQ9+ command.
	ErrUnknownCommand
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrFile:
		return "file error"
	case ErrUnknownCommand:
		return "unknown command"
	default:
		return "error"
	}
}

// Access describes what was being attempted when a file error occurred.
type Access int

const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

// Error is an HQ9+ interpreter error. Its Error method renders the exact
// diagnostic line written to the error stream.
type Error struct {
	Kind   ErrorKind
	Access Access
	Name   string
	Char   byte
	Pos    int
	Cause  error
}

// FileError returns an ErrFile error for the named source.
func FileError(access Access, name string, cause error) *Error {
	return &Error{Kind: ErrFile, Access: access, Name: name, Cause: cause}
}

// UnknownCommand returns an ErrUnknownCommand error for the character found
// at byte offset pos.
func UnknownCommand(c byte, pos int) *Error {
	return &Error{Kind: ErrUnknownCommand, Char: c, Pos: pos}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrFile:
		return e.fileMessage()
	case ErrUnknownCommand:
		return "Unknown command: " + FormatChar(e.Char)
	default:
		return e.Kind.String()
	}
}

func (e *Error) fileMessage() string {
	errno := e.Errno()
	if errno == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("Unable to open file to %s (%v): %s", e.Access, e.Cause, e.Name)
		}
		return fmt.Sprintf("Unable to open file to %s: %s", e.Access, e.Name)
	}
	return fmt.Sprintf("Unable to open file to %s, error %d (%s): %s",
		e.Access, int(errno), errno.Error(), e.Name)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Errno returns the operating system error code behind the cause, or 0 when
// there is none.
func (e *Error) Errno() syscall.Errno {
	var errno syscall.Errno
	if errors.As(e.Cause, &errno) {
		return errno
	}
	return 0
}

// IsFileError reports whether err wraps an ErrFile error.
func IsFileError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrFile
}

// FormatChar renders c for a diagnostic: printable ASCII verbatim, anything
// else (including space) as chr(n).
func FormatChar(c byte) string {
	if c < 33 || c >= 127 {
		return fmt.Sprintf("chr(%d)", c)
	}
	return string(c)
}
