// Package op defines the HQ9+ commands and maps source characters onto them.
package op

// Code identifies the command a source character executes.
type Code uint8

const (
	Unknown   Code = 0
	Greet     Code = 1 // H
	Quine     Code = 2 // Q
	Lyrics    Code = 3 // 9
	Increment Code = 4 // +
)

// Info contains information about a command.
type Info struct {
	Code Code
	Name string
	Char byte
}

var infos = make([]Info, 256)

func init() {
	ops := []Info{
		{Unknown, "UNKNOWN", 0},
		{Greet, "GREET", 'H'},
		{Quine, "QUINE", 'Q'},
		{Lyrics, "LYRICS", '9'},
		{Increment, "INCREMENT", '+'},
	}
	for _, o := range ops {
		infos[o.Code] = o
	}
}

// GetInfo returns information about the given command.
func GetInfo(code Code) Info {
	return infos[code]
}

// String returns the command name, for example "GREET".
func (c Code) String() string {
	return infos[c].Name
}

// Dispatch returns the command for a single source character. Letters match
// case-insensitively; every other character, newline included, is Unknown.
func Dispatch(c byte) Code {
	switch c {
	case 'h', 'H':
		return Greet
	case 'q', 'Q':
		return Quine
	case '9':
		return Lyrics
	case '+':
		return Increment
	default:
		return Unknown
	}
}
