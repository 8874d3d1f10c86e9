package builtins

import (
	"fmt"
	"io"
	"strings"
)

const bottlesOnTheWall = 99

// Lyrics writes the complete "99 Bottles of Beer on the Wall".
func Lyrics(w io.Writer) error {
	_, err := io.WriteString(w, lyrics)
	return err
}

var lyrics = renderLyrics()

func renderLyrics() string {
	var b strings.Builder
	for n := bottlesOnTheWall; n > 1; n-- {
		fmt.Fprintf(&b, "%d bottles of beer on the wall, %d bottles of beer.\n", n, n)
		fmt.Fprintf(&b, "Take one down and pass it around, %s of beer on the wall.\n", bottles(n-1))
		b.WriteString("\n")
	}
	b.WriteString("1 bottle of beer on the wall, 1 bottle of beer.\n")
	b.WriteString("Take one down and pass it around, no more bottles of beer on the wall.\n")
	b.WriteString("\n")
	b.WriteString("No more bottles of beer on the wall, no more bottles of beer.\n")
	fmt.Fprintf(&b, "Go to the store and buy some more, %s of beer on the wall.\n", bottles(bottlesOnTheWall))
	return b.String()
}

func bottles(n int) string {
	if n == 1 {
		return "1 bottle"
	}
	return fmt.Sprintf("%d bottles", n)
}
