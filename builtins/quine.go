package builtins

import (
	"io"

	"github.com/deepnoodle-ai/hq9/errz"
	"github.com/deepnoodle-ai/hq9/source"
)

const copyBufferSize = 32 * 1024

// Quine writes the complete text of src to w, reopening it so the output
// does not depend on how much of the program has been executed. The output
// always ends with exactly one trailing line break of its own: one is added
// only when the program does not already end with one.
//
// Failure to open or read src is returned as an errz.ErrFile error. Write
// failures are returned as is.
func Quine(w io.Writer, src source.Source) error {
	r, err := src.Open()
	if err != nil {
		return errz.FileError(errz.Read, src.Name(), err)
	}
	defer r.Close()

	buf := make([]byte, copyBufferSize)
	var last byte
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return err
			}
			last = buf[n-1]
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return errz.FileError(errz.Read, src.Name(), rerr)
		}
	}
	if last != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
