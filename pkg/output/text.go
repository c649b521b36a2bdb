package output

import (
	"bufio"
	"io"

	"github.com/bastiangx/phonecode/pkg/encode"
)

// TextWriter prints "<number>: tok tok" lines
type TextWriter struct {
	w    *bufio.Writer
	opts Options
}

// NewTextWriter creates a buffered text writer
func NewTextWriter(w io.Writer, opts Options) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w), opts: opts}
}

func (t *TextWriter) Write(number string, solutions []encode.Solution) error {
	if len(solutions) == 0 {
		if !t.opts.ShowUnencodable {
			return nil
		}
		return t.line(number, nil)
	}
	for _, s := range solutions {
		if err := t.line(number, s); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextWriter) line(number string, s encode.Solution) error {
	t.w.WriteString(number)
	t.w.WriteByte(':')
	for _, tok := range s {
		t.w.WriteByte(' ')
		t.w.WriteString(tok.Text)
	}
	return t.w.WriteByte('\n')
}

func (t *TextWriter) Flush() error {
	return t.w.Flush()
}
