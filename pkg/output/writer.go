/*
Package output writes encodings of phone numbers.

Two formats are supported. The text format prints one line per solution, the
number label followed by a colon and the tokens:

	5624-82: mir Tor
	5624-82: Mix Tor

A number without any solution prints nothing, unless ShowUnencodable is set,
in which case it prints the bare label "112:".

The msgpack format writes one Record per number, solutions or not:

	{"n": "5624-82", "s": [["mir", "Tor"], ["Mix", "Tor"]], "c": 2}

Writers buffer their output; call Flush when done.
*/
package output

import (
	"fmt"
	"io"

	"github.com/bastiangx/phonecode/pkg/encode"
)

// Format names accepted by New
const (
	FormatText    = "text"
	FormatMsgpack = "msgpack"
)

// Writer receives the solutions of one number at a time, in input order
type Writer interface {
	Write(number string, solutions []encode.Solution) error
	Flush() error
}

// Options tune the writers
type Options struct {
	ShowUnencodable bool
}

// New creates a writer for the named format
func New(format string, w io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(w, opts), nil
	case FormatMsgpack:
		return NewMsgpackWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected %q or %q)", format, FormatText, FormatMsgpack)
	}
}

// Formats lists the supported format names
func Formats() []string {
	return []string{FormatText, FormatMsgpack}
}
