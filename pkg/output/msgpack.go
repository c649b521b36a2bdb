package output

import (
	"bufio"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/phonecode/pkg/encode"
)

// Record - encodings of one number
type Record struct {
	Number    string     `msgpack:"n"`
	Solutions [][]string `msgpack:"s"`
	Count     int        `msgpack:"c"`
}

// MsgpackWriter streams one Record per number
type MsgpackWriter struct {
	buf *bufio.Writer
	enc *msgpack.Encoder
}

// NewMsgpackWriter creates a buffered msgpack writer
func NewMsgpackWriter(w io.Writer) *MsgpackWriter {
	buf := bufio.NewWriter(w)
	return &MsgpackWriter{buf: buf, enc: msgpack.NewEncoder(buf)}
}

func (m *MsgpackWriter) Write(number string, solutions []encode.Solution) error {
	rec := Record{
		Number:    number,
		Solutions: make([][]string, len(solutions)),
		Count:     len(solutions),
	}
	for i, s := range solutions {
		rec.Solutions[i] = s.Words()
	}
	return m.enc.Encode(&rec)
}

func (m *MsgpackWriter) Flush() error {
	return m.buf.Flush()
}

// ReadRecords decodes every Record from r until EOF
func ReadRecords(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, err
		}
		records = append(records, rec)
	}
}
