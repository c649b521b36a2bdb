package utils

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	internalErrors "github.com/bastiangx/phonecode/internal/errors"
)

// LineFunc receives one line without its terminator
type LineFunc func(line string) error

// ReadLines calls fn for every line of r in order.
// Lines end at "\n" or "\r\n"; a final line without terminator is still delivered.
// Lines that are not valid UTF-8 are skipped. Lines have no length limit.
// A read failure is returned as *errors.IOError; an error from fn is returned as is.
func ReadLines(r io.Reader, fn LineFunc) error {
	reader := bufio.NewReader(r)
	lineNum := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return internalErrors.NewIOError("read", "", err)
		}
		if len(line) == 0 && err == io.EOF {
			return nil
		}
		lineNum++

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			log.Debugf("Skipping line %d: not valid UTF-8", lineNum)
		} else if ferr := fn(line); ferr != nil {
			return ferr
		}

		if err == io.EOF {
			return nil
		}
	}
}
