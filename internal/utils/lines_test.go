package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) []string {
	t.Helper()
	var lines []string
	err := ReadLines(strings.NewReader(input), func(line string) error {
		lines = append(lines, line)
		return nil
	})
	require.NoError(t, err)
	return lines
}

func TestReadLines(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty input", "", nil},
		{"single line no newline", "4824", []string{"4824"}},
		{"trailing newline", "4824\n", []string{"4824"}},
		{"blank lines kept", "4824\n\n112\n", []string{"4824", "", "112"}},
		{"crlf", "5624-82\r\n4824\r\n", []string{"5624-82", "4824"}},
		{"invalid utf8 skipped", "112\n\xff\xfe\n4824\n", []string{"112", "4824"}},
		{"long line", strings.Repeat("9", 200000) + "\n", []string{strings.Repeat("9", 200000)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, collect(t, tc.input))
		})
	}
}

func TestReadLinesCallbackError(t *testing.T) {
	boom := errors.New("boom")
	err := ReadLines(strings.NewReader("a\nb\n"), func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
}
