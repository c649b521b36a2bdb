package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIOError(t *testing.T) {
	err := NewIOError("open", "words.txt", fs.ErrNotExist)

	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrInvalidCharacter))
	assert.Equal(t, "open words.txt: file does not exist", err.Error())

	noPath := NewIOError("read", "", fs.ErrClosed)
	assert.Equal(t, "read: file already closed", noPath.Error())
}

func TestIOErrorWrappingPathError(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/missing/words.txt", Err: fs.ErrNotExist}
	err := NewIOError("open", "/missing/words.txt", cause)

	assert.Equal(t, "open /missing/words.txt: file does not exist", err.Error())
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestInvalidCharacterError(t *testing.T) {
	var err error = NewInvalidCharacterError('-')

	assert.True(t, errors.Is(err, ErrInvalidCharacter))
	assert.False(t, errors.Is(err, ErrIO))

	var charErr *InvalidCharacterError
	if assert.True(t, errors.As(err, &charErr)) {
		assert.Equal(t, '-', charErr.Char)
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("search.workers", "must be at least 1")

	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, "config field 'search.workers': must be at least 1", err.Error())
}
