// Package errors holds the error taxonomy shared by the phonecode packages.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for common error conditions
var (
	// ErrIO is returned when a word list or number list cannot be opened or read
	ErrIO = errors.New("io error")

	// ErrInvalidCharacter is returned when a rune has no keypad digit
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidConfig is returned when config values fail validation
	ErrInvalidConfig = errors.New("invalid config")
)

// IOError wraps a failed read of one of the input sources
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error names the operation and path once; a wrapped *fs.PathError
// contributes only its cause.
func (e *IOError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// InvalidCharacterError reports the rune that could not be mapped
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Char)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// NewInvalidCharacterError creates a new InvalidCharacterError
func NewInvalidCharacterError(ch rune) *InvalidCharacterError {
	return &InvalidCharacterError{Char: ch}
}

// ConfigError names the config field that failed validation
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field '%s': %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}
