// Package encode is the core, finding every way a digit sequence can be spelled with dictionary words and filler digits.
package encode

import "github.com/bastiangx/phonecode/pkg/keypad"

// IEncoder defines the interface for phone number encoders
type IEncoder interface {
	// Encode returns every solution for digits, in search order
	Encode(digits keypad.Key) ([]Solution, error)

	// Each streams solutions for digits to fn without collecting them
	Each(digits keypad.Key, fn func(Solution)) error

	// Stats returns counters about the work done so far
	Stats() map[string]int
}
