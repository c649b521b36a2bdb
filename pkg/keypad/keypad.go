// Package keypad maps letters to telephone keypad digits.
//
// The mapping is fixed:
//
//	0: E            1: J N Q        2: R W X        3: D S Y
//	4: F T          5: A M          6: C I V        7: B K U
//	8: L O P        9: G H Z
//
// A digit sequence is represented by Key, the literal string of its digits.
// Leading zeros are significant, so "04824" and "4824" are different keys.
package keypad

import (
	"math/big"
	"strings"

	internalErrors "github.com/bastiangx/phonecode/internal/errors"
)

// Key is the digit sequence of a word or a number, e.g. "4824".
type Key string

// letterDigits is indexed by lowercase letter - 'a'.
var letterDigits = [26]byte{
	'5', '7', '6', '3', '0', '4', '9', '9', '6', '1', '7', '8', '5',
	'1', '8', '8', '1', '2', '3', '4', '7', '6', '2', '2', '3', '9',
}

// digit returns the keypad digit of an ASCII letter.
func digit(ch rune) (byte, bool) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return letterDigits[ch-'a'], true
	case ch >= 'A' && ch <= 'Z':
		return letterDigits[ch-'A'], true
	}
	return 0, false
}

// LetterToDigit returns the digit value (0-9) of an ASCII letter, ignoring case.
// Any other rune yields an error matching errors.ErrInvalidCharacter.
func LetterToDigit(ch rune) (int, error) {
	d, ok := digit(ch)
	if !ok {
		return 0, internalErrors.NewInvalidCharacterError(ch)
	}
	return int(d - '0'), nil
}

// WordKey computes the key of a dictionary word.
// Non-letters such as apostrophes, quotes and hyphens are skipped, so a word
// without letters has the empty key.
func WordKey(word string) Key {
	var b strings.Builder
	b.Grow(len(word))
	for _, ch := range word {
		if d, ok := digit(ch); ok {
			b.WriteByte(d)
		}
	}
	return Key(b.String())
}

// Digits extracts the digit sequence of a telephone number line.
// ASCII digits are kept, ASCII letters are mapped through the keypad and
// everything else ("-", "/", spaces) is dropped.
func Digits(number string) Key {
	var b strings.Builder
	b.Grow(len(number))
	for _, ch := range number {
		if ch >= '0' && ch <= '9' {
			b.WriteByte(byte(ch))
		} else if d, ok := digit(ch); ok {
			b.WriteByte(d)
		}
	}
	return Key(b.String())
}

// Validate checks that k holds only ASCII digits. The first offending rune is
// reported as an error matching errors.ErrInvalidCharacter.
func (k Key) Validate() error {
	for _, ch := range string(k) {
		if ch < '0' || ch > '9' {
			return internalErrors.NewInvalidCharacterError(ch)
		}
	}
	return nil
}

// Value returns the sentinel-prefixed integer form of k: a leading 1
// followed by the digits, so Value("") is 1 and Value("04") is 104.
// Two keys are equal exactly when their values are equal.
func (k Key) Value() *big.Int {
	n := big.NewInt(1)
	ten := big.NewInt(10)
	d := new(big.Int)
	for i := 0; i < len(k); i++ {
		n.Mul(n, ten)
		n.Add(n, d.SetInt64(int64(k[i]-'0')))
	}
	return n
}

func (k Key) String() string {
	return string(k)
}
