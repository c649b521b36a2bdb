package encode

import (
	"fmt"

	"github.com/bastiangx/phonecode/pkg/dictionary"
	"github.com/bastiangx/phonecode/pkg/keypad"
)

// Search emits every encoding of digits to emit.
//
// At each position the search first tries every dictionary word whose key is
// the next run of digits, shortest run first and words in dictionary order.
// Only when no word starts at a position may the digit there stand for itself,
// and never right after another filler digit. A branch that can neither place
// a word nor a filler ends without emitting anything.
//
// The order of emitted solutions is deterministic for a given dictionary.
// Each emitted Solution is a fresh copy owned by the receiver.
// digits must contain only ASCII digits; the empty sequence yields one empty solution.
func Search(digits keypad.Key, dict *dictionary.Dictionary, emit func(Solution)) error {
	if err := digits.Validate(); err != nil {
		return fmt.Errorf("digits %q: %w", string(digits), err)
	}
	s := &searcher{
		digits: digits,
		dict:   dict,
		tokens: make([]Token, 0, len(digits)),
		emit:   emit,
	}
	s.walk(0)
	return nil
}

// searcher keeps the partial solution of the active branch in one buffer.
// Branches push before recursing and truncate on return, so the buffer only
// ever holds the path from the root to the current position.
type searcher struct {
	digits keypad.Key
	dict   *dictionary.Dictionary
	tokens []Token
	emit   func(Solution)
}

func (s *searcher) walk(start int) {
	if start >= len(s.digits) {
		out := make(Solution, len(s.tokens))
		copy(out, s.tokens)
		s.emit(out)
		return
	}

	foundWord := false
	for i := start; i < len(s.digits); i++ {
		key := s.digits[start : i+1]
		for _, word := range s.dict.Lookup(key) {
			foundWord = true
			s.push(Token{Text: word}, i+1)
		}
		if !s.dict.HasPrefix(key) {
			break
		}
	}

	if !foundWord && !s.afterFiller() {
		s.push(Token{Text: string(s.digits[start : start+1]), Digit: true}, start+1)
	}
}

// push extends the partial solution with tok, explores from next and backtracks.
func (s *searcher) push(tok Token, next int) {
	depth := len(s.tokens)
	s.tokens = append(s.tokens, tok)
	s.walk(next)
	s.tokens = s.tokens[:depth]
}

func (s *searcher) afterFiller() bool {
	return len(s.tokens) > 0 && s.tokens[len(s.tokens)-1].Digit
}
