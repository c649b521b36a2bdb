package encode

import "strings"

// Token is one element of a solution: a dictionary word or a single filler digit.
type Token struct {
	Text  string
	Digit bool
}

// Solution is a complete decomposition of a digit sequence, left to right.
type Solution []Token

// Words returns the token texts.
func (s Solution) Words() []string {
	words := make([]string, len(s))
	for i, tok := range s {
		words[i] = tok.Text
	}
	return words
}

// String joins the tokens with single spaces.
func (s Solution) String() string {
	return strings.Join(s.Words(), " ")
}

// Fillers counts the filler digits in s.
func (s Solution) Fillers() int {
	n := 0
	for _, tok := range s {
		if tok.Digit {
			n++
		}
	}
	return n
}
