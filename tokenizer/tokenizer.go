// Package tokenizer splits a date/time example string into lexical runs
// with byte offsets.
//
// A run is one of:
//
//   - Number: a maximal run of ASCII digits [0-9]+
//   - Word: a maximal run of ASCII letters [A-Za-z]+
//   - Punctuation, Space, Symbol: exactly one non-alphanumeric rune
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, runs never
// overlap, and concatenating all token texts reconstructs the original
// string. Work is linear in the input length.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import (
	"fmt"
	"strconv"
)

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // ASCII letters
	Number                       // ASCII digits
	Punctuation                  // One ASCII punctuation rune: / - . : , ( ) etc.
	Space                        // One whitespace rune
	Symbol                       // Any other single rune, including non-ASCII letters
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a run of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Number("03")[0:2].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Len returns the byte length of the token.
func (t Token) Len() int {
	return t.End - t.Start
}

// Value returns the numeric value of a Number token.
// Runs too long to fit an int report ok == false.
func (t Token) Value() (int, bool) {
	if t.Type != Number {
		return 0, false
	}
	v, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Is reports whether t is a single-rune token equal to r.
func (t Token) Is(r byte) bool {
	return t.Len() == 1 && t.Text[0] == r
}

// Scan splits s into runs.
// Returns nil for empty input.
func Scan(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Texts returns the token texts of Scan(s) in order.
func Texts(s string) []string {
	tokens := Scan(s)
	if tokens == nil {
		return nil
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
