package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits s using a byte-level state machine.
// The caller guarantees s is non-empty.
//
// Digit and letter runs are ASCII only; every other rune, including
// non-ASCII letters, becomes its own single-rune token so multi-byte
// sequences are never split.
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/2+1)

	i := 0
	for i < len(s) {
		c := s[i]

		if isDigitByte(c) {
			start := i
			for i < len(s) && isDigitByte(s[i]) {
				i++
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Number})
			continue
		}

		if isLetterByte(c) {
			start := i
			for i < len(s) && isLetterByte(s[i]) {
				i++
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Word})
			continue
		}

		// Invalid UTF-8 decodes as RuneError with size 1, which keeps the
		// reconstruction invariant byte-exact.
		r, size := utf8.DecodeRuneInString(s[i:])
		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: classifyRune(r)})
		i += size
	}

	return tokens
}

// classifyRune picks the type for a single non-alphanumeric rune.
func classifyRune(r rune) TokenType {
	switch {
	case unicode.IsSpace(r):
		return Space
	case r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
		return Punctuation
	default:
		return Symbol
	}
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
