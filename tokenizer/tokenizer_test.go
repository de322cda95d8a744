package tokenizer

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyInvariants checks two invariants that must hold for every scan:
//   - Byte offset invariant: input[t.Start:t.End] == t.Text for every token.
//   - Reconstruction invariant: concatenating all token texts reproduces the input.
func verifyInvariants(t *testing.T, input string, tokens []Token) {
	t.Helper()
	for i, tok := range tokens {
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("token %d offset invariant broken: input[%d:%d]=%q, Text=%q",
				i, tok.Start, tok.End, got, tok.Text)
		}
		if i > 0 && tokens[i-1].End != tok.Start {
			t.Errorf("token %d not contiguous: prev End=%d, Start=%d", i, tokens[i-1].End, tok.Start)
		}
	}
	var buf strings.Builder
	for _, tok := range tokens {
		buf.WriteString(tok.Text)
	}
	if buf.String() != input {
		t.Errorf("reconstruction invariant broken:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{"digits", "1990", []Token{
			{Text: "1990", Start: 0, End: 4, Type: Number},
		}},
		{"slash date", "03/10/1990", []Token{
			{Text: "03", Start: 0, End: 2, Type: Number},
			{Text: "/", Start: 2, End: 3, Type: Punctuation},
			{Text: "10", Start: 3, End: 5, Type: Number},
			{Text: "/", Start: 5, End: 6, Type: Punctuation},
			{Text: "1990", Start: 6, End: 10, Type: Number},
		}},
		{"letters and digits split", "1st", []Token{
			{Text: "1", Start: 0, End: 1, Type: Number},
			{Text: "st", Start: 1, End: 3, Type: Word},
		}},
		{"time with marker", "2:30 PM", []Token{
			{Text: "2", Start: 0, End: 1, Type: Number},
			{Text: ":", Start: 1, End: 2, Type: Punctuation},
			{Text: "30", Start: 2, End: 4, Type: Number},
			{Text: " ", Start: 4, End: 5, Type: Space},
			{Text: "PM", Start: 5, End: 7, Type: Word},
		}},
		{"spaces are single tokens", "a  b", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: " ", Start: 1, End: 2, Type: Space},
			{Text: " ", Start: 2, End: 3, Type: Space},
			{Text: "b", Start: 3, End: 4, Type: Word},
		}},
		{"plus sign", "+05", []Token{
			{Text: "+", Start: 0, End: 1, Type: Punctuation},
			{Text: "05", Start: 1, End: 3, Type: Number},
		}},
		{"non-ASCII letter is a symbol", "März", []Token{
			{Text: "M", Start: 0, End: 1, Type: Word},
			{Text: "ä", Start: 1, End: 3, Type: Symbol},
			{Text: "rz", Start: 3, End: 5, Type: Word},
		}},
		{"invalid UTF-8 byte", "1\xff2", []Token{
			{Text: "1", Start: 0, End: 1, Type: Number},
			{Text: "\xff", Start: 1, End: 2, Type: Symbol},
			{Text: "2", Start: 2, End: 3, Type: Number},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Scan(tt.input)
			verifyInvariants(t, tt.input, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Scan(""))
	assert.Nil(t, Texts(""))
}

func TestTexts(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Mar", " ", "10", ",", " ", "1990"}, Texts("Mar 10, 1990"))
}

func TestTokenValue(t *testing.T) {
	t.Parallel()

	tokens := Scan("07 x 99999999999999999999999")
	require.Len(t, tokens, 5)

	v, ok := tokens[0].Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = tokens[2].Value()
	assert.False(t, ok, "word has no value")

	_, ok = tokens[4].Value()
	assert.False(t, ok, "overflowing run has no value")
}

func TestTokenIs(t *testing.T) {
	t.Parallel()
	tokens := Scan("10:30")
	require.Len(t, tokens, 3)
	assert.True(t, tokens[1].Is(':'))
	assert.False(t, tokens[0].Is(':'))
}

func TestTokenTypeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Number", Number.String())
	assert.Equal(t, "Symbol", Symbol.String())
	assert.Equal(t, "TokenType(42)", TokenType(42).String())
	assert.Equal(t, `Number("03")[0:2]`, Scan("03")[0].String())
}

func TestScanConcurrent(t *testing.T) {
	t.Parallel()

	const goroutines = 16
	input := "Monday, March 10th 1990 14:30:45.123 +05:00"
	want := Scan(input)

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Scan(input))
		}()
	}
	wg.Wait()
}

func TestScanLongInput(t *testing.T) {
	t.Parallel()
	input := strings.Repeat("12/", 10000)
	tokens := Scan(input)
	assert.Len(t, tokens, 20000)
	verifyInvariants(t, input, tokens)
}
