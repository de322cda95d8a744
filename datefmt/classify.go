package datefmt

import (
	"strings"

	"github.com/az-ai-labs/dateguess/tokenizer"
)

// field is a classification candidate over one or more scanned tokens.
// Numeric months and days left open by the numeric classifier carry an
// empty placeholder until the resolver settles them.
type field struct {
	kind        Kind
	start, end  int // byte span
	first, last int // token indices, inclusive
	text        string
	value       int
	placeholder string
}

func (f field) tentative() bool {
	return f.placeholder == "" && (f.kind == Month || f.kind == Day)
}

// pass holds the state of one classification run over a scanned input.
type pass struct {
	s       string
	tokens  []tokenizer.Token
	claimed []bool // token consumed by a field or by a field's context
	fields  []field
}

func newPass(s string) *pass {
	tokens := tokenizer.Scan(s)
	return &pass{
		s:       s,
		tokens:  tokens,
		claimed: make([]bool, len(tokens)),
	}
}

// claim records a field spanning tokens first..last.
func (p *pass) claim(first, last int, kind Kind, placeholder string) {
	start, end := p.tokens[first].Start, p.tokens[last].End
	f := field{
		kind:        kind,
		start:       start,
		end:         end,
		first:       first,
		last:        last,
		text:        p.s[start:end],
		placeholder: placeholder,
	}
	if first == last {
		f.value, _ = p.tokens[first].Value()
	}
	for i := first; i <= last; i++ {
		p.claimed[i] = true
	}
	p.fields = append(p.fields, f)
}

// claimSpan records a field over part of a single token, used when one
// digit run carries several fields.
func (p *pass) claimSpan(tok, start, end int, kind Kind, placeholder string, value int) {
	p.claimed[tok] = true
	p.fields = append(p.fields, field{
		kind:        kind,
		start:       start,
		end:         end,
		first:       tok,
		last:        tok,
		text:        p.s[start:end],
		value:       value,
		placeholder: placeholder,
	})
}

// free reports whether token i is an unclaimed run of type typ.
func (p *pass) free(i int, typ tokenizer.TokenType) bool {
	return i >= 0 && i < len(p.tokens) && !p.claimed[i] && p.tokens[i].Type == typ
}

// fieldAt returns the index into p.fields of the field covering token i.
func (p *pass) fieldAt(i int) (int, bool) {
	for k, f := range p.fields {
		if i >= f.first && i <= f.last {
			return k, true
		}
	}
	return -1, false
}

// hasKind reports whether any field of kind k matches pred.
func (p *pass) hasKind(k Kind, pred func(field) bool) bool {
	for _, f := range p.fields {
		if f.kind == k && (pred == nil || pred(f)) {
			return true
		}
	}
	return false
}

// prevSignificant returns the index of the token before i, skipping up to
// maxSpaces whitespace tokens. Returns -1 when there is none.
func (p *pass) prevSignificant(i, maxSpaces int) int {
	j := i - 1
	for skipped := 0; j >= 0 && p.tokens[j].Type == tokenizer.Space; j-- {
		if skipped == maxSpaces {
			return -1
		}
		skipped++
	}
	return j
}

// nextSignificant is the forward counterpart of prevSignificant.
// Returns len(p.tokens) when there is none.
func (p *pass) nextSignificant(i, maxSpaces int) int {
	j := i + 1
	for skipped := 0; j < len(p.tokens) && p.tokens[j].Type == tokenizer.Space; j++ {
		if skipped == maxSpaces {
			return len(p.tokens)
		}
		skipped++
	}
	return j
}

// classify runs the full pipeline. An empty tag ranks month/day
// ambiguity month-first; otherwise the locale order decides.
func classify(s, tag string) Result {
	res := Result{Input: s}
	if strings.TrimSpace(s) == "" {
		return res
	}

	p := newPass(s)
	p.classifyWords()
	p.classifyNumbers()

	res.Interpretations = p.resolve(strings.TrimSpace(tag))
	res.Ambiguous = len(res.Interpretations) > 1
	return res
}
