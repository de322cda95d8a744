package datefmt

import (
	"cmp"
	"slices"

	"github.com/az-ai-labs/dateguess/locale"
)

// Confidence scores. They only rank interpretations against each other.
const (
	confidenceUnambiguous = 95
	confidencePreferred   = 85
	confidenceAlternate   = 70
)

const (
	rationaleUnambiguous = "Unambiguous format"
	rationaleMonthFirst  = "US format (MM/dd)"
	rationaleDayFirst    = "International format (dd/MM)"
)

// fallbackSeparator stands in for inputs without a date separator when
// consulting the locale table.
const fallbackSeparator = '/'

// resolve turns the classified fields into ranked interpretations. The
// first two open months in the 1..12 range form the ambiguous pair; with
// no pair, or a pair of equal values, there is exactly one interpretation.
// An empty tag ranks the pair month-first.
func (p *pass) resolve(tag string) []Interpretation {
	slices.SortFunc(p.fields, func(a, b field) int {
		return cmp.Compare(a.start, b.start)
	})

	pair := make([]int, 0, 2) //nolint:mnd
	for k, f := range p.fields {
		if f.tentative() && f.kind == Month && f.value >= minMonth && f.value <= maxMonth {
			pair = append(pair, k)
			if len(pair) == cap(pair) {
				break
			}
		}
	}
	if len(pair) < 2 { //nolint:mnd
		return []Interpretation{p.interpret(nil, confidenceUnambiguous, rationaleUnambiguous, true)}
	}

	first, second := pair[0], pair[1]
	if p.fields[first].value == p.fields[second].value {
		// "05/05" reads the same either way.
		return []Interpretation{p.interpret(map[int]Kind{first: Month, second: Day},
			confidenceUnambiguous, rationaleUnambiguous, true)}
	}
	monthFirst := p.interpret(map[int]Kind{first: Month, second: Day},
		confidencePreferred, rationaleMonthFirst, true)
	dayFirst := p.interpret(map[int]Kind{first: Day, second: Month},
		confidenceAlternate, rationaleDayFirst, false)

	if tag != "" && p.localeOrder(tag).DayFirst() {
		monthFirst.Confidence, dayFirst.Confidence = dayFirst.Confidence, monthFirst.Confidence
		monthFirst.Preferred, dayFirst.Preferred = false, true
	}

	out := []Interpretation{monthFirst, dayFirst}
	slices.SortStableFunc(out, compareRank)
	return out
}

// localeOrder looks up tag's order for the input's date separator.
func (p *pass) localeOrder(tag string) locale.Order {
	sep, ok := p.dateSeparator()
	if !ok {
		sep = fallbackSeparator
	}
	return locale.Lookup(tag, sep)
}

// compareRank sorts preferred interpretations first, then by descending
// confidence.
func compareRank(a, b Interpretation) int {
	if a.Preferred != b.Preferred {
		if a.Preferred {
			return -1
		}
		return 1
	}
	return cmp.Compare(b.Confidence, a.Confidence)
}

// interpret builds one interpretation, overriding the kinds of the fields
// named in assign and settling every open month or day. Each
// interpretation gets its own copy of the fields.
func (p *pass) interpret(assign map[int]Kind, confidence int, rationale string, preferred bool) Interpretation {
	fields := make([]Field, 0, len(p.fields))
	for k, f := range p.fields {
		kind := f.kind
		if override, ok := assign[k]; ok {
			kind = override
		}
		ph := f.placeholder
		if ph == "" {
			ph = numericPlaceholder(kind, f.text, f.value)
		}
		fields = append(fields, Field{
			Token:       Token{Text: f.text, Start: f.start, End: f.end, Kind: kind},
			Placeholder: ph,
		})
	}
	return Interpretation{
		Template:   assemble(p.s, fields),
		Confidence: confidence,
		Rationale:  rationale,
		Fields:     fields,
		Preferred:  preferred,
	}
}
