package datefmt

import (
	"strings"

	"github.com/az-ai-labs/dateguess/tokenizer"
)

// classifyWords claims whole-word literals: ordinal suffixes on digit
// runs, weekday and month names, AM/PM markers, and timezone names.
// Words that match nothing stay unclaimed and are escaped as literal text.
func (p *pass) classifyWords() {
	// Ordinals first: "th" after a digit run is a suffix, not a weekday code.
	for i := 1; i < len(p.tokens); i++ {
		if !p.free(i, tokenizer.Word) || !p.free(i-1, tokenizer.Number) {
			continue
		}
		if !ordinalSuffixes[strings.ToLower(p.tokens[i].Text)] {
			continue
		}
		if v, ok := p.tokens[i-1].Value(); ok && v >= minDay && v <= maxDay {
			p.claim(i-1, i, Day, phOrdinalDay)
			p.fields[len(p.fields)-1].value = v
			continue
		}
		// "100th" is not a day, but neither part may be read as anything else.
		p.claimed[i-1] = true
		p.claimed[i] = true
	}

	for i := range p.tokens {
		if !p.free(i, tokenizer.Word) {
			continue
		}
		if kind, ph, ok := p.matchWord(i); ok {
			p.claim(i, i, kind, ph)
		}
	}
}

// matchWord checks the vocabularies in decreasing specificity; the first
// match wins.
func (p *pass) matchWord(i int) (Kind, string, bool) {
	text := p.tokens[i].Text
	lower := strings.ToLower(text)

	switch {
	case fullWeekdays[lower]:
		return Weekday, phFullWeekday, true
	case shortWeekdays[lower]:
		return Weekday, phShortWeekday, true
	case minWeekdays[lower]:
		return Weekday, phMinWeekday, true
	case fullMonths[lower]:
		return Month, phFullMonth, true
	case shortMonths[lower]:
		return Month, phShortMonth, true
	}

	if ph, ok := p.matchMarker(i, text, lower); ok {
		return AmPm, ph, true
	}

	// Timezone names must be written in capitals; "met" or "cat" in running
	// text are words, not zones.
	if len(text) > 1 && text == strings.ToUpper(text) && timezones[text] {
		return TimezoneName, phZoneName, true
	}
	return Literal, "", false
}

// matchMarker recognizes AM/PM in its three spellings. The single letters
// A and P only count right after a number ("7p", "7 a").
func (p *pass) matchMarker(i int, text, lower string) (string, bool) {
	switch lower {
	case "am", "pm":
		if text == lower {
			return phMarkerLower, true
		}
		return phMarkerUpper, true
	case "a", "p":
		prev := p.prevSignificant(i, 1)
		if prev >= 0 && p.tokens[prev].Type == tokenizer.Number {
			return phMarkerLetter, true
		}
	}
	return "", false
}
