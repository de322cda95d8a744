package datefmt

import (
	"strings"

	"github.com/az-ai-labs/dateguess/tokenizer"
)

// Range and distance limits for numeric classification.
const (
	minMonth = 1
	maxMonth = 12
	minDay   = 1
	maxDay   = 31

	colonWindow    = 3  // max bytes between a digit run and a ':' of its time group
	markerWindow   = 10 // max bytes between a time group and its AM/PM marker
	compactDateLen = 8  // yyyyMMdd
)

// Time group positions.
const (
	posHour = iota
	posMinute
	posSecond
)

// classifyNumbers assigns roles to the digit runs the word pass left
// free. Each step only sees runs no earlier step claimed.
func (p *pass) classifyNumbers() {
	p.classifyTimeGroups()
	p.classifyBareHours()
	p.classifyCompactDates()
	p.classifyDates()
}

// ---------- time groups ----------

// classifyTimeGroups walks digit runs left to right, collecting runs
// linked by ':' into groups. A group is claimed as soon as it ends so that
// a following offset such as "+05:00" is consumed before its own colon can
// start a new group.
func (p *pass) classifyTimeGroups() {
	var cur []int
	flush := func() {
		if len(cur) > 0 {
			p.claimTimeGroup(cur)
			cur = nil
		}
	}

	for i := range p.tokens {
		if !p.free(i, tokenizer.Number) {
			continue
		}
		colon, before := p.colonBefore(i)
		_, after := p.colonAfter(i)
		if !before && !after {
			flush()
			continue
		}
		if before && len(cur) > 0 {
			if c, ok := p.colonAfter(cur[len(cur)-1]); ok && c == colon {
				cur = append(cur, i)
				continue
			}
		}
		flush()
		if !p.claimed[i] {
			cur = append(cur, i)
		}
	}
	flush()
}

// claimTimeGroup assigns hour, minute, second by position, then looks for
// a fractional second and a timezone offset after the group.
func (p *pass) claimTimeGroup(group []int) {
	last := group[len(group)-1]
	hour12 := p.markerFollows(p.tokens[last].End)

	for pos, i := range group {
		tok := p.tokens[i]
		v, _ := tok.Value()
		switch pos {
		case posHour:
			if hour12 {
				p.claim(i, i, Hour12, padded(leadingZero(tok.Text), "h", "hh"))
			} else {
				p.claim(i, i, Hour24, padded(leadingZero(tok.Text) || v >= 10, "H", "HH"))
			}
		case posMinute:
			p.claim(i, i, Minute, padded(tok.Len() == 2, "m", "mm"))
		case posSecond:
			p.claim(i, i, Second, padded(tok.Len() == 2, "s", "ss"))
		default:
			// A fourth colon-linked run has no clock role.
			p.claimed[i] = true
		}
	}

	anchor := last
	if len(group) > 1 {
		anchor = p.classifySubSecond(last)
	}
	p.classifyOffset(anchor)
}

// colonBefore reports whether a ':' precedes token i within colonWindow
// bytes with only whitespace in between, and returns the colon's index.
func (p *pass) colonBefore(i int) (int, bool) {
	start := p.tokens[i].Start
	for j := i - 1; j >= 0; j-- {
		t := p.tokens[j]
		if start-t.End >= colonWindow {
			return -1, false
		}
		if t.Is(':') {
			return j, true
		}
		if t.Type != tokenizer.Space {
			return -1, false
		}
	}
	return -1, false
}

// colonAfter is the forward counterpart of colonBefore.
func (p *pass) colonAfter(i int) (int, bool) {
	end := p.tokens[i].End
	for j := i + 1; j < len(p.tokens); j++ {
		t := p.tokens[j]
		if t.Start-end >= colonWindow {
			return -1, false
		}
		if t.Is(':') {
			return j, true
		}
		if t.Type != tokenizer.Space {
			return -1, false
		}
	}
	return -1, false
}

// markerFollows reports whether an AM/PM field starts within
// markerWindow bytes after end.
func (p *pass) markerFollows(end int) bool {
	for _, f := range p.fields {
		if f.kind == AmPm && f.start >= end && f.start-end <= markerWindow {
			return true
		}
	}
	return false
}

// classifySubSecond claims a digit run after ".", "," that directly
// follows the last run of a time group. Returns the new anchor token.
func (p *pass) classifySubSecond(last int) int {
	sep, run := last+1, last+2
	if run >= len(p.tokens) || !p.free(run, tokenizer.Number) {
		return last
	}
	if !p.tokens[sep].Is('.') && !p.tokens[sep].Is(',') {
		return last
	}
	p.claimed[sep] = true
	p.claim(run, run, SubSecond, strings.Repeat("S", p.tokens[run].Len()))
	return run
}

// classifyOffset claims "Z", "+05:00", "-0800" or "+05" after the time
// group ending at anchor. One timezone name may sit in between
// ("14:30 GMT+05:00").
func (p *pass) classifyOffset(anchor int) {
	for range 2 {
		if j := anchor + 1; j < len(p.tokens) && !p.claimed[j] && p.tokens[j].Text == "Z" {
			p.claim(j, j, TimezoneOffset, phOffsetZulu)
			return
		}
		j := p.nextSignificant(anchor, 1)
		if j >= len(p.tokens) {
			return
		}
		if k, ok := p.fieldAt(j); ok && p.fields[k].kind == TimezoneName {
			anchor = j
			continue
		}
		p.claimSignedOffset(j)
		return
	}
}

// claimSignedOffset claims a sign at token j and the digits after it.
func (p *pass) claimSignedOffset(j int) {
	if p.claimed[j] || (!p.tokens[j].Is('+') && !p.tokens[j].Is('-')) || !p.free(j+1, tokenizer.Number) {
		return
	}
	switch p.tokens[j+1].Len() {
	case 4: //nolint:mnd // hhmm
		p.claim(j, j+1, TimezoneOffset, phOffsetFour)
	case 2: //nolint:mnd // hh
		if j+3 < len(p.tokens) && p.tokens[j+2].Is(':') && p.free(j+3, tokenizer.Number) && p.tokens[j+3].Len() == 2 {
			p.claim(j, j+3, TimezoneOffset, phOffsetColon)
			return
		}
		p.claim(j, j+1, TimezoneOffset, phOffsetTwo)
	}
}

// ---------- bare hours ----------

// classifyBareHours claims "7" in "7 PM": a free run of at most two digits
// with a clock value right before a marker, outside any time group.
func (p *pass) classifyBareHours() {
	n := len(p.fields)
	for k := 0; k < n; k++ {
		f := p.fields[k]
		if f.kind != AmPm {
			continue
		}
		prev := p.prevSignificant(f.first, 1)
		if !p.free(prev, tokenizer.Number) {
			continue
		}
		tok := p.tokens[prev]
		v, _ := tok.Value()
		if tok.Len() > 2 || v < 1 || v > 12 {
			continue
		}
		p.claim(prev, prev, Hour12, padded(leadingZero(tok.Text), "h", "hh"))
	}
}

// ---------- compact dates ----------

// classifyCompactDates splits a free eight-digit run that reads as a
// valid yyyyMMdd into three fields.
func (p *pass) classifyCompactDates() {
	for i, tok := range p.tokens {
		if !p.free(i, tokenizer.Number) || tok.Len() != compactDateLen {
			continue
		}
		year, _ := atoi(tok.Text[0:4])
		month, _ := atoi(tok.Text[4:6])
		day, _ := atoi(tok.Text[6:8])
		if month < minMonth || month > maxMonth || day < minDay || day > maxDay {
			continue
		}
		s := tok.Start
		p.claimSpan(i, s, s+4, Year, "yyyy", year)
		p.claimSpan(i, s+4, s+6, Month, "MM", month)
		p.claimSpan(i, s+6, s+8, Day, "dd", day)
	}
}

// ---------- dates ----------

// classifyDates assigns year, month and day to every remaining run.
// Years come from width and range; with date context (a '/', '-', '.'
// separator or a month name) and no year yet, the last run is the year
// once three date parts are present. Runs above 12, zero runs beside a
// possible month, or any run next to a named month, are days. The rest
// stay open as months for the resolver.
func (p *pass) classifyDates() {
	var open []int
	years := p.hasKind(Year, nil)
	for i, tok := range p.tokens {
		if !p.free(i, tokenizer.Number) {
			continue
		}
		v, ok := tok.Value()
		if !ok {
			p.claimed[i] = true
			continue
		}
		if tok.Len() > 2 || v > maxDay {
			p.claim(i, i, Year, yearPlaceholder(tok.Text))
			years = true
			continue
		}
		open = append(open, i)
	}
	if len(open) == 0 {
		return
	}

	namedMonth := p.hasKind(Month, isNamedMonth)
	ordinalDay := p.hasKind(Day, isOrdinalDay)

	if !years && (namedMonth || p.hasDateSeparator()) {
		parts := len(open)
		if namedMonth {
			parts++
		}
		if ordinalDay {
			parts++
		}
		if parts >= 3 { //nolint:mnd // year, month, day
			last := open[len(open)-1]
			p.claim(last, last, Year, yearPlaceholder(p.tokens[last].Text))
			open = open[:len(open)-1]
		}
	}

	// A zero run cannot be a month when another run can.
	monthRuns := 0
	for _, i := range open {
		if v, _ := p.tokens[i].Value(); v >= minMonth && v <= maxMonth {
			monthRuns++
		}
	}

	for _, i := range open {
		tok := p.tokens[i]
		v, _ := tok.Value()
		switch {
		case v > maxMonth, namedMonth, v < minMonth && monthRuns > 0:
			p.claim(i, i, Day, numericPlaceholder(Day, tok.Text, v))
		default:
			p.claim(i, i, Month, "")
		}
	}
}

// hasDateSeparator reports whether a free '/', '-' or '.' remains.
func (p *pass) hasDateSeparator() bool {
	_, ok := p.dateSeparator()
	return ok
}

// dateSeparator returns the first free date separator in the input.
func (p *pass) dateSeparator() (byte, bool) {
	for i, t := range p.tokens {
		if p.claimed[i] || t.Type != tokenizer.Punctuation {
			continue
		}
		if t.Is('/') || t.Is('-') || t.Is('.') {
			return t.Text[0], true
		}
	}
	return 0, false
}

func isNamedMonth(f field) bool {
	return f.placeholder == phFullMonth || f.placeholder == phShortMonth
}

func isOrdinalDay(f field) bool {
	return f.placeholder == phOrdinalDay
}

// ---------- placeholders ----------

// numericPlaceholder picks the width of a numeric month or day: padded
// for "0x" sources and for values of two digits.
func numericPlaceholder(kind Kind, text string, value int) string {
	pad := leadingZero(text) || value >= 10
	switch kind {
	case Month:
		return padded(pad, "M", "MM")
	case Day:
		return padded(pad, "d", "dd")
	case Year, Weekday, Hour24, Hour12, Minute, Second, SubSecond, AmPm,
		TimezoneName, TimezoneOffset, Literal:
		panic("datefmt: numericPlaceholder called for " + kind.String())
	}
	panic("datefmt: unknown kind " + kind.String())
}

func yearPlaceholder(text string) string {
	if len(text) == 2 {
		return "yy"
	}
	return "yyyy"
}

func leadingZero(text string) bool {
	return len(text) == 2 && text[0] == '0'
}

func padded(pad bool, short, long string) string {
	if pad {
		return long
	}
	return short
}

// atoi parses a short all-digit string.
func atoi(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, s != ""
}
