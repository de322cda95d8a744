package datefmt

import (
	"strings"

	"github.com/az-ai-labs/dateguess/data"
)

// Word vocabularies, keyed by lowercase spelling. Checked in the order
// listed in matchWord; "may" lives only in fullMonths.
var (
	fullWeekdays = set(
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	)
	shortWeekdays = set(
		"mon", "tue", "tues", "wed", "thu", "thur", "thurs", "fri", "sat", "sun",
	)
	minWeekdays = set(
		"mo", "tu", "we", "th", "fr", "sa", "su",
	)
	fullMonths = set(
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	)
	shortMonths = set(
		"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
	)
	ordinalSuffixes = set("st", "nd", "rd", "th")
)

// timezones holds uppercase timezone abbreviations, built once at init.
var timezones map[string]bool

func init() {
	timezones = parseTimezones(data.TimezoneAbbreviations)
}

// parseTimezones reads one abbreviation per line, skipping comments.
func parseTimezones(raw string) map[string]bool {
	m := make(map[string]bool, 256) //nolint:mnd
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		m[strings.ToUpper(line)] = true
	}
	return m
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Placeholders for word-derived fields.
const (
	phFullWeekday  = "EEEE"
	phShortWeekday = "EEE"
	phMinWeekday   = "EEEEEE"
	phFullMonth    = "MMMM"
	phShortMonth   = "MMM"
	phOrdinalDay   = "do"
	phMarkerUpper  = "aa"
	phMarkerLower  = "aaa"
	phMarkerLetter = "aaaaa"
	phZoneName     = "zzz"
)

// Placeholders for timezone offsets.
const (
	phOffsetZulu  = "XXX" // Z
	phOffsetColon = "xxx" // +05:00
	phOffsetFour  = "xx"  // +0500
	phOffsetTwo   = "x"   // +05
)
