// Package datefmt infers the format template behind an example date/time
// string typed by a human.
//
// Given "03/10/1990" it reports the templates "MM/dd/yyyy" and "dd/MM/yyyy",
// ranked, each with a confidence score and a short rationale. Given
// "Mar 10 1990 14:30:45" it reports the single template "MMM dd yyyy HH:mm:ss".
// Placeholders follow the date-fns vocabulary (yyyy, MM, dd, HH, h, mm, ss,
// SSS, aa, EEEE, MMMM, do, zzz, xxx). Literal characters of the input are
// kept in place; unrecognized words are bracket-escaped ("at" -> "[at]").
//
// The pipeline scans the input into runs, claims month/weekday/AM-PM/timezone
// words, assigns roles to digit runs from time-group, AM/PM, range and
// position evidence, and splits genuine month/day ambiguity into two ranked
// interpretations. A locale tag can be supplied to choose which of the two
// orders is preferred.
//
// The engine never rejects non-empty input: unrecognized text is carried
// through as literal text. It does not validate calendar dates and does not
// resolve timezone names to offsets.
//
// All functions are safe for concurrent use by multiple goroutines.
package datefmt

import (
	"encoding/json"
	"fmt"
)

// Kind is the role of a recognized field.
type Kind int

const (
	Year Kind = iota
	Month
	Day
	Weekday
	Hour24
	Hour12
	Minute
	Second
	SubSecond
	AmPm
	TimezoneName
	TimezoneOffset
	Literal
)

// kindNames maps Kind values to their string names.
var kindNames = [...]string{
	Year:           "Year",
	Month:          "Month",
	Day:            "Day",
	Weekday:        "Weekday",
	Hour24:         "Hour24",
	Hour12:         "Hour12",
	Minute:         "Minute",
	Second:         "Second",
	SubSecond:      "SubSecond",
	AmPm:           "AmPm",
	TimezoneName:   "TimezoneName",
	TimezoneOffset: "TimezoneOffset",
	Literal:        "Literal",
}

// kindFromName maps string names back to Kind values.
var kindFromName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// String returns the name of the kind.
func (k Kind) String() string {
	if k.valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) valid() bool {
	return int(k) >= 0 && int(k) < len(kindNames)
}

// MarshalJSON encodes the kind as a JSON string (e.g. "Month").
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Month") into a Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kk, ok := kindFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return fmt.Errorf("datefmt: unknown kind: %q", s)
	}
	*k = kk
	return nil
}

// Token is a classified span of the input.
type Token struct {
	Text  string `json:"text"`  // The matched substring
	Start int    `json:"start"` // Byte offset in the original string (inclusive)
	End   int    `json:"end"`   // Byte offset in the original string (exclusive)
	Kind  Kind   `json:"kind"`
}

// String returns a debug representation, e.g. Month("03")[0:2].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Kind, t.Text, t.Start, t.End)
}

// Field is a token resolved to its template placeholder.
type Field struct {
	Token
	Placeholder string `json:"placeholder"`
}

// Interpretation is one candidate template for the input.
type Interpretation struct {
	Template   string  `json:"template"`
	Confidence int     `json:"confidence"` // Heuristic rank score, 0..100
	Rationale  string  `json:"rationale"`
	Fields     []Field `json:"fields"` // Ordered by Start
	Preferred  bool    `json:"preferred"`
}

// Result holds every interpretation of one input, best first.
// Ambiguous is true exactly when len(Interpretations) > 1.
type Result struct {
	Input           string           `json:"input"`
	Interpretations []Interpretation `json:"interpretations"`
	Ambiguous       bool             `json:"ambiguous"`
}

// Best returns the highest-ranked interpretation.
func (r Result) Best() (Interpretation, bool) {
	if len(r.Interpretations) == 0 {
		return Interpretation{}, false
	}
	return r.Interpretations[0], true
}

// Templates returns the interpretation templates in rank order.
func (r Result) Templates() []string {
	out := make([]string, len(r.Interpretations))
	for i, in := range r.Interpretations {
		out[i] = in.Template
	}
	return out
}

// InvalidInputError reports input the engine cannot classify at all.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "datefmt: invalid input: " + e.Reason
}

// Classify infers the templates that could have produced input.
// Month/day ambiguity is ranked month-first. Returns *InvalidInputError
// for empty input; any other input yields a best-effort Result.
func Classify(input string) (Result, error) {
	if err := validate(input); err != nil {
		return Result{}, err
	}
	return classify(input, ""), nil
}

// ClassifyLocale is Classify with tag's conventional field order used to
// rank month/day ambiguity. Unknown tags use the default separator table.
func ClassifyLocale(input, tag string) (Result, error) {
	if err := validate(input); err != nil {
		return Result{}, err
	}
	return classify(input, tag), nil
}

// BestTemplate returns the template of the highest-ranked interpretation.
// Reports false for invalid input or when nothing could be interpreted.
func BestTemplate(input string) (string, bool) {
	res, err := Classify(input)
	if err != nil {
		return "", false
	}
	best, ok := res.Best()
	return best.Template, ok
}

// ClassifyWithLocale returns the best template under tag's field order.
func ClassifyWithLocale(input, tag string) (string, bool) {
	res, err := ClassifyLocale(input, tag)
	if err != nil {
		return "", false
	}
	best, ok := res.Best()
	return best.Template, ok
}

func validate(input string) error {
	if input == "" {
		return &InvalidInputError{Reason: "empty input"}
	}
	return nil
}
