package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/az-ai-labs/dateguess/datefmt"
	"github.com/az-ai-labs/dateguess/tokenizer"
)

// localeProbes are re-run for every sample; a locale may reorder
// interpretations but never change the set.
var localeProbes = []string{"en-GB", "de", "ja"}

// checkResult returns a description of every invariant res violates.
func checkResult(input string, res datefmt.Result) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if res.Input != input {
		add("result input %q differs from sample", res.Input)
	}
	if res.Ambiguous != (len(res.Interpretations) > 1) {
		add("ambiguous=%v with %d interpretations", res.Ambiguous, len(res.Interpretations))
	}
	if strings.TrimSpace(input) != "" && len(res.Interpretations) == 0 {
		add("no interpretation for non-blank input")
	}
	if got := strings.Join(tokenizer.Texts(input), ""); got != input {
		add("tokens do not reconstruct input")
	}

	seen := make(map[string]bool, len(res.Interpretations))
	for i, in := range res.Interpretations {
		if seen[in.Template] {
			add("duplicate template %q", in.Template)
		}
		seen[in.Template] = true

		if in.Confidence < 0 || in.Confidence > 100 {
			add("interpretation %d confidence %d out of range", i, in.Confidence)
		}
		if i > 0 {
			prev := res.Interpretations[i-1]
			if !prev.Preferred && in.Preferred {
				add("preferred interpretation %d ranked after a non-preferred one", i)
			}
			if prev.Preferred == in.Preferred && prev.Confidence < in.Confidence {
				add("interpretation %d outranks its predecessor", i)
			}
		}

		end := 0
		for _, f := range in.Fields {
			if f.Start < end || f.End <= f.Start || f.End > len(input) {
				add("field %s has bad span", f)
				continue
			}
			if input[f.Start:f.End] != f.Text {
				add("field %s does not match input", f)
			}
			end = f.End
		}
	}

	want := res.Templates()
	slices.Sort(want)
	for _, tag := range localeProbes {
		alt, err := datefmt.ClassifyLocale(input, tag)
		if err != nil {
			add("locale %s: %v", tag, err)
			continue
		}
		got := alt.Templates()
		slices.Sort(got)
		if !slices.Equal(got, want) {
			add("locale %s changes the template set: %v", tag, got)
		}
	}
	return problems
}
