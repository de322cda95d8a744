package datefmt

import (
	"fmt"
	"strings"

	"github.com/az-ai-labs/dateguess/tokenizer"
)

// assemble replaces each field's span of s with its placeholder. Fields
// must be sorted and non-overlapping; spans index the original string, so
// placeholder widths never shift later offsets. Letters between fields
// are bracket-escaped so a renderer reads them as text.
func assemble(s string, fields []Field) string {
	var b strings.Builder
	b.Grow(len(s) + 2*len(fields)) //nolint:mnd

	pos := 0
	for _, f := range fields {
		if f.Start < pos || f.End <= f.Start || f.End > len(s) {
			panic(fmt.Sprintf("datefmt: field %s out of order at offset %d", f.Token, pos))
		}
		writeLiteral(&b, s[pos:f.Start])
		b.WriteString(f.Placeholder)
		pos = f.End
	}
	writeLiteral(&b, s[pos:])
	return b.String()
}

// writeLiteral copies text unchanged except that letter runs are wrapped
// in brackets: "at" -> "[at]".
func writeLiteral(b *strings.Builder, text string) {
	for _, t := range tokenizer.Scan(text) {
		if t.Type == tokenizer.Word {
			b.WriteByte('[')
			b.WriteString(t.Text)
			b.WriteByte(']')
			continue
		}
		b.WriteString(t.Text)
	}
}
