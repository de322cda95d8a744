package locale

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  string
		sep  byte
		want Order
	}{
		{"US slash", "en-US", '/', MDY},
		{"GB slash", "en-GB", '/', DMY},
		{"GB lowercase underscore", "en_gb", '/', DMY},
		{"GB mixed case", "EN-gb", '.', DMY},
		{"French", "fr", '/', DMY},
		{"French region falls back to language", "fr-BE", '/', DMY},
		{"German region falls back to language", "de-AT", '.', DMY},
		{"Japanese", "ja", '/', YMD},
		{"Japanese region", "ja-JP", '-', YMD},
		{"Canadian dash", "en-CA", '-', YMD},
		{"Canadian slash", "en-CA", '/', DMY},
		{"Brazil exact", "pt-BR", '/', DMY},
		{"unknown tag slash", "xx-YY", '/', MDY},
		{"unknown tag dot", "xx-YY", '.', DMY},
		{"unknown tag dash", "xx-YY", '-', YMD},
		{"empty tag", "", '/', MDY},
		{"garbage tag", "!!not a tag!!", '.', DMY},
		{"undetermined language", "und", '/', MDY},
		{"unknown separator in known locale", "en-GB", ' ', MDY},
		{"default tag literal", "default", '-', YMD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Lookup(tt.tag, tt.sep))
		})
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()
	assert.True(t, Known("en-GB"))
	assert.True(t, Known("es-MX"), "base language es is in the table")
	assert.False(t, Known("xx"))
	assert.False(t, Known(""))
	assert.False(t, Known("default"))
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	raw := "# comment\n" +
		"aa\t/\tDMY\n" +
		"aa\t.\tYMD\n" +
		"bb\t//\tDMY\n" + // separator must be one byte
		"cc\t/\tXYZ\n" + // unknown order
		"dd\t/\n" + // missing column
		"\n"

	m, tags := parseTable(raw)
	require.Len(t, m, 1)
	assert.Equal(t, []string{"aa"}, tags)
	assert.Equal(t, DMY, m["aa"]['/'])
	assert.Equal(t, YMD, m["aa"]['.'])
}

func TestRows(t *testing.T) {
	t.Parallel()

	rows := Rows()
	require.NotEmpty(t, rows)
	assert.Equal(t, DefaultTag, rows[0].Tag)

	seen := make(map[string]bool)
	for _, r := range rows {
		seen[r.Tag] = true
		assert.Len(t, r.Separator, 1)
	}
	for _, tag := range []string{"en-US", "en-GB", "fr", "ja"} {
		assert.True(t, seen[tag], "missing %s", tag)
	}
}

func TestOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DMY", DMY.String())
	assert.Equal(t, "Order(9)", Order(9).String())
	assert.True(t, DMY.DayFirst())
	assert.False(t, YMD.DayFirst())

	o, ok := ParseOrder("ymd")
	assert.True(t, ok)
	assert.Equal(t, YMD, o)
	_, ok = ParseOrder("nope")
	assert.False(t, ok)

	b, err := json.Marshal(Row{Tag: "fr", Separator: "/", Order: DMY})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":"fr","separator":"/","order":"DMY"}`, string(b))
}
