// Package locale maps a locale tag and a date separator to the locale's
// conventional field order.
//
// The table is compiled in, parsed once at init, and read-only afterwards.
// Resolution tries the exact tag, then the canonical form of the tag, then
// its base language ("en-GB" -> "en"). Unknown tags fall back to the
// default rows keyed by separator alone: '/' is month-first, '.' is
// day-first, '-' is year-first.
//
// All functions are safe for concurrent use by multiple goroutines.
package locale

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/az-ai-labs/dateguess/data"
)

// Order is a conventional date field sequence.
type Order int

const (
	MDY Order = iota // month, day, year
	DMY              // day, month, year
	YMD              // year, month, day
)

var orderNames = [...]string{
	MDY: "MDY",
	DMY: "DMY",
	YMD: "YMD",
}

// String returns the name of the order, e.g. "DMY".
func (o Order) String() string {
	if int(o) >= 0 && int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// MarshalJSON encodes the order as a JSON string.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// DayFirst reports whether the order places the day before the month.
func (o Order) DayFirst() bool {
	return o == DMY
}

// ParseOrder converts a name such as "MDY" to an Order.
func ParseOrder(s string) (Order, bool) {
	for i, name := range orderNames {
		if strings.EqualFold(s, name) {
			return Order(i), true
		}
	}
	return MDY, false
}

// DefaultTag names the fallback row set.
const DefaultTag = "default"

// fallbackOrder applies when neither the locale nor the default rows
// know the separator.
const fallbackOrder = MDY

// Row is one entry of the order table.
type Row struct {
	Tag       string `json:"tag"`
	Separator string `json:"separator"`
	Order     Order  `json:"order"`
}

// table maps a lowercase tag to its separator rows, built once at init.
var table map[string]map[byte]Order

// tags keeps the tags in file order for Rows.
var tags []string

func init() {
	table, tags = parseTable(data.LocaleOrders)
}

// parseTable parses tab-separated "tag\tseparator\torder" lines.
// Malformed lines are skipped.
func parseTable(raw string) (map[string]map[byte]Order, []string) {
	m := make(map[string]map[byte]Order, 64) //nolint:mnd
	var order []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 || len(parts[1]) != 1 { //nolint:mnd
			continue
		}
		o, ok := ParseOrder(parts[2])
		if !ok {
			continue
		}
		key := strings.ToLower(parts[0])
		rows, exists := m[key]
		if !exists {
			rows = make(map[byte]Order, 3) //nolint:mnd
			m[key] = rows
			order = append(order, parts[0])
		}
		rows[parts[1][0]] = o
	}
	return m, order
}

// Lookup returns the preferred field order for tag and separator.
// Unknown tags and separators never fail; they resolve through the
// default rows.
func Lookup(tag string, sep byte) Order {
	if rows, ok := rowsFor(tag); ok {
		if o, ok := rows[sep]; ok {
			return o
		}
	}
	if o, ok := table[DefaultTag][sep]; ok {
		return o
	}
	return fallbackOrder
}

// Known reports whether tag resolves to a row set other than the default.
func Known(tag string) bool {
	_, ok := rowsFor(tag)
	return ok
}

// rowsFor resolves tag to its row set: exact match, canonical tag, then
// base language.
func rowsFor(tag string) (map[byte]Order, bool) {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" || strings.EqualFold(tag, DefaultTag) {
		return nil, false
	}
	if rows, ok := table[strings.ToLower(tag)]; ok {
		return rows, true
	}

	t, err := language.Parse(tag)
	if err != nil {
		return nil, false
	}
	if rows, ok := table[strings.ToLower(t.String())]; ok {
		return rows, true
	}
	base, conf := t.Base()
	if conf != language.Exact {
		return nil, false
	}
	rows, ok := table[strings.ToLower(base.String())]
	return rows, ok
}

// Rows returns every table entry, tags in table order and separators
// sorted within a tag.
func Rows() []Row {
	out := make([]Row, 0, len(tags)*3) //nolint:mnd
	for _, tag := range tags {
		rows := table[strings.ToLower(tag)]
		seps := make([]byte, 0, len(rows))
		for sep := range rows {
			seps = append(seps, sep)
		}
		slices.Sort(seps)
		for _, sep := range seps {
			out = append(out, Row{Tag: tag, Separator: string(sep), Order: rows[sep]})
		}
	}
	return out
}
