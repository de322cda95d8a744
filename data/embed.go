// Package data embeds the static vocabularies consulted by the classifier.
package data

import _ "embed"

// TimezoneAbbreviations lists named timezone abbreviations, one per line.
// Lines starting with '#' are comments.
//
//go:embed timezones.txt
var TimezoneAbbreviations string

// LocaleOrders holds tab-separated "tag\tseparator\torder" rows. The tag
// "default" marks the fallback row set used for unknown locales.
//
//go:embed locale_order.tsv
var LocaleOrders string
