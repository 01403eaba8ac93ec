package logtable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vburojevic/loglens/internal/domain"
)

// Placeholder is rendered for absent fields
const Placeholder = "-"

// MaxURLWidth is the number of URL characters shown before truncation
const MaxURLWidth = 50

// Columns are the table headers in display order
var Columns = []string{"Timestamp", "Source IP", "URL", "Action", "Status", "Bytes"}

var numbers = message.NewPrinter(language.English)

// Row returns the display cells of entry in Columns order.
func Row(entry domain.LogEntry) []string {
	bytes := Placeholder
	if n, ok := entry.Bytes(); ok {
		bytes = FormatCount(n)
	}
	return []string{
		orPlaceholder(entry.Timestamp),
		orPlaceholder(entry.SourceIP),
		orPlaceholder(TruncateURL(entry.URL)),
		orPlaceholder(entry.Action),
		orPlaceholder(entry.StatusCode),
		bytes,
	}
}

// TruncateURL shortens u to MaxURLWidth characters followed by "...".
func TruncateURL(u string) string {
	r := []rune(u)
	if len(r) <= MaxURLWidth {
		return u
	}
	return string(r[:MaxURLWidth]) + "..."
}

// FormatCount renders n with thousands separators.
func FormatCount(n int64) string {
	return numbers.Sprintf("%d", n)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
