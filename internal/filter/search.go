package filter

import (
	"strings"

	"github.com/vburojevic/loglens/internal/domain"
)

// Field extracts one searchable text field from a log entry
type Field func(entry *domain.LogEntry) string

// Searchable fields of a log entry
var (
	SourceIP   Field = func(e *domain.LogEntry) string { return e.SourceIP }
	URL        Field = func(e *domain.LogEntry) string { return e.URL }
	StatusCode Field = func(e *domain.LogEntry) string { return e.StatusCode }
)

// ContainsFilter matches entries whose field contains a literal substring.
// Matching is case-sensitive; an absent field never matches a non-empty term.
type ContainsFilter struct {
	field Field
	term  string
}

// NewContainsFilter creates a substring filter over one field
func NewContainsFilter(field Field, term string) *ContainsFilter {
	return &ContainsFilter{field: field, term: term}
}

// Match returns true if the field contains the term
func (f *ContainsFilter) Match(entry *domain.LogEntry) bool {
	if f.term == "" {
		return true
	}
	v := f.field(entry)
	if v == "" {
		return false
	}
	return strings.Contains(v, f.term)
}

// NewSearch builds the log table search: the term must appear in the source
// IP, the URL or the status code. An empty term matches every entry.
func NewSearch(term string) Filter {
	if term == "" {
		return NewOrChain()
	}
	return NewOrChain(
		NewContainsFilter(SourceIP, term),
		NewContainsFilter(URL, term),
		NewContainsFilter(StatusCode, term),
	)
}
