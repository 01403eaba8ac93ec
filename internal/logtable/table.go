// Package logtable implements the searchable, paginated view over log entries.
package logtable

import (
	"fmt"

	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/filter"
)

// PageSize is the fixed number of rows per page
const PageSize = 50

// EmptyMessage is shown instead of a table body when nothing matches
const EmptyMessage = "No logs found matching your search."

// Page is one rendered slice of the filtered log set
type Page struct {
	Entries    []domain.LogEntry
	Number     int // 1-based
	TotalPages int
	Start      int // 1-based index of the first row, 0 when empty
	End        int // 1-based index of the last row, 0 when empty
	Total      int // size of the filtered set
}

// Empty reports whether the filtered set has no entries.
func (p Page) Empty() bool {
	return p.Total == 0
}

// ShowPagination reports whether pagination controls should be displayed.
func (p Page) ShowPagination() bool {
	return p.TotalPages > 1
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// Footer returns the range line, e.g. "Showing 101-120 of 120".
func (p Page) Footer() string {
	return fmt.Sprintf("Showing %d-%d of %d", p.Start, p.End, p.Total)
}

// Indicator returns the "current / total" pagination label.
func (p Page) Indicator() string {
	return fmt.Sprintf("%d / %d", p.Number, p.TotalPages)
}

// TotalPages returns ceil(count / PageSize).
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + PageSize - 1) / PageSize
}

// Paginate returns page number of entries, clamping number into [1, TotalPages].
// The returned Entries share storage with entries and must not be modified.
func Paginate(entries []domain.LogEntry, number int) Page {
	total := len(entries)
	pages := TotalPages(total)
	number = clamp(number, pages)

	p := Page{Number: number, TotalPages: pages, Total: total}
	if total == 0 {
		return p
	}
	from := (number - 1) * PageSize
	to := min(number*PageSize, total)
	p.Entries = entries[from:to:to]
	p.Start = from + 1
	p.End = to
	return p
}

// View filters logs by term and returns the requested page. It is a pure
// function: the same inputs always yield the same page and logs is never modified.
func View(logs []domain.LogEntry, term string, number int) Page {
	return Paginate(filter.Apply(logs, filter.NewSearch(term)), number)
}

func clamp(number, pages int) int {
	if number < 1 || pages == 0 {
		return 1
	}
	if number > pages {
		return pages
	}
	return number
}

// Table holds the search term and current page over a read-only log set
type Table struct {
	logs     []domain.LogEntry
	term     string
	page     int
	filtered []domain.LogEntry
}

// New creates a table on page 1 with an empty search.
func New(logs []domain.LogEntry) *Table {
	return &Table{logs: logs, page: 1, filtered: logs}
}

// Search returns the current search term.
func (t *Table) Search() string {
	return t.term
}

// SetSearch changes the search term and always resets to page 1.
func (t *Table) SetSearch(term string) {
	t.page = 1
	if term == t.term {
		return
	}
	t.term = term
	t.filtered = filter.Apply(t.logs, filter.NewSearch(term))
}

// SetPage moves to page n, clamped to the available pages.
func (t *Table) SetPage(n int) {
	t.page = clamp(n, TotalPages(len(t.filtered)))
}

// Next advances one page if possible.
func (t *Table) Next() {
	t.SetPage(t.page + 1)
}

// Prev goes back one page if possible.
func (t *Table) Prev() {
	t.SetPage(t.page - 1)
}

// First jumps to page 1.
func (t *Table) First() {
	t.page = 1
}

// Last jumps to the final page.
func (t *Table) Last() {
	t.SetPage(TotalPages(len(t.filtered)))
}

// Page returns the current page.
func (t *Table) Page() Page {
	return Paginate(t.filtered, t.page)
}

// Len returns the size of the unfiltered log set.
func (t *Table) Len() int {
	return len(t.logs)
}
