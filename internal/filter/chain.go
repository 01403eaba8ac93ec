package filter

import (
	"github.com/vburojevic/loglens/internal/domain"
)

// Filter determines if a log entry should be included
type Filter interface {
	// Match returns true if the entry passes the filter
	Match(entry *domain.LogEntry) bool
}

// OrChain combines multiple filters (any must pass)
type OrChain struct {
	filters []Filter
}

// NewOrChain creates an OR filter chain
func NewOrChain(filters ...Filter) *OrChain {
	return &OrChain{filters: filters}
}

// Match returns true if any filter passes. An empty chain matches everything.
func (c *OrChain) Match(entry *domain.LogEntry) bool {
	if len(c.filters) == 0 {
		return true
	}
	for _, f := range c.filters {
		if f.Match(entry) {
			return true
		}
	}
	return false
}

// Apply returns the entries of logs that pass f, in order. logs is not modified.
func Apply(logs []domain.LogEntry, f Filter) []domain.LogEntry {
	out := make([]domain.LogEntry, 0, len(logs))
	for i := range logs {
		if f == nil || f.Match(&logs[i]) {
			out = append(out, logs[i])
		}
	}
	return out
}
