package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/loglens/internal/domain"
)

func sampleLogs() []domain.LogEntry {
	return []domain.LogEntry{
		{ID: 1, SourceIP: "192.168.1.10", URL: "/index.html", StatusCode: "200"},
		{ID: 2, SourceIP: "10.0.0.5", URL: "/admin/login", StatusCode: "401"},
		{ID: 3, SourceIP: "10.0.0.5", URL: "/API/v1/users", StatusCode: "500"},
		{ID: 4, Timestamp: "10/Oct/2025:13:55:36", Action: "GET"},
		{ID: 5, URL: "/static/app.js"},
	}
}

func ids(logs []domain.LogEntry) []int {
	out := make([]int, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.ID)
	}
	return out
}

func TestContainsFilter(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		term     string
		entry    domain.LogEntry
		expected bool
	}{
		{"ip substring", SourceIP, "168.1", domain.LogEntry{SourceIP: "192.168.1.10"}, true},
		{"url substring", URL, "admin", domain.LogEntry{URL: "/admin/login"}, true},
		{"status prefix", StatusCode, "4", domain.LogEntry{StatusCode: "404"}, true},
		{"case sensitive", URL, "api", domain.LogEntry{URL: "/API/v1"}, false},
		{"absent field", SourceIP, "10", domain.LogEntry{}, false},
		{"empty term", SourceIP, "", domain.LogEntry{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewContainsFilter(tt.field, tt.term)
			assert.Equal(t, tt.expected, f.Match(&tt.entry))
		})
	}
}

func TestSearch(t *testing.T) {
	logs := sampleLogs()

	t.Run("empty term keeps everything", func(t *testing.T) {
		assert.Equal(t, logs, Apply(logs, NewSearch("")))
	})

	t.Run("matches any of the three fields", func(t *testing.T) {
		assert.Equal(t, []int{2, 3}, ids(Apply(logs, NewSearch("10.0.0"))))
		assert.Equal(t, []int{5}, ids(Apply(logs, NewSearch("app.js"))))
		assert.Equal(t, []int{1}, ids(Apply(logs, NewSearch("200"))))
	})

	t.Run("does not search other fields", func(t *testing.T) {
		assert.Empty(t, Apply(logs, NewSearch("GET")))
		assert.Empty(t, Apply(logs, NewSearch("Oct")))
	})

	t.Run("entry without searchable fields never matches", func(t *testing.T) {
		for _, term := range []string{"1", "/", "0", " "} {
			assert.NotContains(t, ids(Apply(logs, NewSearch(term))), 4, "term %q", term)
		}
	})

	t.Run("result is an ordered subset satisfying the predicate", func(t *testing.T) {
		for _, term := range []string{"1", "0.0", "/a", "5", "x"} {
			got := Apply(logs, NewSearch(term))
			require.LessOrEqual(t, len(got), len(logs))
			last := 0
			for _, e := range got {
				assert.Greater(t, e.ID, last, "order preserved")
				last = e.ID
				assert.True(t, e.HasSearchableFields())
				hit := NewContainsFilter(SourceIP, term).Match(&e) ||
					NewContainsFilter(URL, term).Match(&e) ||
					NewContainsFilter(StatusCode, term).Match(&e)
				assert.True(t, hit, fmt.Sprintf("entry %d for %q", e.ID, term))
			}
		}
	})

	t.Run("does not modify input", func(t *testing.T) {
		before := sampleLogs()
		_ = Apply(logs, NewSearch("10"))
		assert.Equal(t, before, logs)
	})
}

func TestOrChain(t *testing.T) {
	t.Run("empty OR chain matches all", func(t *testing.T) {
		assert.True(t, NewOrChain().Match(&domain.LogEntry{}))
	})

	t.Run("any filter may pass", func(t *testing.T) {
		chain := NewOrChain(NewContainsFilter(SourceIP, "x"), NewContainsFilter(URL, "y"))
		assert.True(t, chain.Match(&domain.LogEntry{URL: "y"}))
		assert.False(t, chain.Match(&domain.LogEntry{URL: "z"}))
	})
}

func TestApplyNilFilter(t *testing.T) {
	logs := sampleLogs()
	assert.Equal(t, logs, Apply(logs, nil))
}
