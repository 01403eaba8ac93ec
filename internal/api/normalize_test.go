package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/loglens/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizePreview(t *testing.T) {
	t.Run("high confidence with all defaults", func(t *testing.T) {
		got := NormalizePreview([]domain.RawAnomaly{{ConfidenceScore: ptr(0.9)}})

		require.Len(t, got, 1)
		assert.Equal(t, domain.SeverityHigh, got[0].Severity)
		assert.Equal(t, "Unusual Activity", got[0].AnomalyType)
		assert.Equal(t, DefaultDescription, got[0].Description)
		assert.Equal(t, 0.9, got[0].ConfidenceScore)
	})

	t.Run("missing confidence defaults to 0.5 and medium", func(t *testing.T) {
		got := NormalizePreview([]domain.RawAnomaly{{}})

		require.Len(t, got, 1)
		assert.Equal(t, 0.5, got[0].ConfidenceScore)
		assert.Equal(t, domain.SeverityMedium, got[0].Severity)
	})

	t.Run("upstream severity is ignored", func(t *testing.T) {
		got := NormalizePreview([]domain.RawAnomaly{{ConfidenceScore: ptr(0.3), Severity: ptr("CRITICAL")}})

		assert.Equal(t, domain.SeverityMedium, got[0].Severity)
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		got := NormalizePreview([]domain.RawAnomaly{{ConfidenceScore: ptr(0.8)}, {ConfidenceScore: ptr(0.81)}})

		assert.Equal(t, domain.SeverityMedium, got[0].Severity)
		assert.Equal(t, domain.SeverityHigh, got[1].Severity)
	})

	t.Run("keeps supplied fields and log entry", func(t *testing.T) {
		got := NormalizePreview([]domain.RawAnomaly{{
			AnomalyType: ptr("High Request Volume"),
			Description: ptr("IP 10.0.0.1 made 12 requests."),
			LogEntry:    &domain.LogEntry{ID: 3, SourceIP: "10.0.0.1"},
		}})

		assert.Equal(t, "High Request Volume", got[0].AnomalyType)
		assert.Equal(t, "IP 10.0.0.1 made 12 requests.", got[0].Description)
		assert.Equal(t, "10.0.0.1", got[0].LogEntry.SourceIP)
		assert.Equal(t, 3, got[0].LogEntryID)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, NormalizePreview(nil))
	})
}
