package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/logtable"
)

func TestTextWriter_WriteLogs(t *testing.T) {
	t.Run("renders table and footer", func(t *testing.T) {
		logs := make([]domain.LogEntry, 120)
		for i := range logs {
			logs[i] = domain.LogEntry{SourceIP: "192.168.1.10", URL: "/index.html", StatusCode: "200"}
		}
		var buf bytes.Buffer
		require.NoError(t, NewTextWriter(&buf).WriteLogs(logtable.Paginate(logs, 3)))

		out := buf.String()
		assert.Contains(t, out, "192.168.1.10")
		assert.Contains(t, out, "Showing 101-120 of 120")
		assert.Contains(t, out, "page 3 / 3")
	})

	t.Run("empty page shows message and no table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTextWriter(&buf).WriteLogs(logtable.Paginate(nil, 1)))
		assert.Equal(t, logtable.EmptyMessage+"\n", buf.String())
	})

	t.Run("single page hides pagination", func(t *testing.T) {
		var buf bytes.Buffer
		logs := []domain.LogEntry{{SourceIP: "1.1.1.1"}}
		require.NoError(t, NewTextWriter(&buf).WriteLogs(logtable.Paginate(logs, 1)))
		assert.NotContains(t, buf.String(), "page ")
	})
}

func TestTextWriter_WriteAnalysis(t *testing.T) {
	var buf bytes.Buffer
	o := dashboard.Overview{
		ID:           12,
		Filename:     "access.log",
		TotalEntries: 1234567,
		AnomalyCount: 4,
		HighPriority: 3,
		Completed:    true,
		Summary:      "Suspicious scanning from one host.",
		Severity:     dashboard.SeverityCounts{Critical: 2, High: 1, Low: 1},
	}
	require.NoError(t, NewTextWriter(&buf).WriteAnalysis(o))

	out := buf.String()
	assert.Contains(t, out, "Analysis #12 access.log")
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "critical: 2")
	assert.NotContains(t, out, "other:")
	assert.Contains(t, out, "Suspicious scanning from one host.")
}

func TestTextWriter_WriteAnomalies(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTextWriter(&buf).WriteAnomalies(nil))
		assert.Contains(t, buf.String(), "No anomalies detected.")
	})

	t.Run("rows", func(t *testing.T) {
		var buf bytes.Buffer
		anomalies := []domain.Anomaly{{
			AnomalyType:     "Port Scan",
			Description:     "Sequential ports probed",
			ConfidenceScore: 0.85,
			Severity:        domain.SeverityCritical,
			LogEntry:        domain.LogEntry{SourceIP: "10.1.1.1"},
		}}
		require.NoError(t, NewTextWriter(&buf).WriteAnomalies(anomalies))
		out := buf.String()
		assert.Contains(t, out, "CRITICAL")
		assert.Contains(t, out, "Port Scan")
		assert.Contains(t, out, "85%")
		assert.Contains(t, out, "10.1.1.1")
	})
}

func TestAnomalyRow(t *testing.T) {
	row := AnomalyRow(domain.Anomaly{AnomalyType: "Unusual Activity", ConfidenceScore: 0.5})
	require.Len(t, row, len(AnomalyColumns))
	assert.Equal(t, logtable.Placeholder, row[0])
	assert.Equal(t, "50%", row[3])
	assert.Equal(t, logtable.Placeholder, row[4])
	assert.Equal(t, logtable.Placeholder, row[5])
}

func TestTextWriter_WriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextWriter(&buf).WriteError("NOT_FOUND", "Analysis not found"))
	assert.Contains(t, buf.String(), "[NOT_FOUND]: Analysis not found")
	assert.NotContains(t, buf.String(), "Hint:")
}

func TestEmitter_ErrorHint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEmitter(&buf, "text").Error("NOT_FOUND", "Analysis not found", "check the id"))
	assert.Contains(t, buf.String(), "Hint: check the id")

	buf.Reset()
	require.NoError(t, NewEmitter(&buf, "ndjson").Error("NOT_FOUND", "Analysis not found", "check the id"))
	assert.Contains(t, buf.String(), `"hint":"check the id"`)
}

func TestSeverityBadge(t *testing.T) {
	assert.Contains(t, SeverityBadge(domain.SeverityLow), "LOW")
	assert.Contains(t, SeverityBadge(""), "UNKNOWN")
}

func TestEmitter_TextMode(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, "text")
	assert.True(t, e.Text())
	require.NoError(t, e.Warning("slow backend"))
	assert.Contains(t, buf.String(), "slow backend")

	assert.False(t, NewEmitter(&buf, "ndjson").Text())
}
