package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"critical", SeverityCritical},
		{"CRITICAL", SeverityCritical},
		{"High", SeverityHigh},
		{" medium ", SeverityMedium},
		{"LOW", SeverityLow},
		{"urgent", Severity("urgent")},
		{"", Severity("")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSeverity(tt.in))
		})
	}
}

func TestSeverityPriority(t *testing.T) {
	assert.Greater(t, SeverityCritical.Priority(), SeverityHigh.Priority())
	assert.Greater(t, SeverityHigh.Priority(), SeverityMedium.Priority())
	assert.Greater(t, SeverityMedium.Priority(), SeverityLow.Priority())
	assert.Equal(t, 0, Severity("urgent").Priority())
	assert.False(t, Severity("urgent").Known())
	for _, s := range Severities {
		assert.True(t, s.Known(), s)
	}
}

func TestAnomaly_DecodesUppercaseSeverity(t *testing.T) {
	var a Anomaly
	require.NoError(t, json.Unmarshal([]byte(`{"anomaly_type":"Port Scan","severity":"HIGH","confidence_score":0.7}`), &a))
	assert.Equal(t, SeverityHigh, a.Severity)
	assert.Equal(t, "Port Scan", a.AnomalyType)
}

func TestLogEntry_Bytes(t *testing.T) {
	n := int64(2048)
	zero := int64(0)

	v, ok := (&LogEntry{BytesSent: &n}).Bytes()
	assert.True(t, ok)
	assert.Equal(t, int64(2048), v)

	_, ok = (&LogEntry{BytesSent: &zero}).Bytes()
	assert.False(t, ok)

	_, ok = (&LogEntry{}).Bytes()
	assert.False(t, ok)
}

func TestLogEntry_HasSearchableFields(t *testing.T) {
	assert.False(t, (&LogEntry{Action: "Allowed", UserAgent: "curl"}).HasSearchableFields())
	assert.True(t, (&LogEntry{StatusCode: "200"}).HasSearchableFields())
}

func TestAnalysis_Completed(t *testing.T) {
	assert.True(t, (&Analysis{Status: "completed"}).Completed())
	assert.True(t, (&Analysis{Status: "analyzed"}).Completed())
	assert.False(t, (&Analysis{Status: "processing"}).Completed())
	assert.False(t, (&Analysis{}).Completed())
}

func TestAnalysis_UploadedAt(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2024-03-01T10:15:30Z", true},
		{"2024-03-01T10:15:30.123456", true},
		{"2024-03-01 10:15:30", true},
		{"yesterday", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := (&Analysis{UploadTime: tt.value}).UploadedAt()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, time.Date(2024, 3, 1, 10, 15, 30, 0, time.UTC), got.Truncate(time.Second))
			}
		})
	}
}

func TestLoginResponse_Succeeded(t *testing.T) {
	assert.True(t, (&LoginResponse{Status: "success"}).Succeeded())
	assert.False(t, (&LoginResponse{Status: "failure", Error: "Invalid credentials"}).Succeeded())
	var nilResp *LoginResponse
	assert.False(t, nilResp.Succeeded())
}
