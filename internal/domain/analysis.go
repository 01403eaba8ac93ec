package domain

import (
	"encoding/json"
	"time"
)

// Analysis is the metadata of one backend-processed run over an uploaded file
type Analysis struct {
	ID           int    `json:"id"`
	Filename     string `json:"filename"`
	UploadTime   string `json:"upload_time"`
	TotalEntries int    `json:"total_entries"`
	AnomalyCount int    `json:"anomaly_count"`
	Summary      string `json:"summary"`
	Status       string `json:"status"`
}

// Completed reports whether the backend finished processing the analysis.
func (a *Analysis) Completed() bool {
	return a.Status == "completed" || a.Status == "analyzed"
}

var uploadTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UploadedAt parses the upload time; the second result is false when the
// backend value is in an unrecognized layout.
func (a *Analysis) UploadedAt() (time.Time, bool) {
	for _, layout := range uploadTimeLayouts {
		if t, err := time.Parse(layout, a.UploadTime); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AnalysisResult is the complete dataset displayed by the results dashboard.
// Timeline points are opaque and only passed through to the chart renderer.
type AnalysisResult struct {
	Analysis   Analysis          `json:"analysis"`
	Anomalies  []Anomaly         `json:"anomalies"`
	Timeline   []json.RawMessage `json:"timeline"`
	LogEntries []LogEntry        `json:"log_entries"`
}

// UploadResponse is the backend reply to a log upload
type UploadResponse struct {
	Status       string       `json:"status,omitempty"`
	AnalysisID   int          `json:"analysis_id,omitempty"`
	TotalEntries int          `json:"total_entries,omitempty"`
	AnomalyCount int          `json:"anomaly_count,omitempty"`
	Anomalies    []RawAnomaly `json:"anomalies,omitempty"`
}

// LoginResponse is the backend reply to a credential submission
type LoginResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Succeeded reports whether the credentials were accepted.
func (r *LoginResponse) Succeeded() bool {
	return r != nil && r.Status == "success"
}
