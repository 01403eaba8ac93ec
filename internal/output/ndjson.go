package output

import (
	"encoding/json"
	"io"

	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/logtable"
)

// NDJSONWriter writes records as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // URLs and user agents stay readable
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// LoginOutput is the result of a login attempt
type LoginOutput struct {
	Type          string `json:"type"` // Always "login"
	SchemaVersion int    `json:"schemaVersion"`
	Status        string `json:"status"`
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
}

// UploadOutput is the acknowledgement of an uploaded log file
type UploadOutput struct {
	Type          string `json:"type"` // Always "upload"
	SchemaVersion int    `json:"schemaVersion"`
	File          string `json:"file"`
	Status        string `json:"status"`
	AnalysisID    int    `json:"analysis_id"`
	TotalEntries  int    `json:"total_entries"`
	AnomalyCount  int    `json:"anomaly_count"`
}

// AnomalyOutput is one anomaly, either from an upload preview or a full analysis
type AnomalyOutput struct {
	Type            string  `json:"type"` // Always "anomaly"
	SchemaVersion   int     `json:"schemaVersion"`
	AnalysisID      int     `json:"analysis_id,omitempty"`
	ID              int     `json:"id,omitempty"`
	AnomalyType     string  `json:"anomaly_type"`
	Description     string  `json:"description"`
	ConfidenceScore float64 `json:"confidence_score"`
	Severity        string  `json:"severity"`
	DetectedAt      string  `json:"detected_at,omitempty"`
	SourceIP        string  `json:"source_ip,omitempty"`
	URL             string  `json:"url,omitempty"`
	StatusCode      string  `json:"status_code,omitempty"`
	Preview         bool    `json:"preview,omitempty"`
}

// AnalysisOutput is the headline view of one analysis
type AnalysisOutput struct {
	Type          string `json:"type"` // Always "analysis"
	SchemaVersion int    `json:"schemaVersion"`
	dashboard.Overview
}

// LogOutput is one parsed log entry
type LogOutput struct {
	Type          string `json:"type"` // Always "log"
	SchemaVersion int    `json:"schemaVersion"`
	AnalysisID    int    `json:"analysis_id"`
	domain.LogEntry
	StatusClass string `json:"status_class"`
}

// PageOutput describes the page of logs just emitted
type PageOutput struct {
	Type          string `json:"type"` // Always "page"
	SchemaVersion int    `json:"schemaVersion"`
	AnalysisID    int    `json:"analysis_id"`
	Search        string `json:"search,omitempty"`
	Page          int    `json:"page"`
	TotalPages    int    `json:"total_pages"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	Total         int    `json:"total"`
	Footer        string `json:"footer,omitempty"`
}

// SummaryOutput aggregates several analyses
type SummaryOutput struct {
	Type          string                   `json:"type"` // Always "summary"
	SchemaVersion int                      `json:"schemaVersion"`
	Analyses      int                      `json:"analyses"`
	Failed        int                      `json:"failed"`
	TotalEntries  int                      `json:"total_entries"`
	AnomalyCount  int                      `json:"anomaly_count"`
	HighPriority  int                      `json:"high_priority"`
	Severity      dashboard.SeverityCounts `json:"severity"`
}

// WarningOutput represents a warning message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// NewAnomalyOutput converts an anomaly to its record form.
func NewAnomalyOutput(analysisID int, a domain.Anomaly, preview bool) *AnomalyOutput {
	return &AnomalyOutput{
		Type:            "anomaly",
		SchemaVersion:   SchemaVersion,
		AnalysisID:      analysisID,
		ID:              a.ID,
		AnomalyType:     a.AnomalyType,
		Description:     a.Description,
		ConfidenceScore: a.ConfidenceScore,
		Severity:        string(a.Severity),
		DetectedAt:      a.DetectedAt,
		SourceIP:        a.LogEntry.SourceIP,
		URL:             a.LogEntry.URL,
		StatusCode:      a.LogEntry.StatusCode,
		Preview:         preview,
	}
}

// NewSummaryOutput aggregates overviews; failed counts ids that could not be loaded.
func NewSummaryOutput(overviews []dashboard.Overview, failed int) *SummaryOutput {
	out := &SummaryOutput{
		Type:          "summary",
		SchemaVersion: SchemaVersion,
		Analyses:      len(overviews),
		Failed:        failed,
	}
	for _, o := range overviews {
		out.TotalEntries += o.TotalEntries
		out.AnomalyCount += o.AnomalyCount
		out.Severity.Critical += o.Severity.Critical
		out.Severity.High += o.Severity.High
		out.Severity.Medium += o.Severity.Medium
		out.Severity.Low += o.Severity.Low
		out.Severity.Other += o.Severity.Other
	}
	out.HighPriority = out.Severity.HighPriority()
	return out
}

// WriteLogin outputs a login result
func (w *NDJSONWriter) WriteLogin(resp *domain.LoginResponse) error {
	return w.encoder.Encode(&LoginOutput{
		Type:          "login",
		SchemaVersion: SchemaVersion,
		Status:        resp.Status,
		Success:       resp.Succeeded(),
		Error:         resp.Error,
	})
}

// WriteUpload outputs an upload acknowledgement
func (w *NDJSONWriter) WriteUpload(file string, resp *domain.UploadResponse) error {
	return w.encoder.Encode(&UploadOutput{
		Type:          "upload",
		SchemaVersion: SchemaVersion,
		File:          file,
		Status:        resp.Status,
		AnalysisID:    resp.AnalysisID,
		TotalEntries:  resp.TotalEntries,
		AnomalyCount:  resp.AnomalyCount,
	})
}

// WriteAnomaly outputs one anomaly
func (w *NDJSONWriter) WriteAnomaly(analysisID int, a domain.Anomaly, preview bool) error {
	return w.encoder.Encode(NewAnomalyOutput(analysisID, a, preview))
}

// WriteAnalysis outputs an analysis overview
func (w *NDJSONWriter) WriteAnalysis(o dashboard.Overview) error {
	return w.encoder.Encode(&AnalysisOutput{
		Type:          "analysis",
		SchemaVersion: SchemaVersion,
		Overview:      o,
	})
}

// WriteLog outputs a single log entry
func (w *NDJSONWriter) WriteLog(analysisID int, entry domain.LogEntry) error {
	return w.encoder.Encode(&LogOutput{
		Type:          "log",
		SchemaVersion: SchemaVersion,
		AnalysisID:    analysisID,
		LogEntry:      entry,
		StatusClass:   logtable.ClassifyStatus(entry.StatusCode).String(),
	})
}

// WritePage outputs the page marker that follows a run of log records
func (w *NDJSONWriter) WritePage(analysisID int, search string, p logtable.Page) error {
	return w.encoder.Encode(&PageOutput{
		Type:          "page",
		SchemaVersion: SchemaVersion,
		AnalysisID:    analysisID,
		Search:        search,
		Page:          p.Number,
		TotalPages:    p.TotalPages,
		Start:         p.Start,
		End:           p.End,
		Total:         p.Total,
		Footer:        p.Footer(),
	})
}

// WriteSummary outputs an aggregate summary
func (w *NDJSONWriter) WriteSummary(s *SummaryOutput) error {
	s.Type = "summary"
	s.SchemaVersion = SchemaVersion
	return w.encoder.Encode(s)
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	err := domain.NewErrorOutput(code, message)
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	err.SchemaVersion = SchemaVersion
	return w.encoder.Encode(err)
}

// WriteWarning outputs a warning message
func (w *NDJSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(&WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteRaw outputs raw JSON data
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encoder.Encode(v)
}
