package domain

import "strings"

// Severity is the ordinal priority of an anomaly
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists the known severities from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Priority returns the priority of a severity (higher = more severe).
// Unrecognized severities rank below low.
func (s Severity) Priority() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Known reports whether s is one of the four recognized severities.
func (s Severity) Known() bool {
	return s.Priority() > 0
}

// ParseSeverity converts a backend severity label to a Severity.
// Matching is case-insensitive; unknown labels are returned verbatim.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	case "low":
		return SeverityLow
	default:
		return Severity(s)
	}
}

// UnmarshalText lets severities decode from any letter case.
func (s *Severity) UnmarshalText(b []byte) error {
	*s = ParseSeverity(string(b))
	return nil
}

// Anomaly is one irregularity detected by the backend
type Anomaly struct {
	ID              int      `json:"id,omitempty"`
	AnalysisID      int      `json:"analysis_id,omitempty"`
	LogEntryID      int      `json:"log_entry_id,omitempty"`
	AnomalyType     string   `json:"anomaly_type"`
	Description     string   `json:"description"`
	ConfidenceScore float64  `json:"confidence_score"`
	Severity        Severity `json:"severity"`
	DetectedAt      string   `json:"detected_at,omitempty"`
	LogEntry        LogEntry `json:"log_entry"`
}

// RawAnomaly is an anomaly as returned on the upload path, where any field may be missing.
type RawAnomaly struct {
	ID              int       `json:"id,omitempty"`
	AnomalyType     *string   `json:"anomaly_type,omitempty"`
	Description     *string   `json:"description,omitempty"`
	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
	Severity        *string   `json:"severity,omitempty"`
	LogEntry        *LogEntry `json:"log_entry,omitempty"`
}
