package api

import "github.com/vburojevic/loglens/internal/domain"

// Defaults applied to upload-preview anomalies the backend left incomplete.
const (
	DefaultAnomalyType     = "Unusual Activity"
	DefaultDescription     = "Anomaly detected based on defined heuristics."
	DefaultConfidenceScore = 0.5

	// PreviewHighThreshold is the confidence above which a preview anomaly is high severity.
	PreviewHighThreshold = 0.8
)

// PreviewSeverity derives the display severity used on the upload path.
// It is a fallback, not an authoritative classification.
func PreviewSeverity(confidence float64) domain.Severity {
	if confidence > PreviewHighThreshold {
		return domain.SeverityHigh
	}
	return domain.SeverityMedium
}

// NormalizePreview fills documented defaults into raw upload anomalies.
// Upstream severity is ignored on this path; it is recomputed from the
// confidence score. A zero score counts as missing.
func NormalizePreview(raw []domain.RawAnomaly) []domain.Anomaly {
	out := make([]domain.Anomaly, 0, len(raw))
	for _, r := range raw {
		a := domain.Anomaly{
			ID:              r.ID,
			AnomalyType:     DefaultAnomalyType,
			Description:     DefaultDescription,
			ConfidenceScore: DefaultConfidenceScore,
		}
		if r.AnomalyType != nil && *r.AnomalyType != "" {
			a.AnomalyType = *r.AnomalyType
		}
		if r.Description != nil && *r.Description != "" {
			a.Description = *r.Description
		}
		if r.ConfidenceScore != nil && *r.ConfidenceScore != 0 {
			a.ConfidenceScore = *r.ConfidenceScore
		}
		if r.LogEntry != nil {
			a.LogEntry = *r.LogEntry
			a.LogEntryID = r.LogEntry.ID
		}
		a.Severity = PreviewSeverity(a.ConfidenceScore)
		out = append(out, a)
	}
	return out
}
