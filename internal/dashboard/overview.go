package dashboard

import "github.com/vburojevic/loglens/internal/domain"

// Overview is the headline data of a loaded analysis
type Overview struct {
	ID           int            `json:"id"`
	Filename     string         `json:"filename"`
	UploadTime   string         `json:"upload_time"`
	TotalEntries int            `json:"total_entries"`
	AnomalyCount int            `json:"anomaly_count"`
	HighPriority int            `json:"high_priority"`
	Status       string         `json:"status"`
	Completed    bool           `json:"completed"`
	Summary      string         `json:"summary"`
	Severity     SeverityCounts `json:"severity"`
}

// Summarize derives the overview of result.
func Summarize(result *domain.AnalysisResult) Overview {
	counts := CountSeverities(result.Anomalies)
	a := result.Analysis
	return Overview{
		ID:           a.ID,
		Filename:     a.Filename,
		UploadTime:   a.UploadTime,
		TotalEntries: a.TotalEntries,
		AnomalyCount: a.AnomalyCount,
		HighPriority: counts.HighPriority(),
		Status:       a.Status,
		Completed:    a.Completed(),
		Summary:      a.Summary,
		Severity:     counts,
	}
}

// StatusMark is the compact status indicator: a check mark once processing
// completed, an ellipsis otherwise.
func (o Overview) StatusMark() string {
	if o.Completed {
		return "✓"
	}
	return "..."
}
