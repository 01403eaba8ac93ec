package dashboard

import "github.com/vburojevic/loglens/internal/domain"

// SeverityCounts is the per-severity breakdown of an anomaly sequence
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	// Other counts anomalies whose severity is not one of the four known values.
	Other int `json:"other,omitempty"`
}

// CountSeverities tallies anomalies by severity. It is recomputed from the
// given slice on every call; nothing is cached.
func CountSeverities(anomalies []domain.Anomaly) SeverityCounts {
	var c SeverityCounts
	for i := range anomalies {
		switch anomalies[i].Severity {
		case domain.SeverityCritical:
			c.Critical++
		case domain.SeverityHigh:
			c.High++
		case domain.SeverityMedium:
			c.Medium++
		case domain.SeverityLow:
			c.Low++
		default:
			c.Other++
		}
	}
	return c
}

// HighPriority is the number of critical and high anomalies.
func (c SeverityCounts) HighPriority() int {
	return c.Critical + c.High
}

// Get returns the count for one severity.
func (c SeverityCounts) Get(s domain.Severity) int {
	switch s {
	case domain.SeverityCritical:
		return c.Critical
	case domain.SeverityHigh:
		return c.High
	case domain.SeverityMedium:
		return c.Medium
	case domain.SeverityLow:
		return c.Low
	default:
		return c.Other
	}
}

// FilterBySeverity keeps anomalies at or above min, preserving order.
func FilterBySeverity(anomalies []domain.Anomaly, min domain.Severity) []domain.Anomaly {
	if !min.Known() {
		return anomalies
	}
	out := make([]domain.Anomaly, 0, len(anomalies))
	for _, a := range anomalies {
		if a.Severity.Priority() >= min.Priority() {
			out = append(out, a)
		}
	}
	return out
}
