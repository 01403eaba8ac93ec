package domain

// LogEntry is one parsed log line as delivered by the analysis backend.
// Optional string fields are empty when the backend omitted them.
type LogEntry struct {
	ID            int    `json:"id"`
	Timestamp     string `json:"timestamp,omitempty"`
	SourceIP      string `json:"source_ip,omitempty"`
	DestinationIP string `json:"destination_ip,omitempty"`
	URL           string `json:"url,omitempty"`
	Action        string `json:"action,omitempty"`
	StatusCode    string `json:"status_code,omitempty"` // kept as text for prefix classification
	BytesSent     *int64 `json:"bytes_sent,omitempty"`
	UserAgent     string `json:"user_agent,omitempty"`
	RawLog        string `json:"raw_log,omitempty"`
}

// HasSearchableFields reports whether any of the fields used by log search are present.
func (e *LogEntry) HasSearchableFields() bool {
	return e.SourceIP != "" || e.URL != "" || e.StatusCode != ""
}

// Bytes returns the bytes sent and whether the backend supplied a non-zero value.
func (e *LogEntry) Bytes() (int64, bool) {
	if e.BytesSent == nil || *e.BytesSent == 0 {
		return 0, false
	}
	return *e.BytesSent, true
}
