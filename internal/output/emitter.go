package output

import (
	"io"

	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/logtable"
)

// Emitter writes every record kind in either NDJSON or text form, so
// commands do not branch on the output format themselves.
type Emitter struct {
	json *NDJSONWriter
	text *TextWriter
}

// NewEmitter returns an emitter for format ("ndjson" or "text").
func NewEmitter(w io.Writer, format string) *Emitter {
	if format == "text" {
		return &Emitter{text: NewTextWriter(w)}
	}
	return &Emitter{json: NewNDJSONWriter(w)}
}

// Text reports whether the emitter writes human-readable text.
func (e *Emitter) Text() bool { return e.text != nil }

// Login writes the outcome of a login attempt.
func (e *Emitter) Login(resp *domain.LoginResponse) error {
	if e.text != nil {
		return e.text.WriteLogin(resp)
	}
	return e.json.WriteLogin(resp)
}

// Upload writes the acknowledgement of an uploaded file.
func (e *Emitter) Upload(file string, resp *domain.UploadResponse) error {
	if e.text != nil {
		return e.text.WriteUpload(file, resp)
	}
	return e.json.WriteUpload(file, resp)
}

// Anomalies writes a table in text mode or one record per anomaly otherwise.
func (e *Emitter) Anomalies(analysisID int, anomalies []domain.Anomaly, preview bool) error {
	if e.text != nil {
		return e.text.WriteAnomalies(anomalies)
	}
	for _, a := range anomalies {
		if err := e.json.WriteAnomaly(analysisID, a, preview); err != nil {
			return err
		}
	}
	return nil
}

// Analysis writes an analysis overview.
func (e *Emitter) Analysis(o dashboard.Overview) error {
	if e.text != nil {
		return e.text.WriteAnalysis(o)
	}
	return e.json.WriteAnalysis(o)
}

// Logs writes a page of logs; NDJSON mode ends the run with a page record.
func (e *Emitter) Logs(analysisID int, search string, p logtable.Page) error {
	if e.text != nil {
		return e.text.WriteLogs(p)
	}
	for _, entry := range p.Entries {
		if err := e.json.WriteLog(analysisID, entry); err != nil {
			return err
		}
	}
	return e.json.WritePage(analysisID, search, p)
}

// Summary writes the totals across several analyses.
func (e *Emitter) Summary(s *SummaryOutput) error {
	if e.text != nil {
		return e.text.WriteSummary(s)
	}
	return e.json.WriteSummary(s)
}

// Error writes a failure with its code and optional hint.
func (e *Emitter) Error(code, msg string, hint ...string) error {
	if e.text != nil {
		return e.text.WriteError(code, msg, hint...)
	}
	return e.json.WriteError(code, msg, hint...)
}

// Warning writes a non-fatal notice.
func (e *Emitter) Warning(msg string) error {
	if e.text != nil {
		return e.text.WriteWarning(msg)
	}
	return e.json.WriteWarning(msg)
}
