package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/logtable"
)

// AnomalyColumns are the headers of the anomaly table
var AnomalyColumns = []string{"Severity", "Type", "Description", "Confidence", "Source IP", "URL"}

// TextWriter writes records as human-readable text and tables
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteLogin outputs a login result
func (w *TextWriter) WriteLogin(resp *domain.LoginResponse) error {
	var line string
	if resp.Succeeded() {
		line = Styles.Success.Render("Login successful") + "\n"
	} else {
		msg := resp.Error
		if msg == "" {
			msg = "Login failed"
		}
		line = Styles.Danger.Render("Login failed") + ": " + msg + "\n"
	}
	_, err := io.WriteString(w.w, line)
	return err
}

// WriteUpload outputs an upload acknowledgement
func (w *TextWriter) WriteUpload(file string, resp *domain.UploadResponse) error {
	line := Styles.Success.Render("Uploaded") + " " + file + "\n"
	id := "-"
	if resp.AnalysisID != 0 {
		id = strconv.Itoa(resp.AnalysisID)
	}
	line += Styles.Label.Render("Analysis ID: ") + Styles.Value.Render(id) + " | "
	line += Styles.Label.Render("Entries: ") + Styles.Value.Render(strconv.Itoa(resp.TotalEntries)) + " | "
	line += Styles.Label.Render("Anomalies: ") + Styles.Value.Render(strconv.Itoa(resp.AnomalyCount)) + "\n"
	_, err := io.WriteString(w.w, line)
	return err
}

// WriteAnomalies renders anomalies as a table
func (w *TextWriter) WriteAnomalies(anomalies []domain.Anomaly) error {
	if len(anomalies) == 0 {
		_, err := io.WriteString(w.w, Styles.Muted.Render("No anomalies detected.")+"\n")
		return err
	}
	rows := make([][]string, 0, len(anomalies))
	for _, a := range anomalies {
		rows = append(rows, AnomalyRow(a))
	}
	return renderTable(w.w, AnomalyColumns, rows)
}

// WriteAnalysis outputs an analysis overview
func (w *TextWriter) WriteAnalysis(o dashboard.Overview) error {
	var b strings.Builder
	b.WriteString(Styles.Header.Render(fmt.Sprintf("Analysis #%d %s", o.ID, o.Filename)) + "\n")
	b.WriteString(Styles.Label.Render("Uploaded: ") + o.UploadTime + "\n")
	b.WriteString(Styles.Label.Render("Total entries: ") + Styles.Value.Render(logtable.FormatCount(int64(o.TotalEntries))) + "\n")
	b.WriteString(Styles.Label.Render("Anomalies: ") + Styles.Value.Render(strconv.Itoa(o.AnomalyCount)) + "\n")
	hp := strconv.Itoa(o.HighPriority)
	if o.HighPriority > 0 {
		hp = Styles.Danger.Render(hp)
	}
	b.WriteString(Styles.Label.Render("High priority: ") + hp + "\n")
	b.WriteString(Styles.Label.Render("Status: ") + CompletionText(o.Completed) + "\n")
	b.WriteString(SeverityLine(o.Severity) + "\n")
	if o.Summary != "" {
		b.WriteString("\n" + o.Summary + "\n")
	}
	_, err := io.WriteString(w.w, b.String())
	return err
}

// WriteLogs renders one page of logs as a table followed by its footer
func (w *TextWriter) WriteLogs(p logtable.Page) error {
	if p.Empty() {
		_, err := io.WriteString(w.w, Styles.Muted.Render(logtable.EmptyMessage)+"\n")
		return err
	}
	rows := make([][]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		rows = append(rows, logtable.Row(e))
	}
	if err := renderTable(w.w, logtable.Columns, rows); err != nil {
		return err
	}
	line := Styles.Muted.Render(p.Footer())
	if p.ShowPagination() {
		line += "  " + Styles.Label.Render("page "+p.Indicator())
	}
	_, err := io.WriteString(w.w, line+"\n")
	return err
}

// WriteSummary outputs an aggregate summary
func (w *TextWriter) WriteSummary(s *SummaryOutput) error {
	line := "\n" + Styles.Header.Render("Summary") + "\n"
	line += Styles.Label.Render("Analyses: ") + Styles.Value.Render(strconv.Itoa(s.Analyses)) + " | "
	if s.Failed > 0 {
		line += Styles.Danger.Render("Failed: "+strconv.Itoa(s.Failed)) + " | "
	}
	line += Styles.Label.Render("Entries: ") + Styles.Value.Render(logtable.FormatCount(int64(s.TotalEntries))) + " | "
	line += Styles.Label.Render("Anomalies: ") + Styles.Value.Render(strconv.Itoa(s.AnomalyCount)) + "\n"
	line += SeverityLine(s.Severity) + "\n"
	_, err := io.WriteString(w.w, line)
	return err
}

// WriteError outputs a styled error
func (w *TextWriter) WriteError(code, message string, hint ...string) error {
	errorLabel := Styles.Danger.Render("Error")
	codeStr := Styles.Warning.Render("[" + code + "]")
	line := errorLabel + " " + codeStr + ": " + message + "\n"
	if len(hint) > 0 && hint[0] != "" {
		line += Styles.Muted.Render("Hint: "+hint[0]) + "\n"
	}
	_, err := io.WriteString(w.w, line)
	return err
}

// WriteWarning outputs a styled warning
func (w *TextWriter) WriteWarning(message string) error {
	_, err := io.WriteString(w.w, Styles.Warning.Render("Warning")+": "+message+"\n")
	return err
}

// SeverityLine renders the per-severity breakdown on one line.
func SeverityLine(c dashboard.SeverityCounts) string {
	parts := make([]string, 0, len(domain.Severities)+1)
	for _, s := range domain.Severities {
		parts = append(parts, SeverityStyle(s).Render(fmt.Sprintf("%s: %d", s, c.Get(s))))
	}
	if c.Other > 0 {
		parts = append(parts, Styles.Unknown.Render(fmt.Sprintf("other: %d", c.Other)))
	}
	return strings.Join(parts, " | ")
}

// AnomalyRow returns the display cells of a in AnomalyColumns order.
func AnomalyRow(a domain.Anomaly) []string {
	sev := strings.ToUpper(string(a.Severity))
	if sev == "" {
		sev = logtable.Placeholder
	}
	return []string{
		sev,
		a.AnomalyType,
		a.Description,
		fmt.Sprintf("%.0f%%", a.ConfidenceScore*100),
		orPlaceholder(a.LogEntry.SourceIP),
		orPlaceholder(logtable.TruncateURL(a.LogEntry.URL)),
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)
	for _, row := range rows {
		if err := table.Append(toAny(row)...); err != nil {
			return err
		}
	}
	return table.Render()
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func orPlaceholder(s string) string {
	if s == "" {
		return logtable.Placeholder
	}
	return s
}
