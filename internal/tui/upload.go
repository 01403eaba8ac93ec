package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/output"
	"github.com/vburojevic/loglens/internal/upload"
)

// UploadDoneMsg carries the outcome of one upload request
type UploadDoneMsg struct {
	Response *domain.UploadResponse
	Err      error
}

// OpenAnalysisMsg asks the parent to show the dashboard for ID
type OpenAnalysisMsg struct {
	ID int
}

// TickMsg refreshes the elapsed upload time
type TickMsg time.Time

// UploadModel is the file selection and upload screen
type UploadModel struct {
	ctx        context.Context
	uploader   upload.Uploader
	workflow   *upload.Workflow
	textinput  textinput.Model
	spinner    spinner.Model
	clock      clock.Clock
	started    time.Time
	alert      string
	done       bool
	analysisID int
	width      int
}

// NewUpload creates the upload screen. initialPath pre-fills the file input.
func NewUpload(ctx context.Context, u upload.Uploader, clk clock.Clock, initialPath string) UploadModel {
	ti := textinput.New()
	ti.Placeholder = "path/to/access.log"
	ti.CharLimit = 4096
	ti.Width = 60
	ti.SetValue(initialPath)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if clk == nil {
		clk = clock.New()
	}
	return UploadModel{
		ctx:       ctx,
		uploader:  u,
		workflow:  upload.New(),
		textinput: ti,
		spinner:   sp,
		clock:     clk,
	}
}

// Workflow exposes the underlying upload state machine.
func (m UploadModel) Workflow() *upload.Workflow { return m.workflow }

// Alert returns the message of the last failed upload or validation error.
func (m UploadModel) Alert() string { return m.alert }

// Done reports whether the last upload succeeded.
func (m UploadModel) Done() bool { return m.done }

// AnalysisID returns the identifier of the last successful upload, or 0.
func (m UploadModel) AnalysisID() int { return m.analysisID }

// Elapsed is the time spent on the in-flight upload.
func (m UploadModel) Elapsed() time.Duration {
	if !m.workflow.Busy() {
		return 0
	}
	return m.clock.Since(m.started).Truncate(time.Second)
}

func (m UploadModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m UploadModel) uploadCmd(f upload.File) tea.Cmd {
	return func() tea.Msg {
		resp, err := upload.Send(m.ctx, m.uploader, f)
		return UploadDoneMsg{Response: resp, Err: err}
	}
}

func (m UploadModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages
func (m UploadModel) Update(msg tea.Msg) (UploadModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textinput.Width = max(m.width-12, 20)
		return m, nil

	case UploadDoneMsg:
		var applied bool
		if msg.Err != nil {
			applied = m.workflow.Fail(msg.Err)
		} else {
			applied = m.workflow.Complete(msg.Response)
		}
		if !applied {
			return m, nil
		}
		switch st := m.workflow.State().(type) {
		case upload.Failed:
			m.alert = upload.FailureAlert + "\n" + st.Message
		case upload.Succeeded:
			m.done = true
			m.analysisID = st.AnalysisID
		}
		m.workflow.Settle()
		m.textinput.SetValue("")
		return m, m.textinput.Focus()

	case TickMsg:
		if m.workflow.Busy() {
			return m, m.tick()
		}
		return m, nil

	case spinner.TickMsg:
		if m.workflow.Busy() {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.workflow.Busy() {
			// submit and selection are locked until the upload finishes
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m.submit()
		case "ctrl+o":
			if m.analysisID != 0 {
				id := m.analysisID
				return m, func() tea.Msg { return OpenAnalysisMsg{ID: id} }
			}
			return m, nil
		}
		m.textinput, cmd = m.textinput.Update(msg)
		return m, cmd
	}

	m.textinput, cmd = m.textinput.Update(msg)
	return m, cmd
}

func (m UploadModel) submit() (UploadModel, tea.Cmd) {
	path := strings.TrimSpace(m.textinput.Value())
	if path != "" {
		f, err := upload.FileFromPath(path)
		if err != nil {
			m.alert = fmt.Sprintf("Cannot read %s: %v", path, err)
			return m, nil
		}
		m.workflow.Select(f)
	}

	f, err := m.workflow.Submit()
	if err != nil {
		m.alert = err.Error()
		return m, nil
	}
	m.alert = ""
	m.done = false
	m.analysisID = 0
	m.started = m.clock.Now()
	m.textinput.Blur()
	return m, tea.Batch(m.uploadCmd(f), m.spinner.Tick, m.tick())
}

// View renders the UI
func (m UploadModel) View() string {
	var b strings.Builder
	b.WriteString(output.Styles.Title.Render("Upload Log File") + "\n\n")

	if st, ok := m.workflow.State().(upload.Uploading); ok {
		fmt.Fprintf(&b, "%s Processing %s... %s\n", m.spinner.View(), st.File.Name,
			output.Styles.Muted.Render(m.Elapsed().String()))
		return b.String()
	}

	b.WriteString(output.Styles.Label.Render("File: ") + m.textinput.View() + "\n")
	b.WriteString(output.Styles.Muted.Render("Upload a Zscaler web proxy log file (.txt, .log, .csv)") + "\n")

	if m.alert != "" {
		b.WriteString("\n" + output.Styles.Alert.Render(m.alert) + "\n")
	}

	if m.done {
		anomalies := m.workflow.Anomalies()
		b.WriteString("\n" + output.Styles.Header.Render(fmt.Sprintf("Detected Anomalies (%d)", len(anomalies))) + "\n")
		b.WriteString(renderPreview(anomalies))
		status := "Upload complete."
		if m.analysisID != 0 {
			status = fmt.Sprintf("Analysis #%d ready.", m.analysisID)
		}
		b.WriteString("\n" + output.Styles.Success.Render(status) + "\n")
	}

	help := "enter:upload ctrl+c:quit"
	if m.analysisID != 0 {
		help = "enter:upload ctrl+o:view full results ctrl+c:quit"
	}
	b.WriteString("\n" + output.Styles.Help.Render(help))
	return b.String()
}

func renderPreview(anomalies []domain.Anomaly) string {
	if len(anomalies) == 0 {
		return output.Styles.Muted.Render("No anomalies detected.") + "\n"
	}
	var b strings.Builder
	for _, a := range anomalies {
		fmt.Fprintf(&b, "%s %s %s\n  %s\n",
			output.SeverityBadge(a.Severity),
			output.Styles.Value.Render(a.AnomalyType),
			output.Styles.Muted.Render(fmt.Sprintf("%.0f%% confidence", a.ConfidenceScore*100)),
			a.Description)
	}
	return b.String()
}
