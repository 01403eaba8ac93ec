package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vburojevic/loglens/internal/chart"
	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/logtable"
	"github.com/vburojevic/loglens/internal/output"
)

// ResultMsg carries the outcome of one analysis fetch
type ResultMsg struct {
	Ticket dashboard.Ticket
	Result *domain.AnalysisResult
	Err    error
}

// BackMsg asks the parent to leave the dashboard
type BackMsg struct{}

// DashboardModel renders one analysis across the four tabs
type DashboardModel struct {
	ctx       context.Context
	fetcher   dashboard.Fetcher
	dash      *dashboard.Dashboard
	table     *logtable.Table
	viewport  viewport.Model
	textinput textinput.Model
	spinner   spinner.Model
	searching bool
	width     int
	height    int
	ready     bool
}

// NewDashboard creates an idle dashboard model. Call Open to load an analysis.
func NewDashboard(ctx context.Context, f dashboard.Fetcher) DashboardModel {
	ti := textinput.New()
	ti.Placeholder = "Search by IP, URL, or status code..."
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return DashboardModel{
		ctx:       ctx,
		fetcher:   f,
		dash:      dashboard.New(),
		textinput: ti,
		spinner:   sp,
	}
}

// Open shows analysis id. No fetch is issued when id is already displayed.
func (m *DashboardModel) Open(id int) tea.Cmd {
	t, ok := m.dash.Request(id)
	if !ok {
		return nil
	}
	m.resetTable(nil)
	return tea.Batch(fetchCmd(m.ctx, m.fetcher, t), m.spinner.Tick)
}

// Reload re-fetches the current analysis.
func (m *DashboardModel) Reload() tea.Cmd {
	t, ok := m.dash.Reload()
	if !ok {
		return nil
	}
	return tea.Batch(fetchCmd(m.ctx, m.fetcher, t), m.spinner.Tick)
}

// SetTab selects the initial view.
func (m *DashboardModel) SetTab(t dashboard.Tab) {
	m.dash.SetTab(t)
	m.refresh()
}

// State exposes the fetch lifecycle state.
func (m DashboardModel) State() dashboard.State { return m.dash.State() }

// Tab returns the active view.
func (m DashboardModel) Tab() dashboard.Tab { return m.dash.Tab() }

// LogPage returns the current page of the logs tab.
func (m DashboardModel) LogPage() logtable.Page {
	if m.table == nil {
		return logtable.Paginate(nil, 1)
	}
	return m.table.Page()
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func fetchCmd(ctx context.Context, f dashboard.Fetcher, t dashboard.Ticket) tea.Cmd {
	return func() tea.Msg {
		res, err := f.GetAnalysis(ctx, t.ID)
		return ResultMsg{Ticket: t, Result: res, Err: err}
	}
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case ResultMsg:
		if m.dash.Resolve(msg.Ticket, msg.Result, msg.Err) {
			if ready, ok := m.dash.State().(dashboard.Ready); ok {
				m.resetTable(ready.Result.LogEntries)
			}
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		if _, ok := m.dash.State().(dashboard.Loading); ok {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vh := max(m.height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(m.width, vh)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vh
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.textinput.Blur()
			case "enter":
				m.searching = false
				m.textinput.Blur()
			default:
				m.textinput, cmd = m.textinput.Update(msg)
				cmds = append(cmds, cmd)
				// every keystroke re-filters and returns to page 1
				if m.table != nil {
					m.table.SetSearch(m.textinput.Value())
				}
				m.refresh()
			}
			return m, tea.Batch(cmds...)
		}

		switch m.dash.State().(type) {
		case dashboard.Failed:
			switch msg.String() {
			case "r":
				return m, m.Reload()
			case "b", "esc":
				return m, func() tea.Msg { return BackMsg{} }
			}
			return m, nil
		case dashboard.Ready:
		default:
			return m, nil
		}

		switch msg.String() {
		case "tab", "right", "l":
			m.dash.NextTab()
			m.refresh()
		case "shift+tab", "left", "h":
			m.dash.PrevTab()
			m.refresh()
		case "1", "2", "3", "4":
			m.dash.SetTab(dashboard.Tabs[int(msg.String()[0]-'1')])
			m.refresh()
		case "r":
			return m, m.Reload()
		case "b":
			return m, func() tea.Msg { return BackMsg{} }
		case "/":
			if m.dash.Tab() == dashboard.TabLogs {
				m.searching = true
				return m, m.textinput.Focus()
			}
		case "esc":
			if m.dash.Tab() == dashboard.TabLogs && m.textinput.Value() != "" {
				m.textinput.SetValue("")
				m.table.SetSearch("")
				m.refresh()
			}
		case "n", "]":
			if m.dash.Tab() == dashboard.TabLogs {
				m.table.Next()
				m.refresh()
			}
		case "p", "[":
			if m.dash.Tab() == dashboard.TabLogs {
				m.table.Prev()
				m.refresh()
			}
		case "g", "home":
			if m.dash.Tab() == dashboard.TabLogs {
				m.table.First()
				m.refresh()
			}
			m.viewport.GotoTop()
		case "G", "end":
			if m.dash.Tab() == dashboard.TabLogs {
				m.table.Last()
				m.refresh()
			}
			m.viewport.GotoBottom()
		case "j", "down":
			m.viewport.LineDown(1)
		case "k", "up":
			m.viewport.LineUp(1)
		case "ctrl+d", "pgdown":
			m.viewport.HalfViewDown()
		case "ctrl+u", "pgup":
			m.viewport.HalfViewUp()
		}
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *DashboardModel) resetTable(logs []domain.LogEntry) {
	m.table = logtable.New(logs)
	m.textinput.SetValue("")
	m.searching = false
	m.textinput.Blur()
}

func (m *DashboardModel) refresh() {
	if !m.ready {
		return
	}
	ready, ok := m.dash.State().(dashboard.Ready)
	if !ok {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.renderTab(ready))
	m.viewport.GotoTop()
}

const (
	headerHeight = 4
	footerHeight = 2
)

// View renders the UI
func (m DashboardModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	switch s := m.dash.State().(type) {
	case dashboard.Loading:
		return m.fullScreen(m.spinner.View() + " Loading analysis results...")
	case dashboard.Failed:
		body := output.Styles.Alert.Render(s.Message) + "\n\n" +
			output.Styles.Help.Render("r:retry b:back q:quit")
		return m.fullScreen(body)
	case dashboard.Ready:
		return m.renderHeader(s) + "\n" + m.viewport.View() + "\n" + m.renderFooter()
	default:
		return m.fullScreen(output.Styles.Muted.Render("No analysis selected."))
	}
}

func (m DashboardModel) fullScreen(body string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m DashboardModel) renderHeader(r dashboard.Ready) string {
	a := r.Result.Analysis
	title := output.Styles.Title.Render(fmt.Sprintf("Analysis Results: %s", a.Filename))
	meta := output.Styles.Muted.Render(fmt.Sprintf("#%d uploaded %s", a.ID, formatUploadTime(a)))

	tabs := make([]string, 0, len(dashboard.Tabs))
	for _, t := range dashboard.Tabs {
		style := output.Styles.InactiveTab
		if t == m.dash.Tab() {
			style = output.Styles.ActiveTab
		}
		tabs = append(tabs, style.Render(t.Title()))
	}
	return title + " " + meta + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m DashboardModel) renderFooter() string {
	if m.searching {
		return m.textinput.View()
	}
	help := "q:quit tab/1-4:switch view r:reload b:back j/k:scroll"
	if m.dash.Tab() == dashboard.TabLogs {
		help = "q:quit /:search n/p:page g/G:first/last esc:clear tab:switch view"
	}
	return output.Styles.Help.Width(m.width).Render(help)
}

func (m DashboardModel) renderTab(r dashboard.Ready) string {
	switch m.dash.Tab() {
	case dashboard.TabAnomalies:
		return renderAnomalies(r.Result.Anomalies, m.width)
	case dashboard.TabTimeline:
		return renderTimeline(r.Result, m.width)
	case dashboard.TabLogs:
		return renderLogs(m.table.Page(), m.table.Search(), m.table.Len())
	default:
		return renderSummary(dashboard.Summarize(r.Result))
	}
}

func formatUploadTime(a domain.Analysis) string {
	if t, ok := a.UploadedAt(); ok {
		return t.Local().Format("2006-01-02 15:04:05")
	}
	return a.UploadTime
}

func renderSummary(o dashboard.Overview) string {
	card := func(label, value string) string {
		return output.Styles.Card.Render(output.Styles.Label.Render(label) + "\n" + output.Styles.Value.Render(value))
	}
	hp := fmt.Sprintf("%d", o.HighPriority)
	if o.HighPriority > 0 {
		hp = output.Styles.Danger.Render(hp)
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Log Entries", logtable.FormatCount(int64(o.TotalEntries))),
		card("Anomalies Detected", fmt.Sprintf("%d", o.AnomalyCount)),
		card("High Priority", hp),
		card("Status", output.CompletionText(o.Completed)),
	)

	var b strings.Builder
	b.WriteString(cards + "\n\n")
	b.WriteString(output.Styles.Header.Render("Severity Breakdown") + "\n")
	for _, s := range domain.Severities {
		fmt.Fprintf(&b, "%s %d\n", output.SeverityBadge(s), o.Severity.Get(s))
	}
	if o.Severity.Other > 0 {
		fmt.Fprintf(&b, "%s %d\n", output.Styles.Unknown.Render("OTHER"), o.Severity.Other)
	}
	if o.Summary != "" {
		b.WriteString("\n" + output.Styles.Header.Render("Analysis Summary") + "\n")
		b.WriteString(o.Summary + "\n")
	}
	return b.String()
}

func renderAnomalies(anomalies []domain.Anomaly, width int) string {
	if len(anomalies) == 0 {
		return output.Styles.Muted.Render("No anomalies detected.")
	}
	wrap := lipgloss.NewStyle().Width(max(width-4, 20))
	var b strings.Builder
	for i, a := range anomalies {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			output.SeverityBadge(a.Severity),
			output.Styles.Value.Render(a.AnomalyType),
			output.Styles.Muted.Render(fmt.Sprintf("%.0f%% confidence", a.ConfidenceScore*100)))
		b.WriteString(wrap.Render(a.Description) + "\n")
		if e := a.LogEntry; e.HasSearchableFields() {
			fmt.Fprintf(&b, "%s %s %s\n",
				output.Styles.SourceIP.Render(orDash(e.SourceIP)),
				logtable.TruncateURL(orDash(e.URL)),
				output.StatusCodeStyle(e.StatusCode).Render(orDash(e.StatusCode)))
		}
	}
	return b.String()
}

func renderTimeline(r *domain.AnalysisResult, width int) string {
	return output.Styles.Header.Render("Activity Timeline") + "\n" +
		chart.Render(r.Timeline, chart.Options{Width: width, BarStyle: output.Styles.Bar})
}

// widths of the fixed log columns; URL takes the truncated width
var logColumnWidths = []int{20, 16, logtable.MaxURLWidth + 3, 8, 6, 12}

func renderLogs(p logtable.Page, search string, all int) string {
	var b strings.Builder
	if search != "" {
		b.WriteString(output.Styles.Label.Render("Search: ") + fmt.Sprintf("%q", search) +
			output.Styles.Muted.Render(fmt.Sprintf(" (%d of %d entries)", p.Total, all)) + "\n")
	}
	if p.Empty() {
		b.WriteString(output.Styles.Muted.Render(logtable.EmptyMessage))
		return b.String()
	}

	header := make([]string, len(logtable.Columns))
	for i, c := range logtable.Columns {
		header[i] = pad(c, logColumnWidths[i])
	}
	b.WriteString(output.Styles.Label.Bold(true).Render(strings.Join(header, " ")) + "\n")

	for _, e := range p.Entries {
		cells := logtable.Row(e)
		for i := range cells {
			cells[i] = pad(cells[i], logColumnWidths[i])
		}
		cells[1] = output.Styles.SourceIP.Render(cells[1])
		cells[4] = output.StatusCodeStyle(e.StatusCode).Render(cells[4])
		b.WriteString(strings.Join(cells, " ") + "\n")
	}

	b.WriteString("\n" + output.Styles.Muted.Render(p.Footer()))
	if p.ShowPagination() {
		b.WriteString("  " + output.Styles.Label.Render("Page "+p.Indicator()))
	}
	return b.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return logtable.Placeholder
	}
	return s
}
