package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/loglens/internal/api"
	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/domain"
)

type fakeFetcher struct {
	calls []int
	res   *domain.AnalysisResult
	err   error
}

func (f *fakeFetcher) GetAnalysis(_ context.Context, id int) (*domain.AnalysisResult, error) {
	f.calls = append(f.calls, id)
	return f.res, f.err
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleResult(id, logs int) *domain.AnalysisResult {
	res := &domain.AnalysisResult{
		Analysis: domain.Analysis{ID: id, Filename: "proxy.log", Status: "completed", TotalEntries: logs, AnomalyCount: 2},
		Anomalies: []domain.Anomaly{
			{ID: 1, AnomalyType: "Data Exfiltration", Severity: domain.SeverityCritical, ConfidenceScore: 0.95},
			{ID: 2, AnomalyType: "Port Scan", Severity: domain.SeverityLow, ConfidenceScore: 0.4},
		},
	}
	for i := 0; i < logs; i++ {
		status := "200"
		if i%10 == 0 {
			status = "503"
		}
		res.LogEntries = append(res.LogEntries, domain.LogEntry{
			ID:         i + 1,
			SourceIP:   fmt.Sprintf("10.0.0.%d", i%7),
			URL:        "/index.html",
			StatusCode: status,
		})
	}
	return res
}

func sizedDashboard(f dashboard.Fetcher) DashboardModel {
	m := NewDashboard(context.Background(), f)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func readyDashboard(t *testing.T, res *domain.AnalysisResult) DashboardModel {
	t.Helper()
	m := sizedDashboard(&fakeFetcher{res: res})
	require.NotNil(t, m.Open(res.Analysis.ID))
	ticket, ok := m.dash.Pending()
	require.True(t, ok)
	m, _ = m.Update(ResultMsg{Ticket: ticket, Result: res})
	require.IsType(t, dashboard.Ready{}, m.State())
	return m
}

func TestDashboardModel_LoadingView(t *testing.T) {
	m := sizedDashboard(&fakeFetcher{})
	require.NotNil(t, m.Open(3))
	assert.Equal(t, dashboard.Loading{ID: 3}, m.State())
	assert.Contains(t, m.View(), "Loading analysis results...")
}

func TestDashboardModel_FetchCmd(t *testing.T) {
	res := sampleResult(8, 1)
	f := &fakeFetcher{res: res}
	m := sizedDashboard(f)
	m.Open(8)
	ticket, ok := m.dash.Pending()
	require.True(t, ok)

	msg := fetchCmd(context.Background(), f, ticket)()
	rm, ok := msg.(ResultMsg)
	require.True(t, ok)
	assert.Same(t, res, rm.Result)
	assert.Equal(t, []int{8}, f.calls)
}

func TestDashboardModel_SameIDDoesNotRefetch(t *testing.T) {
	m := readyDashboard(t, sampleResult(4, 3))
	assert.Nil(t, m.Open(4))
	assert.IsType(t, dashboard.Ready{}, m.State())
}

func TestDashboardModel_StaleResultIgnored(t *testing.T) {
	m := sizedDashboard(&fakeFetcher{})
	m.Open(1)
	first, _ := m.dash.Pending()
	m.Open(2)

	m, _ = m.Update(ResultMsg{Ticket: first, Result: sampleResult(1, 1)})
	assert.Equal(t, dashboard.Loading{ID: 2}, m.State())
}

func TestDashboardModel_SummaryView(t *testing.T) {
	m := readyDashboard(t, sampleResult(12, 5))
	view := m.View()
	assert.Contains(t, view, "Analysis Results: proxy.log")
	assert.Contains(t, view, "High Priority")
	assert.Contains(t, view, "CRITICAL")
	assert.Contains(t, view, "✓")
}

func TestDashboardModel_TabNavigation(t *testing.T) {
	m := readyDashboard(t, sampleResult(1, 1))
	assert.Equal(t, dashboard.TabSummary, m.Tab())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, dashboard.TabAnomalies, m.Tab())
	assert.Contains(t, m.View(), "Data Exfiltration")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, dashboard.TabSummary, m.Tab())

	m, _ = m.Update(keyRunes("3"))
	assert.Equal(t, dashboard.TabTimeline, m.Tab())
	assert.Contains(t, m.View(), "No timeline data available.")

	m, _ = m.Update(keyRunes("4"))
	assert.Equal(t, dashboard.TabLogs, m.Tab())
	assert.Contains(t, m.View(), "All Logs")
}

func TestDashboardModel_LogPagination(t *testing.T) {
	m := readyDashboard(t, sampleResult(1, 120))
	m.SetTab(dashboard.TabLogs)

	assert.Equal(t, 1, m.LogPage().Number)
	m, _ = m.Update(keyRunes("n"))
	m, _ = m.Update(keyRunes("n"))
	page := m.LogPage()
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, "Showing 101-120 of 120", page.Footer())

	m, _ = m.Update(keyRunes("n"))
	assert.Equal(t, 3, m.LogPage().Number)

	m, _ = m.Update(keyRunes("p"))
	assert.Equal(t, 2, m.LogPage().Number)
}

func TestDashboardModel_LogFirstLastPage(t *testing.T) {
	m := readyDashboard(t, sampleResult(1, 120))
	m.SetTab(dashboard.TabLogs)

	m, _ = m.Update(keyRunes("G"))
	assert.Equal(t, 3, m.LogPage().Number)
	assert.Contains(t, m.View(), "Showing 101-120 of 120")

	m, _ = m.Update(keyRunes("g"))
	assert.Equal(t, 1, m.LogPage().Number)

	// g/G only scroll on the other tabs
	m.SetTab(dashboard.TabSummary)
	m, _ = m.Update(keyRunes("G"))
	assert.Equal(t, 1, m.LogPage().Number)
}

func TestDashboardModel_SearchResetsPage(t *testing.T) {
	m := readyDashboard(t, sampleResult(1, 120))
	m.SetTab(dashboard.TabLogs)
	m, _ = m.Update(keyRunes("n"))
	require.Equal(t, 2, m.LogPage().Number)

	m, _ = m.Update(keyRunes("/"))
	require.True(t, m.searching)
	m, _ = m.Update(keyRunes("503"))

	page := m.LogPage()
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 12, page.Total)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)
	assert.Contains(t, m.View(), "(12 of 120 entries)")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 120, m.LogPage().Total)
}

func TestDashboardModel_SearchNoMatches(t *testing.T) {
	m := readyDashboard(t, sampleResult(1, 10))
	m.SetTab(dashboard.TabLogs)
	m, _ = m.Update(keyRunes("/"))
	m, _ = m.Update(keyRunes("zzz"))
	assert.True(t, m.LogPage().Empty())
	assert.Contains(t, m.View(), "No logs found matching your search.")
}

func TestDashboardModel_FailedView(t *testing.T) {
	m := sizedDashboard(&fakeFetcher{})
	m.Open(99)
	ticket, _ := m.dash.Pending()
	m, _ = m.Update(ResultMsg{Ticket: ticket, Err: &api.Error{StatusCode: 404, Message: "Analysis not found", Structured: true}})

	assert.Equal(t, dashboard.Failed{ID: 99, Message: "Analysis not found"}, m.State())
	assert.Contains(t, m.View(), "Analysis not found")

	var cmd tea.Cmd
	m, cmd = m.Update(keyRunes("b"))
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
}

func TestDashboardModel_GenericFailure(t *testing.T) {
	m := sizedDashboard(&fakeFetcher{})
	m.Open(5)
	ticket, _ := m.dash.Pending()
	m, _ = m.Update(ResultMsg{Ticket: ticket, Err: &api.Error{Message: "analysis request failed: dial tcp"}})
	assert.Contains(t, m.View(), dashboard.FailedMessage)
}

func TestDashboardModel_ReloadRefetches(t *testing.T) {
	m := readyDashboard(t, sampleResult(6, 2))
	var cmd tea.Cmd
	m, cmd = m.Update(keyRunes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, dashboard.Loading{ID: 6}, m.State())
}
