// Package tui is the interactive terminal front end: an upload screen and
// the results dashboard, switched by a small parent model.
package tui

import (
	"context"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/upload"
)

// Screen identifies the visible screen
type Screen int

const (
	ScreenUpload Screen = iota
	ScreenDashboard
)

// Options configure the application model
type Options struct {
	// Uploader enables the upload screen; nil runs the dashboard alone.
	Uploader upload.Uploader
	Fetcher  dashboard.Fetcher
	Clock    clock.Clock
	// InitialPath pre-fills the upload file input.
	InitialPath string
	// AnalysisID opens the dashboard immediately when non-zero.
	AnalysisID int
	InitialTab dashboard.Tab
}

// Model switches between the upload screen and the dashboard
type Model struct {
	screen    Screen
	upload    UploadModel
	dashboard DashboardModel
	canUpload bool
	initCmd   tea.Cmd
}

// New creates the application model
func New(ctx context.Context, opts Options) Model {
	m := Model{
		dashboard: NewDashboard(ctx, opts.Fetcher),
		canUpload: opts.Uploader != nil,
	}
	if m.canUpload {
		m.upload = NewUpload(ctx, opts.Uploader, opts.Clock, opts.InitialPath)
		m.initCmd = m.upload.Init()
	}
	if opts.AnalysisID != 0 || !m.canUpload {
		m.screen = ScreenDashboard
		m.initCmd = m.dashboard.Open(opts.AnalysisID)
		m.dashboard.SetTab(opts.InitialTab)
	}
	return m
}

// Screen returns the visible screen.
func (m Model) Screen() Screen { return m.screen }

// Dashboard returns the dashboard sub-model.
func (m Model) Dashboard() DashboardModel { return m.dashboard }

// Upload returns the upload sub-model.
func (m Model) Upload() UploadModel { return m.upload }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.screen == ScreenDashboard && !m.dashboard.searching {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		// both screens track the size so switching never renders stale layout
		m.upload, _ = m.upload.Update(msg)
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case OpenAnalysisMsg:
		m.screen = ScreenDashboard
		return m, m.dashboard.Open(msg.ID)

	case BackMsg:
		if !m.canUpload {
			return m, tea.Quit
		}
		m.screen = ScreenUpload
		return m, m.upload.textinput.Focus()

	case ResultMsg:
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case UploadDoneMsg, TickMsg:
		m.upload, cmd = m.upload.Update(msg)
		return m, cmd
	}

	if m.screen == ScreenDashboard {
		m.dashboard, cmd = m.dashboard.Update(msg)
	} else if m.canUpload {
		m.upload, cmd = m.upload.Update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.screen == ScreenDashboard {
		return m.dashboard.View()
	}
	return m.upload.View()
}
