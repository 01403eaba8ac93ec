package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/logtable"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	// Severity styles
	Critical lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style
	Unknown  lipgloss.Style

	// Status code styles
	StatusSuccess     lipgloss.Style
	StatusClientError lipgloss.Style
	StatusServerError lipgloss.Style
	StatusNeutral     lipgloss.Style

	// Component styles
	Timestamp lipgloss.Style
	SourceIP  lipgloss.Style
	Muted     lipgloss.Style

	// Summary styles
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	// TUI styles
	Title       lipgloss.Style
	StatusBar   lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Card        lipgloss.Style
	Alert       lipgloss.Style
	Help        lipgloss.Style
	Bar         lipgloss.Style
}{
	// Severities
	Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red bold
	High:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true), // Orange bold
	Medium:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),            // Yellow
	Low:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),             // Blue
	Unknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),            // Gray

	// Status codes
	StatusSuccess:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
	StatusClientError: lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // Yellow
	StatusServerError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // Red
	StatusNeutral:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")), // Light gray

	// Components
	Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	SourceIP:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

	// Summary
	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("239")),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

	// TUI
	Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
	StatusBar:   lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")).Padding(0, 1),
	ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Underline(true).Padding(0, 2),
	InactiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2),
	Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("239")).Padding(0, 2),
	Alert:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196")).Foreground(lipgloss.Color("217")).Padding(1, 2),
	Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Bar:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
}

// SeverityStyle returns the style for an anomaly severity
func SeverityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityCritical:
		return Styles.Critical
	case domain.SeverityHigh:
		return Styles.High
	case domain.SeverityMedium:
		return Styles.Medium
	case domain.SeverityLow:
		return Styles.Low
	default:
		return Styles.Unknown
	}
}

// SeverityBadge returns the upper-case severity label in its style
func SeverityBadge(s domain.Severity) string {
	label := strings.ToUpper(string(s))
	if label == "" {
		label = "UNKNOWN"
	}
	return SeverityStyle(s).Render(label)
}

// StatusCodeStyle returns the style for a status code's presentational class
func StatusCodeStyle(code string) lipgloss.Style {
	switch logtable.ClassifyStatus(code) {
	case logtable.StatusSuccess:
		return Styles.StatusSuccess
	case logtable.StatusClientError:
		return Styles.StatusClientError
	case logtable.StatusServerError:
		return Styles.StatusServerError
	default:
		return Styles.StatusNeutral
	}
}

// CompletionText returns styled analysis status text
func CompletionText(completed bool) string {
	if completed {
		return Styles.Success.Render("✓")
	}
	return Styles.Warning.Render("...")
}

// DisableStyles turns off color output, e.g. when stdout is not a terminal.
func DisableStyles() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
