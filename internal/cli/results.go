package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/tui"
)

// ResultsCmd opens the interactive dashboard for one analysis
type ResultsCmd struct {
	ID  int    `arg:"" help:"Analysis id"`
	Tab string `short:"t" default:"summary" enum:"summary,anomalies,timeline,logs" help:"Initial tab"`
}

// Run executes the results command
func (c *ResultsCmd) Run(globals *Globals) error {
	if err := requireInteractive(globals, "results",
		"Use `loglens summary`, `loglens anomalies` or `loglens logs` for scripting."); err != nil {
		return err
	}
	tab, err := dashboard.ParseTab(c.Tab)
	if err != nil {
		return outputErrorCommon(globals, CodeInvalidFlags, err.Error())
	}

	ctx, stop := commandContext()
	defer stop()

	model := tui.New(ctx, tui.Options{
		Fetcher:    globals.Client(),
		AnalysisID: c.ID,
		InitialTab: tab,
	})
	return runProgram(ctx, model)
}

func runProgram(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// loadAnalysis fetches one analysis, emitting the failure with the same
// wording the dashboard shows.
func loadAnalysis(ctx context.Context, globals *Globals, id int) (*domain.AnalysisResult, error) {
	res, err := globals.Client().GetAnalysis(ctx, id)
	if err != nil {
		return nil, outputAPIError(globals, dashboard.ErrorMessage(err), err)
	}
	if res == nil {
		return nil, outputErrorCommon(globals, CodeNotFound, dashboard.NotFoundMessage)
	}
	return res, nil
}
