package cli

import (
	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/domain"
)

// AnomaliesCmd lists the anomalies of one analysis
type AnomaliesCmd struct {
	ID          int    `arg:"" help:"Analysis id"`
	MinSeverity string `default:"all" enum:"all,critical,high,medium,low" help:"Only show anomalies at or above this severity"`
}

// Run executes the anomalies command
func (c *AnomaliesCmd) Run(globals *Globals) error {
	ctx, stop := commandContext()
	defer stop()

	res, err := loadAnalysis(ctx, globals, c.ID)
	if err != nil {
		return err
	}

	anomalies := dashboard.FilterBySeverity(res.Anomalies, domain.ParseSeverity(c.MinSeverity))
	return globals.Emitter().Anomalies(c.ID, anomalies, false)
}
