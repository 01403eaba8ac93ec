package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vburojevic/loglens/internal/api"
	"github.com/vburojevic/loglens/internal/config"
	"github.com/vburojevic/loglens/internal/output"
)

// CLI is the root command structure for loglens
type CLI struct {
	// Global flags
	Format  string        `short:"f" default:"${config_format}" enum:"ndjson,text" help:"Output format"`
	Quiet   bool          `short:"q" help:"Suppress warnings and informational output"`
	Verbose bool          `short:"v" help:"Show debug output (requests, responses, timings)"`
	APIURL  string        `name:"api-url" default:"${config_api_url}" help:"Base URL of the analysis backend"`
	Timeout time.Duration `default:"${config_timeout}" help:"Per-request timeout"`
	Version VersionCmd    `cmd:"" help:"Show version information"`

	// Commands
	Login     LoginCmd     `cmd:"" help:"Check credentials against the backend"`
	Upload    UploadCmd    `cmd:"" help:"Upload a proxy log file for analysis"`
	Results   ResultsCmd   `cmd:"" help:"Open the interactive results dashboard for an analysis"`
	Logs      LogsCmd      `cmd:"" help:"Search and page through the parsed log entries of an analysis"`
	Anomalies AnomaliesCmd `cmd:"" help:"List the anomalies of an analysis"`
	Summary   SummaryCmd   `cmd:"" help:"Print the overview of one or more analyses"`
	UI        UICmd        `cmd:"" help:"Interactive upload screen followed by the results dashboard"`
	Config    ConfigCmd    `cmd:"" help:"Show or manage configuration"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format     string
	Quiet      bool
	Verbose    bool
	APIURL     string
	Timeout    time.Duration
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *config.Config
	ConfigFile string
	Logger     *zap.Logger
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return NewGlobalsWithConfig(cli, config.Default())
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		APIURL:  cli.APIURL,
		Timeout: cli.Timeout,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Logger:  zap.NewNop(),
	}

	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
		if g.APIURL == "" {
			g.APIURL = cfg.APIURL
		}
		if g.Timeout <= 0 {
			g.Timeout = cfg.TimeoutDuration()
		}
	}
	if g.APIURL == "" {
		g.APIURL = config.DefaultAPIURL
	}

	return g
}

// Debug logs a debug message; it is only visible with --verbose
func (g *Globals) Debug(format string, args ...interface{}) {
	g.log().Debug(fmt.Sprintf(format, args...))
}

func (g *Globals) log() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// Client returns an API client for the configured backend.
func (g *Globals) Client() *api.Client {
	return api.New(g.APIURL, api.WithTimeout(g.Timeout), api.WithLogger(g.log()))
}

// Emitter returns an emitter for the selected output format on stdout.
func (g *Globals) Emitter() *output.Emitter {
	return output.NewEmitter(g.Stdout, g.Format)
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteRaw(map[string]interface{}{
			"type":          "version",
			"schemaVersion": output.SchemaVersion,
			"version":       Version,
			"commit":        Commit,
		})
	}
	_, err := io.WriteString(globals.Stdout, "loglens version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)

// commandContext is cancelled on SIGINT/SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
