package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/vburojevic/loglens/internal/cli"
	"github.com/vburojevic/loglens/internal/config"
	"github.com/vburojevic/loglens/internal/logging"
)

const quickStart = `loglens - web proxy log anomaly viewer

START HERE:
  loglens upload access.log            Upload a log file, print its anomalies
  loglens results <id>                 Open the results dashboard

Other useful commands:
  loglens ui                           Interactive upload + dashboard
  loglens logs <id> --search 10.0.0.5  Search parsed log entries
  loglens summary <id>...              Overview of one or more analyses
  loglens config generate              Sample configuration file
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from .env, files and environment.
	cfg, meta, err := config.LoadWithMeta()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
		meta = nil
	}

	var c cli.CLI

	// Config values become flag defaults; explicit flags still win.
	vars := kong.Vars{
		"config_format":  cfg.Format,
		"config_api_url": cfg.APIURL,
		"config_timeout": cfg.TimeoutDuration().String(),
	}

	ctx := kong.Parse(&c,
		kong.Name("loglens"),
		kong.Description("loglens: upload web proxy logs and explore detected anomalies\n\nSTART HERE: loglens upload <file>"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	if meta != nil {
		globals.ConfigFile = meta.ConfigFile
	}
	globals.Logger = logging.New(logging.Options{
		Verbose: globals.Verbose,
		Level:   cfg.LogLevel,
		Output:  os.Stderr,
	})
	defer func() { _ = globals.Logger.Sync() }()
	if meta != nil && meta.EnvFile != "" {
		globals.Debug("loaded environment from %s", meta.EnvFile)
	}
	cli.PrepareOutput(globals)

	if err := ctx.Run(globals); err != nil {
		_ = globals.Logger.Sync()
		os.Exit(1)
	}
}
