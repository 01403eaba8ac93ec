package cli

import (
	"fmt"

	"github.com/vburojevic/loglens/internal/config"
	"github.com/vburojevic/loglens/internal/output"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}
	path := globals.ConfigFile
	if path == "" {
		path = config.ConfigFile()
	}

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteRaw(map[string]interface{}{
			"type":          "config",
			"schemaVersion": output.SchemaVersion,
			"api_url":       globals.APIURL,
			"timeout":       globals.Timeout.String(),
			"format":        globals.Format,
			"quiet":         globals.Quiet,
			"verbose":       globals.Verbose,
			"log_level":     cfg.LogLevel,
			"config_file":   path,
		})
	}

	// Text output
	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  api_url:   %s\n", globals.APIURL)
	fmt.Fprintf(globals.Stdout, "  timeout:   %s\n", globals.Timeout)
	fmt.Fprintf(globals.Stdout, "  format:    %s\n", globals.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:     %v\n", globals.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose:   %v\n", globals.Verbose)
	if cfg.LogLevel != "" {
		fmt.Fprintf(globals.Stdout, "  log_level: %s\n", cfg.LogLevel)
	}

	if path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteRaw(map[string]interface{}{
			"type":          "config_path",
			"schemaVersion": output.SchemaVersion,
			"path":          path,
		})
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ./.loglens.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.loglens.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.config/loglens/config.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# loglens configuration file
# Place this file at ./.loglens.yaml, ~/.loglens.yaml, or ~/.config/loglens/config.yaml

# Base URL of the analysis backend
api_url: ` + config.DefaultAPIURL + `

# Per-request timeout (uploads of large files may need more)
timeout: 60s

# Output format: "ndjson" (default) or "text"
format: ndjson

# Suppress warnings and informational output
quiet: false

# Enable verbose/debug output
verbose: false

# Diagnostic log level: debug, info, warn, error (overrides verbose)
# log_level: warn
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
