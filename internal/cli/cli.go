// Package cli implements the timeaxis command-line interface.
//
// # Commands
//
//   - ticks: print the key points of an axis with pixel positions and labels
//   - map: project values onto the pixel range
//   - step: move a value along a date, monthly or yearly axis
//   - render: write JSON, SVG, text, PNG or PDF artifacts (one axis or a TOML batch)
//   - explore: interactive terminal view that re-lays out the axis on resize
//   - serve: run the HTTP API
//   - cache: inspect or clear the artifact cache
//
// Every axis command shares the flags --kind, --begin, --end, --tz,
// --max-points, --pixels and --label-format.
//
// # Logging
//
// Commands log through charmbracelet/log to stderr; --verbose enables debug
// output.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/timeaxis/pkg/buildinfo"
	"github.com/matzehuels/timeaxis/pkg/cache"
	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is used for directories and display.
const appName = "timeaxis"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI that logs to w at level. Command output goes to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "timeaxis picks tick marks for time axes",
		Long:         `timeaxis computes calendar-aligned key points for date, datetime, duration, monthly and yearly axes, maps values onto pixel ranges and renders the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.ticksCommand())
	root.AddCommand(c.mapCommand())
	root.AddCommand(c.stepCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the XDG cache directory (~/.cache/timeaxis by default).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats splits a comma-separated format list.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
