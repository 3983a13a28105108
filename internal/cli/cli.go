// Package cli implements the cardsheets command-line interface.
//
// # Commands
//
// The main commands are:
//   - render: Lay out one card directory into front and back PDFs
//   - run: Render every job in a cardsheets.toml run file
//   - plan: Show the page grid for a geometry without reading any cards
//   - scan: Show how a card directory pairs fronts with backs
//   - cache: Manage the rendered-sheet cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through the
// CLI's charmbracelet/log logger, which is handed to the pipeline.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardsheets/pkg/buildinfo"
	"github.com/matzehuels/cardsheets/pkg/cache"
	"github.com/matzehuels/cardsheets/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cardsheets"

	// redisKeyPrefix namespaces artifact keys in a shared Redis.
	redisKeyPrefix = appName + ":"
)

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

	// cacheSpec selects the cache backend (see cache.Open); empty means the
	// file cache in cacheDir.
	cacheSpec string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Cardsheets lays out card images on print-ready duplex sheets",
		Long:          `Cardsheets turns a directory of card images into print-ready PDF sheets: fronts and mirrored backs that register when printed duplex, with crop marks for cutting.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.cacheSpec, "cache", "", "cache backend: a directory, redis://host:port/db, or none (default: ~/.cache/cardsheets)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, keyer, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache {
		return cache.NewNullCache(), nil, nil
	}

	spec := c.cacheSpec
	if spec == "" {
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Debug("no cache directory; caching disabled", "error", err)
			return cache.NewNullCache(), nil, nil
		}
		spec = dir
	}

	store, err := cache.Open(spec)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := store.(*cache.RedisCache); ok {
		return store, cache.NewScopedKeyer(nil, redisKeyPrefix), nil
	}
	return store, nil, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cardsheets/).
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
