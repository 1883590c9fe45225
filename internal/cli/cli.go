package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spellgrid/pkg/buildinfo"
	"github.com/matzehuels/spellgrid/pkg/cache"
	"github.com/matzehuels/spellgrid/pkg/layout"
	"github.com/matzehuels/spellgrid/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "spellgrid"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
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

	// configPath is set by the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Spellgrid lays out skill-tree spell slots and renders them",
		Long:         `Spellgrid places the spell slots of every school on a sun or flat grid, deterministically and without collisions, and renders the grid with ghost placements to SVG, PNG or PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.installHooks()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/spellgrid/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// installHooks routes engine, cache and render events to the logger when
// debug output is on.
func (c *CLI) installHooks() {
	if c.Logger.GetLevel() > log.DebugLevel {
		observability.Reset()
		return
	}
	h := observability.NewLogHooks(c.Logger)
	observability.SetLayoutHooks(h)
	observability.SetCacheHooks(h)
	observability.SetRenderHooks(h)
}

// =============================================================================
// Engine Factory
// =============================================================================

// newEngine creates a layout engine for CLI use. Each CLI run computes one
// layout, so the single-slot store only matters for repeated renders
// within a run; --no-cache swaps in the null store.
func (c *CLI) newEngine(noCache bool, jitter layout.Jitter) *layout.Engine {
	opts := []layout.Option{layout.WithLogger(c.Logger)}
	if noCache {
		opts = append(opts, layout.WithStore(cache.NewNull[[]layout.Placement]()))
	}
	registry := layout.NewRegistry(
		layout.SunGrowth{Jitter: jitter},
		layout.FlatGrowth{Jitter: jitter},
	)
	return layout.NewEngine(registry, opts...)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/spellgrid/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the config file path inside configDir.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}
