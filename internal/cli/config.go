package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spellgrid/pkg/errors"
	"github.com/matzehuels/spellgrid/pkg/layout"
	"github.com/matzehuels/spellgrid/pkg/view"
)

const (
	defaultWidth  = 1024 // default canvas width
	defaultHeight = 1024 // default canvas height
	defaultFormat = "svg"
)

// config is the file-backed configuration. Flags override every field.
type config struct {
	view.Settings

	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Jitter float64 `toml:"jitter"`
	Format string  `toml:"format"`
}

func defaultConfig() config {
	return config{
		Settings: view.DefaultSettings(),
		Width:    defaultWidth,
		Height:   defaultHeight,
		Format:   defaultFormat,
	}
}

// validate range-checks the merged configuration.
func (c config) validate() error {
	if err := errors.ValidateFormat(c.Format); err != nil {
		return err
	}
	return errors.ValidateSettings(errors.SettingsInput{
		GhostOpacity: c.GhostOpacity,
		NodeRadius:   c.NodeRadius,
		MaxDots:      c.MaxDots,
		Stars:        c.Stars,
		Width:        c.Width,
		Height:       c.Height,
		Jitter:       c.Jitter,
	})
}

func (c config) jitter() layout.Jitter {
	return layout.Jitter{Amount: c.Jitter, Seed: c.Seed}
}

// loadConfig decodes path over the defaults. With an empty path the default
// location is used, and a missing default file is not an error.
func loadConfig(path string) (config, string, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, "", nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, path, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
			}
			return defaultConfig(), "", nil
		}
		return cfg, path, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, path, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, path, nil
}

// writeConfig encodes cfg as TOML.
func writeConfig(w io.Writer, cfg config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// =============================================================================
// config command
// =============================================================================

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				p, err := defaultConfigPath()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "resolve config directory")
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if path != "" {
				loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
			}
			return writeConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				dir, err := configDir()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "resolve config directory")
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
				}
				path, _ = defaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
			}

			f, err := os.Create(path)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
			}
			defer f.Close()
			if err := writeConfig(f, defaultConfig()); err != nil {
				return err
			}
			printSuccess("Wrote default config")
			printFile(path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
