package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spellgrid/pkg/errors"
	"github.com/matzehuels/spellgrid/pkg/io"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output  string  // output file path ("" or "-" for stdout)
	jitter  float64 // candidate jitter, fraction of a cell
	seed    uint32  // jitter seed
	noCache bool    // disable the placement cache
}

// layoutCommand creates the layout command, which writes placements as JSON
// instead of drawing them.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute spell placements and write them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("jitter") {
				cfg.Jitter = opts.jitter
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.seed
			}
			if cfg.Jitter < 0 || cfg.Jitter > errors.MaxJitter {
				return errors.New(errors.ErrCodeInvalidConfig, "jitter %g out of range [0, %d]", cfg.Jitter, errors.MaxJitter)
			}
			return c.runLayout(cmd.Context(), args[0], opts.output, opts.noCache, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Float64Var(&opts.jitter, "jitter", 0, "candidate jitter as a fraction of one cell (0-1)")
	cmd.Flags().Uint32Var(&opts.seed, "seed", 0, "jitter seed")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the placement cache")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input, output string, noCache bool, cfg config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := io.Import(input)
	if err != nil {
		return err
	}

	placements := c.newEngine(noCache, cfg.jitter()).ComputePlacements(data)
	if placed, want := len(placements), data.TotalSpells(); placed < want {
		logger.Warn("not enough candidates for every spell", "placed", placed, "requested", want)
	}

	if output == "" || output == "-" {
		return io.WritePlacementsJSON(data, placements, os.Stdout)
	}
	if err := io.ExportPlacementsJSON(data, placements, output); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}

	prog.done(fmt.Sprintf("Placed %d of %d spells", len(placements), data.TotalSpells()))
	printFile(output)
	return nil
}
