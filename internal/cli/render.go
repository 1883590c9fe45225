package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spellgrid/pkg/errors"
	"github.com/matzehuels/spellgrid/pkg/geom"
	"github.com/matzehuels/spellgrid/pkg/io"
	"github.com/matzehuels/spellgrid/pkg/layout"
	"github.com/matzehuels/spellgrid/pkg/observability"
	"github.com/matzehuels/spellgrid/pkg/render"
	"github.com/matzehuels/spellgrid/pkg/view"
)

// renderOpts holds the command-line flags for the render command.
// Zero-valued fields that were not set on the command line fall back to the
// config file.
type renderOpts struct {
	output       string  // output file path
	format       string  // svg, png or pdf
	width        int     // canvas width in pixels
	height       int     // canvas height in pixels
	ghostOpacity float64 // ghost opacity percent
	nodeRadius   float64 // ghost radius
	maxDots      int     // grid dot budget
	stars        int     // star count
	seed         uint32  // star and jitter seed
	jitter       float64 // candidate jitter, fraction of a cell
	background   string  // background color
	noCache      bool    // disable the placement cache
}

// renderCommand creates the render command for drawing a layout document.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a layout document to SVG, PNG or PDF",
		Long: `Render draws the grid and the ghost placements of a layout document.

The input is JSON or TOML (by extension). Settings come from the config file
and are overridden by flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts.output, opts.noCache, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format's extension)")
	f.StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, pdf")
	f.IntVar(&opts.width, "width", 0, "canvas width")
	f.IntVar(&opts.height, "height", 0, "canvas height")
	f.Float64Var(&opts.ghostOpacity, "ghost-opacity", 0, "ghost opacity in percent (0-100)")
	f.Float64Var(&opts.nodeRadius, "node-radius", 0, "ghost node radius")
	f.IntVar(&opts.maxDots, "max-dots", 0, "maximum number of grid dots")
	f.IntVar(&opts.stars, "stars", 0, "number of background stars")
	f.Uint32Var(&opts.seed, "seed", 0, "seed for stars and jitter")
	f.Float64Var(&opts.jitter, "jitter", 0, "candidate jitter as a fraction of one cell (0-1)")
	f.StringVar(&opts.background, "background", "", "background color (hex)")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the placement cache")

	return cmd
}

// resolveConfig loads the config file and applies every flag the user set.
func (c *CLI) resolveConfig(cmd *cobra.Command, opts *renderOpts) (config, error) {
	cfg, path, err := loadConfig(c.configPath)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
	}

	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Format = opts.format
	}
	if f.Changed("width") {
		cfg.Width = opts.width
	}
	if f.Changed("height") {
		cfg.Height = opts.height
	}
	if f.Changed("ghost-opacity") {
		cfg.GhostOpacity = opts.ghostOpacity
	}
	if f.Changed("node-radius") {
		cfg.NodeRadius = opts.nodeRadius
	}
	if f.Changed("max-dots") {
		cfg.MaxDots = opts.maxDots
	}
	if f.Changed("stars") {
		cfg.Stars = opts.stars
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("jitter") {
		cfg.Jitter = opts.jitter
	}
	if f.Changed("background") {
		cfg.Background = opts.background
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runRender executes the render pipeline: read input, lay out, draw, write.
func (c *CLI) runRender(ctx context.Context, input, output string, noCache bool, cfg config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := io.Import(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded layout", "mode", data.Mode, "schools", len(data.Schools), "spells", data.TotalSpells())

	engine := c.newEngine(noCache, cfg.jitter())
	renderer := view.New(engine, cfg.Settings, view.WithLogger(logger))

	hooks := observability.Render()
	hooks.OnRenderStart(cfg.Format)
	start := time.Now()
	out, res, err := draw(ctx, renderer, data, cfg)
	hooks.OnRenderComplete(cfg.Format, time.Since(start), err)
	if err != nil {
		return err
	}

	if output == "" {
		output = defaultOutput(input, cfg.Format)
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}

	prog.done(fmt.Sprintf("Rendered %d placements", len(res.Placements)))
	if res.Empty {
		printWarning("No spell data in %s, rendered placeholder", input)
	} else {
		printSuccess("Rendered %s", strings.ToUpper(cfg.Format))
	}
	printFile(output)
	if !res.Empty {
		printStats(layoutStats{
			Placed:    len(res.Placements),
			Requested: data.TotalSpells(),
			Dots:      res.Grid.Dots,
			Stars:     res.Stars,
		})
	}
	return nil
}

// draw renders data into the bytes of the configured format.
func draw(ctx context.Context, r *view.Renderer, data *layout.BaseData, cfg config) ([]byte, view.Result, error) {
	size := geom.Size{W: float64(cfg.Width), H: float64(cfg.Height)}

	switch cfg.Format {
	case "png":
		surface := render.NewRaster(cfg.Width, cfg.Height)
		res := r.Render(surface, size, data)
		var buf bytes.Buffer
		if err := surface.EncodePNG(&buf); err != nil {
			return nil, res, errors.Wrap(errors.ErrCodeInternal, err, "encode PNG")
		}
		return buf.Bytes(), res, nil
	case "svg", "pdf":
		surface := render.NewSVG(size.W, size.H)
		res := r.Render(surface, size, data)
		if cfg.Format == "svg" {
			return surface.Bytes(), res, nil
		}
		pdf, err := render.ToPDF(ctx, surface.Bytes())
		if err != nil {
			return nil, res, errors.Wrap(errors.ErrCodeUnsupported, err, "convert to PDF")
		}
		return pdf, res, nil
	}
	return nil, view.Result{}, errors.ValidateFormat(cfg.Format)
}

// defaultOutput replaces the input's extension with the format's.
func defaultOutput(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
