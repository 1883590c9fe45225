// Package view composes the layout engine and the painters into a single
// render pass, the way a host's redraw cycle drives them.
//
// A Renderer owns its Settings and one layout.Engine. Changing a setting
// through the Renderer invalidates the engine's cached placements.
package view

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spellgrid/pkg/geom"
	"github.com/matzehuels/spellgrid/pkg/layout"
	"github.com/matzehuels/spellgrid/pkg/render"
	"github.com/matzehuels/spellgrid/pkg/render/decor"
	"github.com/matzehuels/spellgrid/pkg/render/ghost"
	"github.com/matzehuels/spellgrid/pkg/render/grid"
)

// Placeholder is drawn when there is no spell data.
const Placeholder = "No spell data loaded"

const (
	gridTint  = 0.55
	gridAlpha = 0.35
)

var (
	placeholderColor = render.RGBA(255, 255, 255, 0.5)
	neutralDot       = render.RGBA(255, 255, 255, 0.15)
)

// Result summarizes one render pass.
type Result struct {
	Placements []layout.Placement
	Grid       grid.Stats
	Stars      int
	Empty      bool // the placeholder was drawn
}

// Renderer draws BaseData onto a Surface.
type Renderer struct {
	engine   *layout.Engine
	settings Settings
	logger   *log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for render diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New creates a Renderer. Settings are clamped to their valid ranges.
func New(engine *layout.Engine, settings Settings, opts ...Option) *Renderer {
	r := &Renderer{
		engine:   engine,
		settings: settings.Clamp(),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Settings returns the current settings.
func (r *Renderer) Settings() Settings { return r.settings }

// SetGhostOpacity sets the ghost opacity percentage, clamped to [0, 100].
func (r *Renderer) SetGhostOpacity(v float64) {
	r.settings.GhostOpacity = clampOpacity(v)
	r.engine.Invalidate()
}

// SetNodeRadius sets the ghost radius, clamped to at least 1.
func (r *Renderer) SetNodeRadius(v float64) {
	r.settings.NodeRadius = clampRadius(v)
	r.engine.Invalidate()
}

// Render draws one frame. With nil or empty data only the background and a
// centered placeholder are drawn and no layout is computed.
func (r *Renderer) Render(s render.Surface, size geom.Size, data *layout.BaseData) Result {
	center := size.Center()
	if bg := r.settings.Background; bg != "" {
		s.SetFillColor(render.ParseColor(bg, 1))
		s.FillRect(0, 0, size.W, size.H)
	}

	if data.Empty() {
		w := s.MeasureText(Placeholder)
		s.SetFillColor(placeholderColor)
		s.FillText(Placeholder, center.X-w/2, center.Y)
		r.logger.Debug("no spell data, drew placeholder")
		return Result{Empty: true}
	}

	var res Result
	if r.settings.Stars > 0 {
		res.Stars = decor.DrawStars(s, size, decor.Starfield{Seed: r.settings.Seed, Count: r.settings.Stars})
	}

	opts := grid.Options{MaxDots: r.settings.MaxDots}
	switch data.Mode {
	case layout.ModeFlat:
		opts.SegmentColor = segmentColor(data.Schools)
		res.Grid = grid.DrawFlat(s, center, data.Grid, opts)
	default:
		opts.PointColor = arcColor(data.Schools)
		res.Grid = grid.DrawSun(s, center, data.Grid, opts)
	}

	res.Placements = r.engine.ComputePlacements(data)
	ghost.Draw(s, center, res.Placements, ghost.Style{
		Opacity: r.settings.GhostOpacity,
		Radius:  r.settings.NodeRadius,
	})

	r.logger.Debug("rendered frame",
		"mode", data.Mode,
		"placements", len(res.Placements),
		"dots", res.Grid.Dots,
		"stars", res.Stars)
	return res
}

// arcColor tints sun grid dots with the school whose arc contains the
// angle.
func arcColor(schools []layout.School) func(float64) color.Color {
	tints := schoolTints(schools)
	return func(angle float64) color.Color {
		for i, sc := range schools {
			if sc.ArcSize <= 0 {
				continue
			}
			d := math.Mod(angle-sc.ArcStart, 2*math.Pi)
			if d < 0 {
				d += 2 * math.Pi
			}
			if d < sc.ArcSize {
				return tints[i]
			}
		}
		return neutralDot
	}
}

// segmentColor tints flat grid dots with the school whose segment contains
// the position.
func segmentColor(schools []layout.School) func(float64) color.Color {
	tints := schoolTints(schools)
	return func(along float64) color.Color {
		for i, sc := range schools {
			if sc.SegSize > 0 && along >= sc.SegStart && along < sc.SegStart+sc.SegSize {
				return tints[i]
			}
		}
		return neutralDot
	}
}

func schoolTints(schools []layout.School) []color.NRGBA {
	tints := make([]color.NRGBA, len(schools))
	for i, sc := range schools {
		tints[i] = render.Tint(sc.Color, gridTint, gridAlpha)
	}
	return tints
}
