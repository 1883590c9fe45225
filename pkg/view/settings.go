package view

import (
	"github.com/matzehuels/spellgrid/pkg/errors"
	"github.com/matzehuels/spellgrid/pkg/render/grid"
)

// Default setting values.
const (
	DefaultGhostOpacity = 40
	DefaultNodeRadius   = 6
	DefaultBackground   = "#0b0d17"
)

// Settings are the user-tunable presentation values of a Renderer.
type Settings struct {
	GhostOpacity float64 `toml:"ghost_opacity" json:"ghostOpacity"` // percent, 0–100
	NodeRadius   float64 `toml:"node_radius" json:"nodeRadius"`     // >= 1
	MaxDots      int     `toml:"max_dots" json:"maxDots"`           // grid dot budget, 0 = default
	Stars        int     `toml:"stars" json:"stars"`                // star count, 0 = none
	Seed         uint32  `toml:"seed" json:"seed"`                  // star-field seed
	Background   string  `toml:"background" json:"background"`      // hex color, "" = transparent
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		GhostOpacity: DefaultGhostOpacity,
		NodeRadius:   DefaultNodeRadius,
		MaxDots:      grid.DefaultMaxDots,
		Background:   DefaultBackground,
	}
}

// Clamp returns s with every field forced into its valid range.
func (s Settings) Clamp() Settings {
	s.GhostOpacity = clampOpacity(s.GhostOpacity)
	s.NodeRadius = clampRadius(s.NodeRadius)
	s.MaxDots = max(0, min(s.MaxDots, errors.MaxDots))
	s.Stars = max(0, min(s.Stars, errors.MaxStars))
	return s
}

func clampOpacity(v float64) float64 {
	return max(errors.MinGhostOpacity, min(v, errors.MaxGhostOpacity))
}

func clampRadius(v float64) float64 {
	return max(errors.MinNodeRadius, min(v, errors.MaxNodeRadius))
}
