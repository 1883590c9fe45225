package errors

import (
	"slices"
	"strings"
)

// Formats lists the output formats the CLI can write.
var Formats = []string{"svg", "png", "pdf"}

// Setting bounds shared by the CLI, the config loader and view.Settings.
const (
	MinGhostOpacity = 0
	MaxGhostOpacity = 100
	MinNodeRadius   = 1
	MaxNodeRadius   = 64
	MaxStars        = 10000
	MaxDots         = 1000000
	MaxCanvasSize   = 16384
	MaxJitter       = 1
)

// ValidateFormat checks an output format name, case-insensitively.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !slices.Contains(Formats, strings.ToLower(format)) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateMode checks a layout mode name. The empty string is accepted and
// means the default mode.
func ValidateMode(mode string, known []string) error {
	if mode == "" || slices.Contains(known, mode) {
		return nil
	}
	return New(ErrCodeInvalidMode, "unknown mode %q (want one of %s)", mode, strings.Join(known, ", "))
}

// SettingsInput carries the user-settable values checked by
// [ValidateSettings].
type SettingsInput struct {
	GhostOpacity  float64
	NodeRadius    float64
	MaxDots       int
	Stars         int
	Width, Height int
	Jitter        float64
}

// ValidateSettings range-checks user-supplied settings. Zero MaxDots, Width
// and Height mean "use the default" and are accepted.
//
// Validation rules:
//   - GhostOpacity within [0, 100]
//   - NodeRadius within [1, 64]
//   - MaxDots, Stars, Width and Height not negative and below their caps
//   - Jitter within [0, 1]
func ValidateSettings(in SettingsInput) error {
	switch {
	case in.GhostOpacity < MinGhostOpacity || in.GhostOpacity > MaxGhostOpacity:
		return New(ErrCodeInvalidConfig, "ghost opacity %g out of range [%d, %d]", in.GhostOpacity, MinGhostOpacity, MaxGhostOpacity)
	case in.NodeRadius < MinNodeRadius || in.NodeRadius > MaxNodeRadius:
		return New(ErrCodeInvalidConfig, "node radius %g out of range [%d, %d]", in.NodeRadius, MinNodeRadius, MaxNodeRadius)
	case in.MaxDots < 0 || in.MaxDots > MaxDots:
		return New(ErrCodeInvalidConfig, "max dots %d out of range [0, %d]", in.MaxDots, MaxDots)
	case in.Stars < 0 || in.Stars > MaxStars:
		return New(ErrCodeInvalidConfig, "star count %d out of range [0, %d]", in.Stars, MaxStars)
	case in.Width < 0 || in.Width > MaxCanvasSize || in.Height < 0 || in.Height > MaxCanvasSize:
		return New(ErrCodeInvalidConfig, "canvas size %dx%d out of range (max %d)", in.Width, in.Height, MaxCanvasSize)
	case in.Jitter < 0 || in.Jitter > MaxJitter:
		return New(ErrCodeInvalidConfig, "jitter %g out of range [0, %d]", in.Jitter, MaxJitter)
	}
	return nil
}
