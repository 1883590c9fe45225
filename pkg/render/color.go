package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const fullTurn = 2 * math.Pi

// Gray is the fallback for colors that cannot be parsed.
var Gray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ParseColor parses a "#rrggbb" or "#rgb" string (the leading '#' is
// optional) and applies alpha in [0, 1]. Unparseable input yields Gray at
// the same alpha.
func ParseColor(hex string, alpha float64) color.NRGBA {
	return withAlpha(parseHex(hex), alpha)
}

// Tint mixes hex toward the neutral gray by t in [0, 1] and applies alpha.
// Mixing happens in Lab space so tints of different hues keep comparable
// lightness.
func Tint(hex string, t, alpha float64) color.NRGBA {
	c := parseHex(hex).BlendLab(Gray, clamp01(t)).Clamped()
	return withAlpha(c, alpha)
}

// RGBA builds a color from 8-bit channels and an alpha in [0, 1].
func RGBA(r, g, b uint8, alpha float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(alpha)}
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// Opacity returns the alpha of c in [0, 1].
func Opacity(c color.NRGBA) float64 { return float64(c.A) / 255 }

// toNRGBA converts any color to non-premultiplied form.
func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func parseHex(hex string) colorful.Color {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Gray
	}
	return c
}

func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(alpha)}
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(v, 1))
}
