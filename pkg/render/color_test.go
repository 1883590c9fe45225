package render

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		hex   string
		alpha float64
		want  color.NRGBA
	}{
		{"long form", "#ff8000", 1, color.NRGBA{255, 128, 0, 255}},
		{"no hash", "00ff00", 1, color.NRGBA{0, 255, 0, 255}},
		{"short form", "#f00", 1, color.NRGBA{255, 0, 0, 255}},
		{"uppercase", "#AABBCC", 1, color.NRGBA{0xaa, 0xbb, 0xcc, 255}},
		{"half alpha", "#000000", 0.5, color.NRGBA{0, 0, 0, 128}},
		{"invalid", "not-a-color", 0.4, color.NRGBA{128, 128, 128, 102}},
		{"empty", "", 1, color.NRGBA{128, 128, 128, 255}},
		{"alpha clamped", "#ffffff", 3, color.NRGBA{255, 255, 255, 255}},
		{"negative alpha", "#ffffff", -1, color.NRGBA{255, 255, 255, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.hex, tt.alpha); got != tt.want {
				t.Errorf("ParseColor(%q, %v) = %v, want %v", tt.hex, tt.alpha, got, tt.want)
			}
		})
	}
}

func near(a, b uint8) bool { return a-b <= 1 || b-a <= 1 }

func TestTint(t *testing.T) {
	tests := []struct {
		name  string
		t     float64
		alpha float64
		want  color.NRGBA
	}{
		{"untinted", 0, 1, color.NRGBA{255, 0, 0, 255}},
		{"fully gray", 1, 1, color.NRGBA{128, 128, 128, 255}},
		{"clamped", 5, 0.5, color.NRGBA{128, 128, 128, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tint("#ff0000", tt.t, tt.alpha)
			if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || got.A != tt.want.A {
				t.Errorf("Tint(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	mid := Tint("#ff0000", 0.5, 0.25)
	if mid.R <= mid.G || mid.A != 64 {
		t.Errorf("Tint(t=0.5) = %v, want reddish at alpha 64", mid)
	}
}

func TestHexAndOpacity(t *testing.T) {
	c := color.NRGBA{0x12, 0x34, 0x56, 51}
	if got := Hex(c); got != "#123456" {
		t.Errorf("Hex = %q, want #123456", got)
	}
	if got := Opacity(c); got != 0.2 {
		t.Errorf("Opacity = %v, want 0.2", got)
	}
}

func TestToNRGBA(t *testing.T) {
	got := toNRGBA(color.RGBA{R: 128, A: 128})
	if got.R < 254 || got.A != 128 {
		t.Errorf("toNRGBA(premultiplied) = %v, want unpremultiplied red", got)
	}
}
