package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.BeginPath()
	Circle(r, 1, 2, 3)
	r.SetFillColor(ParseColor("#00ff00", 1))
	r.Fill()
	r.FillText("hi", 4, 5)

	if got := r.Count("Arc"); got != 1 {
		t.Errorf("Arc count = %d, want 1", got)
	}
	arc := r.Filter("Arc")[0]
	if arc.Args[2] != 3 || arc.Args[4] != fullTurn {
		t.Errorf("arc args = %v", arc.Args)
	}
	fill := r.Filter("Fill")[0]
	if fill.Color != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("fill color = %v", fill.Color)
	}
	if text := r.Filter("FillText")[0]; text.Text != "hi" {
		t.Errorf("text = %q", text.Text)
	}
	if got := r.MeasureText("hi"); got != 14 {
		t.Errorf("MeasureText = %v, want 14", got)
	}

	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("Reset left %d ops", len(r.Ops))
	}
}

func TestRaster(t *testing.T) {
	r := NewRaster(40, 30)
	r.SetFillColor(ParseColor("#ffffff", 1))
	r.FillRect(0, 0, 40, 30)

	r.BeginPath()
	Circle(r, 20, 15, 8)
	r.SetFillColor(ParseColor("#ff0000", 1))
	r.Fill()
	r.SetStrokeColor(ParseColor("#0000ff", 1))
	r.SetLineWidth(1)
	r.Stroke()
	r.FillText("x", 2, 10)

	if w := r.MeasureText("abc"); w <= 0 {
		t.Errorf("MeasureText = %v, want > 0", w)
	}

	img := r.Image()
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds = %v", b)
	}
	cr, cg, _, _ := img.At(20, 15).RGBA()
	if cr>>8 != 255 || cg>>8 != 0 {
		t.Errorf("center pixel = %v, want red", img.At(20, 15))
	}
	cr, cg, _, _ = img.At(38, 28).RGBA()
	if cr>>8 != 255 || cg>>8 != 255 {
		t.Errorf("corner pixel = %v, want white background", img.At(38, 28))
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("decode PNG: %v", err)
	}
}

func TestRasterMinimumSize(t *testing.T) {
	r := NewRaster(0, -5)
	if b := r.Image().Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 1x1", b)
	}
}
