package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"math"
	"strings"
)

const (
	svgFontSize   = 14.0
	svgFontFamily = "sans-serif"
	fontCharWidth = 0.55
)

// SVG is a Surface that writes an SVG document into memory.
type SVG struct {
	w, h      float64
	body      bytes.Buffer
	path      strings.Builder
	fill      color.NRGBA
	stroke    color.NRGBA
	lineWidth float64
	hasPen    bool
}

// NewSVG creates an empty document with the given viewport.
func NewSVG(w, h float64) *SVG {
	return &SVG{
		w: w, h: h,
		fill:      color.NRGBA{A: 255},
		stroke:    color.NRGBA{A: 255},
		lineWidth: 1,
	}
}

// Bytes returns the complete document. It can be called repeatedly; drawing
// after Bytes keeps appending to the same document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.w, s.h, s.w, s.h)
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *SVG) BeginPath() {
	s.path.Reset()
	s.hasPen = false
}

func (s *SVG) ClosePath() {
	if s.path.Len() > 0 {
		s.path.WriteString("Z")
	}
}

func (s *SVG) MoveTo(x, y float64) {
	fmt.Fprintf(&s.path, "M%s %s", num(x), num(y))
	s.hasPen = true
}

func (s *SVG) LineTo(x, y float64) {
	if !s.hasPen {
		s.MoveTo(x, y)
		return
	}
	fmt.Fprintf(&s.path, "L%s %s", num(x), num(y))
}

// Arc emits the sweep as elliptical-arc segments of at most half a turn,
// since a single SVG arc cannot describe a full circle.
func (s *SVG) Arc(x, y, r, start, end float64) {
	if r <= 0 {
		return
	}
	sweep := end - start
	if sweep > fullTurn {
		sweep = fullTurn
	}
	if sweep < 0 {
		sweep = math.Mod(sweep, fullTurn) + fullTurn
	}

	sx, sy := x+r*math.Cos(start), y+r*math.Sin(start)
	s.LineTo(sx, sy)

	segments := max(1, int(math.Ceil(sweep/math.Pi-1e-9)))
	step := sweep / float64(segments)
	for i := 1; i <= segments; i++ {
		a := start + step*float64(i)
		fmt.Fprintf(&s.path, "A%s %s 0 0 1 %s %s", num(r), num(r), num(x+r*math.Cos(a)), num(y+r*math.Sin(a)))
	}
}

func (s *SVG) Fill() {
	if s.path.Len() == 0 {
		return
	}
	fmt.Fprintf(&s.body, `  <path d="%s" fill="%s" fill-opacity="%s"/>`+"\n",
		s.path.String(), Hex(s.fill), num(Opacity(s.fill)))
}

func (s *SVG) Stroke() {
	if s.path.Len() == 0 {
		return
	}
	fmt.Fprintf(&s.body, `  <path d="%s" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s"/>`+"\n",
		s.path.String(), Hex(s.stroke), num(Opacity(s.stroke)), num(s.lineWidth))
}

func (s *SVG) FillRect(x, y, w, h float64) {
	fmt.Fprintf(&s.body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`+"\n",
		num(x), num(y), num(w), num(h), Hex(s.fill), num(Opacity(s.fill)))
}

func (s *SVG) SetFillColor(c color.Color)   { s.fill = toNRGBA(c) }
func (s *SVG) SetStrokeColor(c color.Color) { s.stroke = toNRGBA(c) }
func (s *SVG) SetLineWidth(w float64)       { s.lineWidth = w }

// MeasureText estimates the advance width from the character count.
func (s *SVG) MeasureText(text string) float64 {
	return float64(len([]rune(text))) * svgFontSize * fontCharWidth
}

func (s *SVG) FillText(text string, x, y float64) {
	fmt.Fprintf(&s.body, `  <text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s" fill-opacity="%s">%s</text>`+"\n",
		num(x), num(y), svgFontFamily, num(svgFontSize), Hex(s.fill), num(Opacity(s.fill)), escapeXML(text))
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var _ Surface = (*SVG)(nil)
