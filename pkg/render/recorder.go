package render

import "image/color"

// Op is one recorded Surface call. Args holds the numeric arguments in call
// order; Color is set for fill and stroke operations and color setters.
type Op struct {
	Name  string
	Args  []float64
	Color color.NRGBA
	Text  string
}

// Recorder is a Surface that records calls instead of drawing.
type Recorder struct {
	Ops    []Op
	fill   color.NRGBA
	stroke color.NRGBA
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Count returns how many recorded ops have the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Filter returns the ops with the given name.
func (r *Recorder) Filter(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) add(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

func (r *Recorder) BeginPath()          { r.add("BeginPath") }
func (r *Recorder) ClosePath()          { r.add("ClosePath") }
func (r *Recorder) MoveTo(x, y float64) { r.add("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add("LineTo", x, y) }
func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.add("Arc", x, y, radius, start, end)
}
func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, Op{Name: "Fill", Color: r.fill})
}
func (r *Recorder) Stroke() {
	r.Ops = append(r.Ops, Op{Name: "Stroke", Color: r.stroke})
}
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Name: "FillRect", Args: []float64{x, y, w, h}, Color: r.fill})
}
func (r *Recorder) SetFillColor(c color.Color) {
	r.fill = toNRGBA(c)
	r.Ops = append(r.Ops, Op{Name: "SetFillColor", Color: r.fill})
}
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.stroke = toNRGBA(c)
	r.Ops = append(r.Ops, Op{Name: "SetStrokeColor", Color: r.stroke})
}
func (r *Recorder) SetLineWidth(w float64) { r.add("SetLineWidth", w) }

// MeasureText assumes a fixed 7-unit advance per rune.
func (r *Recorder) MeasureText(s string) float64 {
	return float64(len([]rune(s))) * 7
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.Ops = append(r.Ops, Op{Name: "FillText", Args: []float64{x, y}, Color: r.fill, Text: s})
}

var _ Surface = (*Recorder)(nil)
