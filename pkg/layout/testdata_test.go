package layout

import "math"

// sunData returns four schools in quadrants of a sun grid with one root on
// the first ring each, plus a second root for fire.
func sunData() *BaseData {
	q := math.Pi / 2
	return &BaseData{
		Mode: ModeSun,
		Grid: Grid{TierSpacing: 40, RingTier: 2, Spokes: 8, MaxExtent: 600},
		Schools: []School{
			{Name: "fire", Color: "#e25822", ArcStart: 0, ArcSize: q},
			{Name: "frost", Color: "#6fa8dc", ArcStart: q, ArcSize: q},
			{Name: "storm", Color: "#b4a7d6", ArcStart: 2 * q, ArcSize: q},
			{Name: "earth", Color: "#93c47d", ArcStart: 3 * q, ArcSize: q},
		},
		RootNodes: []RootNode{
			{X: 80 * math.Cos(q/4), Y: 80 * math.Sin(q/4), Dir: q / 4, School: "fire"},
			{X: 80 * math.Cos(3*q/4), Y: 80 * math.Sin(3*q/4), Dir: 3 * q / 4, School: "fire"},
			{X: 80 * math.Cos(1.5*q), Y: 80 * math.Sin(1.5*q), Dir: 1.5 * q, School: "frost"},
			{X: 80 * math.Cos(2.5*q), Y: 80 * math.Sin(2.5*q), Dir: 2.5 * q, School: "storm"},
			{X: 80 * math.Cos(3.5*q), Y: 80 * math.Sin(3.5*q), Dir: 3.5 * q, School: "earth"},
		},
		SchoolData: map[string]int{"fire": 12, "frost": 7, "storm": 5, "earth": 0},
	}
}

// flatData returns two schools side by side on horizontal rows growing down.
func flatData() *BaseData {
	return &BaseData{
		Mode: ModeFlat,
		Grid: Grid{Spacing: 30, RootRowIndex: 1, Columns: 12, MaxExtent: 400, Direction: Horizontal},
		Schools: []School{
			{Name: "light", Color: "#ffd966", SegStart: -180, SegSize: 180},
			{Name: "shadow", Color: "#674ea7", SegStart: 0, SegSize: 180},
		},
		RootNodes: []RootNode{
			{X: -90, Y: 30, Dir: math.Pi / 2, School: "light"},
			{X: 90, Y: 30, Dir: math.Pi / 2, School: "shadow"},
		},
		SchoolData: map[string]int{"light": 9, "shadow": 14},
	}
}

func cloneData(d *BaseData) *BaseData {
	c := *d
	c.Schools = append([]School(nil), d.Schools...)
	c.RootNodes = append([]RootNode(nil), d.RootNodes...)
	c.SchoolData = make(map[string]int, len(d.SchoolData))
	for k, v := range d.SchoolData {
		c.SchoolData[k] = v
	}
	return &c
}
