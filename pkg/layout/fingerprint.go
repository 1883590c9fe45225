package layout

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Fingerprint summarizes every input that affects placement. Two BaseData
// values with the same fingerprint produce the same placements.
//
// Root coordinates are rounded to whole units and directions to hundredths
// of a radian, so sub-unit jitter from the host does not force a recompute.
func Fingerprint(d *BaseData) string {
	var b strings.Builder

	grid, _ := json.Marshal(d.Grid)
	fmt.Fprintf(&b, "%s|%s|%d|", effectiveMode(d.Mode), grid, len(d.RootNodes))

	counts := make([]string, 0, len(d.SchoolData))
	for name, n := range d.SchoolData {
		counts = append(counts, fmt.Sprintf("%s:%d", name, n))
	}
	slices.Sort(counts)
	b.WriteString(strings.Join(counts, ","))

	for _, s := range d.Schools {
		fmt.Fprintf(&b, "|%s:%s:%g:%g:%g:%g", s.Name, s.Color, s.ArcStart, s.ArcSize, s.SegStart, s.SegSize)
	}
	for _, r := range d.RootNodes {
		fmt.Fprintf(&b, "|%s@%d,%d,%d", r.School, roundInt(r.X), roundInt(r.Y), roundInt(r.Dir*100))
	}
	return b.String()
}

// effectiveMode maps an unset mode to sun.
func effectiveMode(m Mode) Mode {
	if m == "" {
		return ModeSun
	}
	return m
}

func roundInt(v float64) int64 {
	return int64(math.Round(v))
}
