package layout

// Mode selects the coordinate system a BaseData is laid out in.
type Mode string

const (
	ModeSun  Mode = "sun"  // concentric rings around the center
	ModeFlat Mode = "flat" // parallel rows across the center
)

// Modes lists every supported mode.
var Modes = []Mode{ModeSun, ModeFlat}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == ModeSun || m == ModeFlat }

// Direction is the orientation of rows in flat mode.
type Direction string

const (
	Horizontal Direction = "horizontal" // rows run along x, grow along y
	Vertical   Direction = "vertical"   // rows run along y, grow along x
)

// Grid holds the grid parameters for both modes. Sun mode reads TierSpacing,
// RingTier and Spokes; flat mode reads Spacing, RootRowIndex, Columns and
// Direction. MaxExtent bounds both.
type Grid struct {
	TierSpacing float64 `json:"tierSpacing,omitempty" toml:"tier_spacing"`
	RingTier    int     `json:"ringTier,omitempty" toml:"ring_tier"`
	Spokes      int     `json:"spokes,omitempty" toml:"spokes"`

	Spacing      float64   `json:"spacing,omitempty" toml:"spacing"`
	RootRowIndex int       `json:"rootRowIndex,omitempty" toml:"root_row_index"`
	Columns      int       `json:"columns,omitempty" toml:"columns"`
	Direction    Direction `json:"direction,omitempty" toml:"direction"`

	MaxExtent float64 `json:"maxExtent" toml:"max_extent"`
}

// Horizontal reports whether flat rows run along the x axis. An unset
// direction is horizontal.
func (g Grid) Horizontal() bool { return g.Direction != Vertical }

// School is one category of spells and the sector it owns. Sun mode reads
// the arc (radians), flat mode the segment (world units along the row).
type School struct {
	Name     string  `json:"name" toml:"name"`
	Color    string  `json:"color" toml:"color"`
	ArcStart float64 `json:"arcStart,omitempty" toml:"arc_start"`
	ArcSize  float64 `json:"arcSize,omitempty" toml:"arc_size"`
	SegStart float64 `json:"segStart,omitempty" toml:"seg_start"`
	SegSize  float64 `json:"segSize,omitempty" toml:"seg_size"`
}

// RootNode is an anchor a school grows from. X and Y are offsets from the
// tree center; Dir is the growth angle in radians.
type RootNode struct {
	X      float64 `json:"x" toml:"x"`
	Y      float64 `json:"y" toml:"y"`
	Dir    float64 `json:"dir" toml:"dir"`
	School string  `json:"school" toml:"school"`
}

// BaseData is the complete input of a placement pass.
type BaseData struct {
	Mode       Mode           `json:"mode" toml:"mode"`
	Grid       Grid           `json:"grid" toml:"grid"`
	Schools    []School       `json:"schools" toml:"schools"`
	RootNodes  []RootNode     `json:"rootNodes" toml:"root_nodes"`
	SchoolData map[string]int `json:"schoolData" toml:"school_data"`
}

// Empty reports whether there is nothing to lay out.
func (d *BaseData) Empty() bool {
	return d == nil || len(d.Schools) == 0
}

// RootsFor returns the roots belonging to school, in input order.
func (d *BaseData) RootsFor(school string) []RootNode {
	var roots []RootNode
	for _, r := range d.RootNodes {
		if r.School == school {
			roots = append(roots, r)
		}
	}
	return roots
}

// TotalSpells sums the spell counts of all listed schools.
func (d *BaseData) TotalSpells() int {
	n := 0
	for _, s := range d.Schools {
		n += max(0, d.SchoolData[s.Name])
	}
	return n
}

// Candidate is a position a spell may be placed at. Tier is the ring (sun)
// or row (flat) index it was generated on.
type Candidate struct {
	X, Y    float64
	Tier    int
	Claimed bool
}

// Placement is one claimed spell slot.
type Placement struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Color       string  `json:"color"`
	School      string  `json:"school"`
	Connections []int   `json:"connections"` // reserved for linking, always empty
}
