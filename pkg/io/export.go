package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/matzehuels/spellgrid/pkg/buildinfo"
	"github.com/matzehuels/spellgrid/pkg/layout"
)

// placementDoc is the JSON shape written by WritePlacementsJSON.
type placementDoc struct {
	Generator  string             `json:"generator"`
	Build      buildinfo.Info     `json:"build"`
	LayoutID   uuid.UUID          `json:"layoutId"`
	Mode       layout.Mode        `json:"mode"`
	Requested  int                `json:"requested"`
	Placed     int                `json:"placed"`
	Schools    []schoolCount      `json:"schools"`
	Placements []layout.Placement `json:"placements"`
}

type schoolCount struct {
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Placed    int    `json:"placed"`
}

// layoutNamespace scopes layout IDs.
var layoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/spellgrid/layout"))

// LayoutID returns a name-based (version 5) UUID derived from the layout
// fingerprint of data. Inputs that lay out identically share an ID.
func LayoutID(data *layout.BaseData) uuid.UUID {
	return uuid.NewSHA1(layoutNamespace, []byte(layout.Fingerprint(data)))
}

// WritePlacementsJSON encodes the placements computed for data, with
// per-school requested and placed counts, and writes them to w.
func WritePlacementsJSON(data *layout.BaseData, placements []layout.Placement, w io.Writer) error {
	placed := make(map[string]int)
	for _, p := range placements {
		placed[p.School]++
	}

	out := placementDoc{
		Generator:  buildinfo.Generator(),
		Build:      buildinfo.Get(),
		LayoutID:   LayoutID(data),
		Mode:       data.Mode,
		Requested:  data.TotalSpells(),
		Placed:     len(placements),
		Schools:    make([]schoolCount, 0, len(data.Schools)),
		Placements: placements,
	}
	if out.Mode == "" {
		out.Mode = layout.ModeSun
	}
	if out.Placements == nil {
		out.Placements = []layout.Placement{}
	}
	for _, s := range data.Schools {
		out.Schools = append(out.Schools, schoolCount{
			Name:      s.Name,
			Requested: max(0, data.SchoolData[s.Name]),
			Placed:    placed[s.Name],
		})
	}
	sort.SliceStable(out.Schools, func(i, j int) bool { return out.Schools[i].Name < out.Schools[j].Name })

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportPlacementsJSON writes the placements to a JSON file at path.
func ExportPlacementsJSON(data *layout.BaseData, placements []layout.Placement, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlacementsJSON(data, placements, f)
}
