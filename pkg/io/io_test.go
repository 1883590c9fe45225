package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/spellgrid/pkg/errors"
	"github.com/matzehuels/spellgrid/pkg/layout"
)

const sunJSON = `{
  "mode": "sun",
  "grid": {"tierSpacing": 40, "ringTier": 2, "spokes": 12, "maxExtent": 320},
  "schools": [
    {"name": "fire", "color": "#e25822", "arcStart": 0, "arcSize": 1.5},
    {"name": "frost", "color": "#7fd4ff", "arcStart": 3, "arcSize": 1.5}
  ],
  "rootNodes": [
    {"x": 80, "y": 0, "dir": 0, "school": "fire"},
    {"x": -80, "y": 10, "dir": 3.1, "school": "frost"}
  ],
  "schoolData": {"fire": 12, "frost": 3},
  "hostVersion": "2.1"
}`

const sunTOML = `
mode = "sun"

[grid]
tier_spacing = 40
ring_tier = 2
spokes = 12
max_extent = 320

[[schools]]
name = "fire"
color = "#e25822"
arc_start = 0
arc_size = 1.5

[[schools]]
name = "frost"
color = "#7fd4ff"
arc_start = 3
arc_size = 1.5

[[root_nodes]]
x = 80
y = 0
dir = 0
school = "fire"

[[root_nodes]]
x = -80
y = 10
dir = 3.1
school = "frost"

[school_data]
fire = 12
frost = 3
`

func TestReadJSONAndTOMLAgree(t *testing.T) {
	fromJSON, err := ReadJSON(strings.NewReader(sunJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	fromTOML, err := ReadTOML(strings.NewReader(sunTOML))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if !reflect.DeepEqual(fromJSON, fromTOML) {
		t.Errorf("decoded documents differ:\nJSON: %+v\nTOML: %+v", fromJSON, fromTOML)
	}

	if fromJSON.Grid.TierSpacing != 40 || fromJSON.Grid.RingTier != 2 {
		t.Errorf("grid = %+v", fromJSON.Grid)
	}
	if len(fromJSON.RootNodes) != 2 || fromJSON.RootNodes[1].School != "frost" {
		t.Errorf("roots = %+v", fromJSON.RootNodes)
	}
	if fromJSON.SchoolData["fire"] != 12 {
		t.Errorf("schoolData = %v", fromJSON.SchoolData)
	}

	engine := layout.NewEngine(layout.DefaultRegistry())
	a := engine.ComputePlacements(fromJSON)
	engine.Invalidate()
	b := engine.ComputePlacements(fromTOML)
	if !reflect.DeepEqual(a, b) {
		t.Error("JSON and TOML input produced different placements")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		read func() error
		code errors.Code
	}{
		{"bad JSON", func() error { _, err := ReadJSON(strings.NewReader("{")); return err }, errors.ErrCodeInvalidInput},
		{"bad TOML", func() error { _, err := ReadTOML(strings.NewReader("mode = ")); return err }, errors.ErrCodeInvalidInput},
		{"unknown mode", func() error { _, err := ReadJSON(strings.NewReader(`{"mode":"spiral"}`)); return err }, errors.ErrCodeInvalidMode},
		{"missing file", func() error { _, err := Import(filepath.Join(t.TempDir(), "nope.json")); return err }, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReadEmptyModeAccepted(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(`{"schools": []}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !d.Empty() {
		t.Error("document without schools should be empty")
	}
}

func TestImportByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "tree.json")
	tomlPath := filepath.Join(dir, "tree.TOML")
	if err := os.WriteFile(jsonPath, []byte(sunJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tomlPath, []byte(sunTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := Import(jsonPath)
	if err != nil {
		t.Fatalf("Import json: %v", err)
	}
	b, err := Import(tomlPath)
	if err != nil {
		t.Fatalf("Import toml: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("imports differ")
	}
}

func TestWritePlacementsJSON(t *testing.T) {
	data, err := ReadJSON(strings.NewReader(sunJSON))
	if err != nil {
		t.Fatal(err)
	}
	placements := layout.NewEngine(layout.DefaultRegistry()).ComputePlacements(data)

	var buf bytes.Buffer
	if err := WritePlacementsJSON(data, placements, &buf); err != nil {
		t.Fatalf("WritePlacementsJSON: %v", err)
	}

	var got struct {
		Mode      string `json:"mode"`
		Requested int    `json:"requested"`
		Placed    int    `json:"placed"`
		Schools   []struct {
			Name      string `json:"name"`
			Requested int    `json:"requested"`
			Placed    int    `json:"placed"`
		} `json:"schools"`
		Placements []layout.Placement `json:"placements"`
		LayoutID   string             `json:"layoutId"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Mode != "sun" || got.Requested != 15 || got.Placed != len(placements) {
		t.Errorf("header = %s/%d/%d", got.Mode, got.Requested, got.Placed)
	}
	if len(got.Schools) != 2 || got.Schools[0].Name != "fire" || got.Schools[0].Requested != 12 {
		t.Errorf("schools = %+v", got.Schools)
	}
	if got.LayoutID != LayoutID(data).String() {
		t.Errorf("layoutId = %q, want %q", got.LayoutID, LayoutID(data))
	}
	if len(got.Placements) != len(placements) || got.Placements[0].Connections == nil {
		t.Errorf("placements = %+v", got.Placements)
	}
}

func TestLayoutID(t *testing.T) {
	a, err := ReadJSON(strings.NewReader(sunJSON))
	if err != nil {
		t.Fatal(err)
	}
	b, err := ReadTOML(strings.NewReader(sunTOML))
	if err != nil {
		t.Fatal(err)
	}
	id := LayoutID(a)
	if id != LayoutID(b) {
		t.Error("equivalent documents should share a layout ID")
	}
	if id.Version() != 5 {
		t.Errorf("version = %d, want 5", id.Version())
	}

	a.SchoolData["fire"]++
	if LayoutID(a) == id {
		t.Error("changing a spell count should change the layout ID")
	}
}

func TestWritePlacementsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlacementsJSON(&layout.BaseData{}, nil, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"placements": []`) {
		t.Errorf("nil placements should encode as an empty array:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"mode": "sun"`) {
		t.Errorf("unset mode should be reported as sun:\n%s", buf.String())
	}
}
