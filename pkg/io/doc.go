// Package io reads layout input and writes computed placements.
//
// # Input Format
//
// Input is a BaseData document, as JSON (camelCase keys, the shape a host
// application emits) or TOML (snake_case keys, convenient to write by hand):
//
//	{
//	  "mode": "sun",
//	  "grid": {"tierSpacing": 40, "ringTier": 2, "spokes": 12, "maxExtent": 320},
//	  "schools": [
//	    {"name": "fire", "color": "#e25822", "arcStart": 0, "arcSize": 1.5708}
//	  ],
//	  "rootNodes": [{"x": 80, "y": 0, "dir": 0, "school": "fire"}],
//	  "schoolData": {"fire": 12}
//	}
//
// The same document in TOML:
//
//	mode = "sun"
//
//	[grid]
//	tier_spacing = 40
//	ring_tier = 2
//	spokes = 12
//	max_extent = 320
//
//	[[schools]]
//	name = "fire"
//	color = "#e25822"
//	arc_start = 0
//	arc_size = 1.5708
//
//	[[root_nodes]]
//	x = 80
//	y = 0
//	dir = 0
//	school = "fire"
//
//	[school_data]
//	fire = 12
//
// Use [Import] to read a file (the extension picks the decoder), or
// [ReadJSON] and [ReadTOML] to read from any io.Reader. Readers only check
// syntax and the mode name; geometrically degenerate input is accepted and
// simply yields no placements.
//
// # Output Format
//
// [WritePlacementsJSON] writes the placements of a layout pass together
// with the mode and per-school counts, for tools that want positions rather
// than pictures.
package io
