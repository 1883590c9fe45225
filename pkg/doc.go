// Package pkg provides the libraries behind spellgrid, a procedural
// skill-tree layout engine.
//
// # Overview
//
// Spellgrid places every spell slot of every school at a deterministic,
// collision-free position on a grid, and draws the grid with translucent
// "ghost" nodes where the spells will go. The pkg directory is organized
// into three areas:
//
//  1. Layout - [layout] (candidates, claiming, growth modes, engine) on top
//     of [rng], [geom] and [cache]
//  2. Drawing - [render] surfaces and the [render/grid], [render/ghost] and
//     [render/decor] painters, composed by [view]
//  3. Plumbing - [io], [errors], [observability] and [buildinfo]
//
// # Architecture
//
// The data flow of one frame:
//
//	BaseData (JSON or TOML, see [io])
//	         ↓
//	    [layout.Engine] (fingerprint → cached or fresh placements)
//	         ↓
//	    [view.Renderer] (background, stars, grid, ghosts)
//	         ↓
//	    [render.Surface] (SVG, PNG via gg, or PDF via rsvg-convert)
//
// # Quick Start
//
//	data, _ := io.Import("tree.json")
//
//	engine := layout.NewEngine(layout.DefaultRegistry())
//	r := view.New(engine, view.DefaultSettings())
//
//	svg := render.NewSVG(1024, 1024)
//	r.Render(svg, geom.Size{W: 1024, H: 1024}, data)
//	os.WriteFile("tree.svg", svg.Bytes(), 0o644)
//
// # Determinism
//
// Every random choice goes through [rng], a seeded mulberry32 generator,
// and every consumer draws a fixed number of values per item. The same
// input and seed always produce the same picture.
package pkg
