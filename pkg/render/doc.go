// Package render defines the drawing surface the layout is painted on and
// the concrete surfaces that produce files.
//
// # Surfaces
//
// [Surface] is a small canvas-style API: build a path from moves, lines and
// arcs, then fill or stroke it with the current color. Three
// implementations are provided:
//
//   - [SVG]: writes an SVG document into memory
//   - [Raster]: rasterizes with fogleman/gg and encodes PNG
//   - [Recorder]: records every call, for tests and debugging
//
// # Colors
//
// School colors arrive as hex strings. [ParseColor] turns them into
// color.NRGBA at a requested opacity and falls back to neutral gray when
// the string cannot be parsed, so a bad color never prevents drawing.
//
// # Format Conversion
//
// [ToPDF] pipes a finished SVG document through the external rsvg-convert
// tool (from librsvg). [ErrNoConverter] reports that the tool is missing.
//
//	svg := render.NewSVG(800, 800)
//	renderer.Render(svg, size, data)
//	pdf, err := render.ToPDF(ctx, svg.Bytes())
package render
