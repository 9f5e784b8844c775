// Package render turns report views into documents.
//
// # Overview
//
// Every renderer produces SVG first. The [ToPDF] and [ToPNG] functions
// convert any SVG to other formats using the external rsvg-convert tool
// (from librsvg):
//
//	svg := timeline.RenderSVG(timeline.EmployeePages(view))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Subpackages:
//   - [timeline]: employee and group timelines with collision-free labels
//   - [summary]: the leadership tables
//   - [nodelink]: group membership diagrams drawn by Graphviz
//
// [timeline]: github.com/dienstplan/dienstplan/pkg/render/timeline
// [summary]: github.com/dienstplan/dienstplan/pkg/render/summary
// [nodelink]: github.com/dienstplan/dienstplan/pkg/render/nodelink
package render
