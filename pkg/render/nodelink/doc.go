// Package nodelink renders group membership as node-link diagrams.
//
// # Overview
//
// For one day, every care group becomes a filled node in its catalog
// color and every member an employee node. A solid edge connects an
// employee to a group worked for; dashed edges lead to the other
// assignments the employee covers at the same time.
//
// # Usage
//
// Convert group pages to DOT, then render with Graphviz:
//
//	dot := nodelink.ToDOT(pages, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// Rendering uses the WebAssembly build of Graphviz bundled with
// github.com/goccy/go-graphviz, so no system installation is needed for
// SVG. PDF and PNG go through rsvg-convert.
package nodelink
