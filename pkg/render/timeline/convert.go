package timeline

import "github.com/dienstplan/dienstplan/pkg/render"

// RenderPDF renders pages as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(pages []Page, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(pages, opts...))
}

// RenderPNG renders pages as PNG via SVG conversion at the given scale.
func RenderPNG(pages []Page, scale float64, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(RenderSVG(pages, opts...), scale)
}
