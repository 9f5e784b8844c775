package timeline

import (
	"bytes"
	"fmt"

	"github.com/dienstplan/dienstplan/pkg/labels"
	"github.com/dienstplan/dienstplan/pkg/render"
	"github.com/dienstplan/dienstplan/pkg/report"
)

// Geometry in pixels. One row unit is the height of a label level factor
// of 1 in [labels.Spacing].
const (
	defaultHourWidth = 60.0
	defaultUnit      = 22.0
	nameColumn       = 150.0
	margin           = 20.0
	titleHeight      = 40.0
	axisHeight       = 24.0
	legendLine       = 16.0
	legendColumns    = 3
	barHeight        = 0.8 // in row units
	pageGap          = 30.0
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	hourWidth float64
	unit      float64
	offsets   labels.Offsets
}

// WithHourWidth sets the width of one hour on the x-axis.
func WithHourWidth(px float64) SVGOption { return func(r *svgRenderer) { r.hourWidth = px } }

// WithUnit sets the pixel height of one row unit.
func WithUnit(px float64) SVGOption { return func(r *svgRenderer) { r.unit = px } }

// WithOffsets sets how far labels sit below their bar.
func WithOffsets(o labels.Offsets) SVGOption { return func(r *svgRenderer) { r.offsets = o } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{hourWidth: defaultHourWidth, unit: defaultUnit, offsets: labels.DefaultOffsets}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws pages stacked top to bottom.
func RenderSVG(pages []Page, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	width := 0.0
	height := margin
	for _, p := range pages {
		width = max(width, r.pageWidth(p))
		height += r.pageHeight(p) + pageGap
	}
	width = max(width, 400)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="sans-serif">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	y := margin
	for _, p := range pages {
		r.renderPage(&buf, p, y)
		y += r.pageHeight(p) + pageGap
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) pageWidth(p Page) float64 {
	return nameColumn + float64(p.LastHour-p.FirstHour)*r.hourWidth + 2*margin
}

func (r svgRenderer) pageHeight(p Page) float64 {
	legendRows := (len(p.Legend) + legendColumns - 1) / legendColumns
	return titleHeight + p.Height()*r.unit + axisHeight +
		float64(legendRows+len(p.Notes))*legendLine
}

func (r svgRenderer) x(p Page, hours float64) float64 {
	return margin + nameColumn + (hours-float64(p.FirstHour))*r.hourWidth
}

func (r svgRenderer) renderPage(buf *bytes.Buffer, p Page, top float64) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="16" font-weight="bold">%s</text>`+"\n",
		margin, top+20, render.EscapeXML(p.Title))

	rowsTop := top + titleHeight
	rowsBottom := rowsTop + p.Height()*r.unit
	r.renderGrid(buf, p, rowsTop, rowsBottom)

	y := rowsTop
	for _, row := range p.Rows {
		r.renderRow(buf, p, row, y)
		y += row.Height * r.unit
	}

	r.renderLegend(buf, p, rowsBottom+axisHeight)
}

func (r svgRenderer) renderGrid(buf *bytes.Buffer, p Page, top, bottom float64) {
	for h := p.FirstHour; h <= p.LastHour; h++ {
		x := r.x(p, float64(h))
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999" stroke-width="0.5" stroke-dasharray="3,3" opacity="0.5"/>`+"\n",
			x, top, x, bottom)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="9" text-anchor="middle">%02d:00</text>`+"\n",
			x, bottom+14, h)
	}
}

func (r svgRenderer) renderRow(buf *bytes.Buffer, p Page, row report.Row, top float64) {
	center := top + r.unit
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11" dominant-baseline="middle">%s</text>`+"\n",
		margin, center, render.EscapeXML(row.Name))

	half := barHeight / 2 * r.unit
	for _, b := range row.Bars {
		x1, x2 := r.x(p, b.Start.Hours()), r.x(p, b.End.Hours())
		color := render.EscapeXML(b.Style.Color)
		if b.Secondary {
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.4" stroke="black" stroke-width="0.8" stroke-dasharray="4,2"/>`+"\n",
				x1, center-half, x2-x1, 2*half, color)
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="7" text-anchor="middle" dominant-baseline="middle" opacity="0.8">%s</text>`+"\n",
				(x1+x2)/2, center, render.EscapeXML(b.Style.Abbreviation))
			continue
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black"/>`+"\n",
			x1, center-half, x2-x1, 2*half, color)
	}

	for _, l := range row.Labels {
		// Offsets work upwards from the bar center; SVG y grows downwards.
		y := center - r.offsets.Y(0, l.Level)*r.unit
		x := r.x(p, l.X)
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="0.3"/>`+"\n",
			x, center+half, x, y-6)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="7" text-anchor="middle">%s</text>`+"\n",
			x, y, render.EscapeXML(l.Text))
	}
}

func (r svgRenderer) renderLegend(buf *bytes.Buffer, p Page, top float64) {
	colWidth := (r.pageWidth(p) - 2*margin) / legendColumns
	for i, item := range p.Legend {
		x := margin + float64(i%legendColumns)*colWidth
		y := top + float64(i/legendColumns)*legendLine
		opacity, dash, text := "1", "", string(item.Assignment)
		if item.Secondary {
			opacity, dash = "0.4", ` stroke-dasharray="3,1"`
			text = fmt.Sprintf("%s (%s)", item.Assignment, item.Style.Abbreviation)
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="12" height="10" fill="%s" fill-opacity="%s" stroke="black" stroke-width="0.5"%s/>`+"\n",
			x, y, render.EscapeXML(item.Style.Color), opacity, dash)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="10">%s</text>`+"\n",
			x+16, y+9, render.EscapeXML(text))
	}

	legendRows := (len(p.Legend) + legendColumns - 1) / legendColumns
	y := top + float64(legendRows)*legendLine
	for _, n := range p.Notes {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="10" font-style="italic">%s</text>`+"\n",
			margin, y+10, render.EscapeXML(n))
		y += legendLine
	}
}
