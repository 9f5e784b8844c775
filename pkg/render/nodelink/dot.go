package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dienstplan/dienstplan/pkg/render"
	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds the time ranges to edge labels.
	Detailed bool
}

// ToDOT converts the group pages of one day to Graphviz DOT.
// Pages of other days are not filtered; callers pass one day's pages.
func ToDOT(pages []report.GroupDay, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	groups := make(map[roster.Assignment]bool)
	for _, p := range pages {
		groups[p.Group] = true
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fillcolor=%q];\n", groupID(p.Group), p.Group, p.Style.Color)
	}

	employees := make(map[string]bool)
	for _, p := range pages {
		for _, r := range p.Rows {
			if !employees[r.Name] {
				employees[r.Name] = true
				fmt.Fprintf(&buf, "  %q [label=%q];\n", employeeID(r.Name), r.Name)
			}
		}
	}

	others := make(map[roster.Assignment]bool)
	buf.WriteString("\n")
	for _, p := range pages {
		for _, r := range p.Rows {
			for _, b := range r.Bars {
				if !b.Secondary {
					fmt.Fprintf(&buf, "  %q -> %q%s;\n", employeeID(r.Name), groupID(b.Assignment), edgeAttrs(b, opts, false))
					continue
				}
				if !groups[b.Assignment] && !others[b.Assignment] {
					others[b.Assignment] = true
					fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=%q];\n", groupID(b.Assignment), b.Assignment, b.Style.Color)
				}
				fmt.Fprintf(&buf, "  %q -> %q%s;\n", employeeID(r.Name), groupID(b.Assignment), edgeAttrs(b, opts, true))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func groupID(a roster.Assignment) string { return "group:" + string(a) }

func employeeID(name string) string { return "employee:" + name }

func edgeAttrs(b report.Bar, opts Options, dashed bool) string {
	var attrs []string
	if dashed {
		attrs = append(attrs, "style=dashed")
	}
	if opts.Detailed {
		attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%s-%s", b.Start, b.End)))
	}
	if len(attrs) == 0 {
		return ""
	}
	return " [" + strings.Join(attrs, ", ") + "]"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
