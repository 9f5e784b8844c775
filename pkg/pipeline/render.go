package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/render"
	"github.com/dienstplan/dienstplan/pkg/render/nodelink"
	"github.com/dienstplan/dienstplan/pkg/render/summary"
	"github.com/dienstplan/dienstplan/pkg/render/timeline"
	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// renderView renders one view in every requested format.
func renderView(view string, views Views, opts Options) ([]Artifact, error) {
	switch view {
	case ViewEmployee:
		if views.Employee == nil {
			return nil, missingView(view)
		}
		return renderTimeline(timeline.EmployeePages(*views.Employee), views.Employee, opts)
	case ViewGroup:
		if views.Group == nil {
			return nil, missingView(view)
		}
		return renderTimeline(timeline.GroupPages(*views.Group), views.Group, opts)
	case ViewLeader:
		if views.Leader == nil {
			return nil, missingView(view)
		}
		return renderSummary(*views.Leader, opts)
	case ViewDiagram:
		if views.Group == nil {
			return nil, missingView(view)
		}
		return renderDiagram(*views.Group, opts)
	default:
		return nil, ValidateView(view)
	}
}

func missingView(view string) error {
	return errors.New(errors.ErrCodeInternal, "view %q was not built", view)
}

func unsupported(view, format string) error {
	return errors.New(errors.ErrCodeUnsupported, "format %s is not available for the %s view", format, view)
}

// renderTimeline renders employee or group pages. JSON output is the view
// itself. DOT is only produced by diagrams and skipped here.
func renderTimeline(pages []timeline.Page, view any, opts Options) ([]Artifact, error) {
	svgOpts := []timeline.SVGOption{timeline.WithOffsets(opts.Offsets)}
	var out []Artifact
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = timeline.RenderSVG(pages, svgOpts...)
		case FormatPNG:
			data, err = timeline.RenderPNG(pages, opts.Scale, svgOpts...)
		case FormatPDF:
			data, err = timeline.RenderPDF(pages, svgOpts...)
		case FormatJSON:
			data, err = json.MarshalIndent(view, "", "  ")
		case FormatDOT:
			continue
		default:
			return nil, unsupported("timeline", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		out = append(out, Artifact{Format: format, Data: data})
	}
	return out, nil
}

func renderSummary(v report.LeaderView, opts Options) ([]Artifact, error) {
	var out []Artifact
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = summary.RenderSVG(v)
		case FormatPNG:
			data, err = render.ToPNG(summary.RenderSVG(v), opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(summary.RenderSVG(v))
		case FormatJSON:
			data, err = json.MarshalIndent(v, "", "  ")
		case FormatDOT:
			continue
		default:
			return nil, unsupported(ViewLeader, format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		out = append(out, Artifact{Format: format, Data: data})
	}
	return out, nil
}

// renderDiagram renders one node-link diagram per day. Diagrams have no
// JSON form; the group view carries the same data.
func renderDiagram(v report.GroupView, opts Options) ([]Artifact, error) {
	var out []Artifact
	for _, day := range days(v.Pages) {
		var pages []report.GroupDay
		for _, p := range v.Pages {
			if p.Day == day {
				pages = append(pages, p)
			}
		}
		dot := nodelink.ToDOT(pages, nodelink.Options{Detailed: opts.Detailed})

		for _, format := range opts.Formats {
			var data []byte
			var err error

			switch format {
			case FormatDOT:
				data = []byte(dot)
			case FormatSVG:
				data, err = nodelink.RenderSVG(dot)
			case FormatPNG:
				data, err = nodelink.RenderPNG(dot, opts.Scale)
			case FormatPDF:
				data, err = nodelink.RenderPDF(dot)
			case FormatJSON:
				continue
			default:
				return nil, unsupported(ViewDiagram, format)
			}

			if err != nil {
				return nil, fmt.Errorf("render %s: %w", format, err)
			}
			out = append(out, Artifact{Format: format, Day: day.String(), Data: data})
		}
	}
	return out, nil
}

// days returns the distinct days of pages in order of appearance.
func days(pages []report.GroupDay) []roster.Weekday {
	var out []roster.Weekday
	seen := make(map[roster.Weekday]bool)
	for _, p := range pages {
		if !seen[p.Day] {
			seen[p.Day] = true
			out = append(out, p.Day)
		}
	}
	return out
}
