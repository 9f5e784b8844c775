// Package pkg provides the libraries behind dienstplan, the weekly duty
// roster tool of a day-care facility.
//
// # Overview
//
// A roster workbook holds one planning sheet per week: six rows per employee
// (two primary, four additional entry slots) and one column window per
// weekday. dienstplan decodes that grid, answers staffing queries over it and
// renders the printed plans.
//
// # Architecture
//
//	Roster workbook (.xlsx) or JSON export
//	         ↓
//	    [io] (workbook sheets, header, staff list, special dates)
//	         ↓
//	    [grid] (planning grid → employee schedules)
//	         ↓
//	    [query] (group membership, shift buckets, affected staff, hours)
//	         ↓
//	    [report] (employee, group and leadership views)
//	         ↓
//	    [render] (timeline SVG, summary tables, group diagrams; PDF/PNG)
//
// [labels] places the start and end times above each timeline row so that
// close labels do not collide.
//
// # Quick Start
//
//	w, _ := io.OpenWorkbook("eingabe/KW12.xlsx", io.WorkbookOptions{})
//	v := report.BuildEmployeeView(w, report.Options{})
//	svg := timeline.RenderSVG(timeline.EmployeePages(v))
//
// # Main Packages
//
// [roster] - Domain model: clock times, weekdays, time entries, employee
// schedules, special events, the assignment catalog and staff directory.
//
// [grid] - Decodes the raw cell matrix of the planning sheet. Invalid cells
// are reported through a callback and never abort the parse.
//
// [query] - Overlap queries over one week of schedules. Absence and
// cross-cutting sentinels are configurable.
//
// [labels] - Greedy level assignment for time labels and the row spacing
// derived from it.
//
// [io] - Workbook reader built on excelize and JSON import/export of a
// parsed week.
//
// [report] - Composes query results into the three printed views.
//
// [render] - SVG to PDF/PNG conversion. [render/timeline] draws the
// per-employee and per-group timelines, [render/summary] the leadership
// tables and [render/nodelink] the employee-group diagram via Graphviz.
//
// [pipeline] - load → layout → render runner shared by all commands, plus
// artifact naming, output writing and the weekly archive copy.
//
// [observability] - No-op hooks for pipeline, archive and server events.
//
// [errors] - Coded errors with user-facing messages and HTTP status mapping.
//
// [roster]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/roster
// [grid]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/grid
// [query]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/query
// [labels]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/labels
// [io]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/io
// [report]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/report
// [render]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/render
// [render/timeline]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/render/timeline
// [render/summary]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/render/summary
// [render/nodelink]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/observability
// [errors]: https://pkg.go.dev/github.com/dienstplan/dienstplan/pkg/errors
package pkg
