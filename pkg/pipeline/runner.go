package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dienstplan/dienstplan/pkg/errors"
	dpio "github.com/dienstplan/dienstplan/pkg/io"
	"github.com/dienstplan/dienstplan/pkg/observability"
	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Runner executes pipeline stages.
//
// The Runner keeps no state besides its logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	w, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Week = w
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Employees = len(w.Schedules)
	result.Stats.Events = len(w.Events)

	r.Logger.Info("loaded roster",
		"year", w.Year,
		"week", w.CalendarWeek,
		"employees", result.Stats.Employees,
		"events", result.Stats.Events,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	views, err := r.Layout(ctx, w, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Views = views
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("built views",
		"views", opts.Views,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, w.Header, views, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"artifacts", len(artifacts),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the roster named by opts.Input. Files ending in .json are
// read as exports, everything else as a workbook.
func (r *Runner) Load(ctx context.Context, opts Options) (w *roster.Week, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Input)
	start := time.Now()
	defer func() {
		n := 0
		if w != nil {
			n = len(w.Schedules)
		}
		hooks.OnParseComplete(ctx, opts.Input, n, time.Since(start), err)
	}()

	if isJSON(opts.Input) {
		return dpio.ImportJSON(opts.Input)
	}

	wbOpts := opts.Workbook
	if wbOpts.OnInvalidCell == nil {
		wbOpts.OnInvalidCell = func(sheet string, row, col int, value string, err error) {
			r.Logger.Warn("ignoring cell", "sheet", sheet, "row", row+1, "col", col+1, "value", value, "err", err)
		}
	}
	if wbOpts.Grid.OnInvalidCell == nil {
		wbOpts.Grid.OnInvalidCell = func(row, col int, value string, err error) {
			r.Logger.Warn("ignoring cell", "sheet", dpio.PlanningSheet, "row", row+1, "col", col+1, "value", value, "err", err)
		}
	}
	return dpio.OpenWorkbook(opts.Input, wbOpts)
}

// Layout builds the requested views of w.
func (r *Runner) Layout(ctx context.Context, w *roster.Week, opts Options) (Views, error) {
	var views Views
	if w == nil {
		return views, errors.New(errors.ErrCodeInvalidInput, "no roster loaded")
	}
	opts.SetDefaults()

	build := func(view string, fn func()) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		hooks := observability.Pipeline()
		hooks.OnLayoutStart(ctx, view, len(w.Schedules))
		start := time.Now()
		fn()
		hooks.OnLayoutComplete(ctx, view, time.Since(start), nil)
		r.Logger.Debug("built view", "view", view, "duration", time.Since(start))
		return nil
	}

	if opts.Wants(ViewEmployee) {
		if err := build(ViewEmployee, func() {
			v := report.BuildEmployeeView(w, opts.Report)
			views.Employee = &v
		}); err != nil {
			return views, err
		}
	}
	if opts.Wants(ViewGroup) || opts.Wants(ViewDiagram) {
		if err := build(ViewGroup, func() {
			v := report.BuildGroupView(w, opts.Report)
			views.Group = &v
		}); err != nil {
			return views, err
		}
	}
	if opts.Wants(ViewLeader) {
		if err := build(ViewLeader, func() {
			v := report.BuildLeaderView(w, opts.Report)
			views.Leader = &v
		}); err != nil {
			return views, err
		}
	}
	return views, nil
}

// Render generates the requested artifacts from views, in view order and
// then format order.
func (r *Runner) Render(ctx context.Context, h roster.Header, views Views, opts Options) ([]Artifact, error) {
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	var out []Artifact
	for _, view := range opts.Views {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hooks := observability.Pipeline()
		hooks.OnRenderStart(ctx, view, opts.Formats)
		start := time.Now()

		arts, err := renderView(view, views, opts)
		hooks.OnRenderComplete(ctx, view, opts.Formats, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", view, err)
		}
		for i := range arts {
			arts[i].View = view
			arts[i].Header = h
		}
		out = append(out, arts...)
		r.Logger.Debug("rendered view", "view", view, "artifacts", len(arts), "duration", time.Since(start))
	}
	return out, nil
}
