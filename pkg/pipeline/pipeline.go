// Package pipeline provides the load → layout → render pipeline for weekly
// rosters.
//
// The CLI commands and the HTTP server share this package so that every
// entry point reads workbooks, builds views and names output files the same
// way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a roster workbook (or a JSON export) into a [roster.Week]
//  2. Layout: build the employee, group and leadership views
//  3. Render: generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run on its own or as part of [Runner.Execute].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "eingabe/KW12.xlsx",
//	    Formats: []string{pipeline.FormatPDF},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := pipeline.WriteArtifacts("ausgabe", result.Artifacts)
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dienstplan/dienstplan/pkg/errors"
	dpio "github.com/dienstplan/dienstplan/pkg/io"
	"github.com/dienstplan/dienstplan/pkg/labels"
	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// View constants name the documents the pipeline can produce.
const (
	ViewEmployee = "employee"
	ViewGroup    = "group"
	ViewLeader   = "leader"
	ViewDiagram  = "diagram"
)

// ValidViews is the set of supported views.
var ValidViews = map[string]bool{
	ViewEmployee: true,
	ViewGroup:    true,
	ViewLeader:   true,
	ViewDiagram:  true,
}

// DefaultViews are the three printed plans.
var DefaultViews = []string{ViewEmployee, ViewGroup, ViewLeader}

// DefaultPNGScale is the raster scale for PNG output.
const DefaultPNGScale = 2.0

// Options contains all configuration for the roster pipeline.
type Options struct {
	// Input is the workbook (.xlsx) or JSON export to load.
	Input string `json:"input"`

	// Views lists the documents to produce. Defaults to [DefaultViews].
	Views []string `json:"views,omitempty"`

	// Formats lists the output formats. Defaults to svg.
	Formats []string `json:"formats,omitempty"`

	// Scale is the PNG scale factor. Defaults to [DefaultPNGScale].
	Scale float64 `json:"scale,omitempty"`

	// Detailed adds time ranges to the edges of the group diagram.
	Detailed bool `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Workbook dpio.WorkbookOptions `json:"-"`
	Report   report.Options       `json:"-"`
	Offsets  labels.Offsets       `json:"-"`
	Logger   *log.Logger          `json:"-"`
}

// Views holds the layouts built for one week. Views that were not
// requested are left nil.
type Views struct {
	Employee *report.EmployeeView `json:"employee,omitempty"`
	Group    *report.GroupView    `json:"group,omitempty"`
	Leader   *report.LeaderView   `json:"leader,omitempty"`
}

// Artifact is one rendered output document.
type Artifact struct {
	View   string
	Format string
	Header roster.Header

	// Day is set for per-day documents such as the group diagram.
	Day  string
	Data []byte
}

// FileName returns the output file name, e.g. "Mitarbeiterplan-2024-KW12.pdf".
func (a Artifact) FileName() string {
	name := fmt.Sprintf("%s-%d-KW%d", viewTitles[a.View], a.Header.Year, a.Header.CalendarWeek)
	if a.Day != "" {
		name += "-" + a.Day
	}
	return name + "." + a.Format
}

var viewTitles = map[string]string{
	ViewEmployee: "Mitarbeiterplan",
	ViewGroup:    "Gruppenplan",
	ViewLeader:   "Leitungsplan",
	ViewDiagram:  "Gruppendiagramm",
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Week is the loaded roster.
	Week *roster.Week

	// Views contains the built layouts.
	Views Views

	// Artifacts contains rendered outputs in view, then format order.
	Artifacts []Artifact

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Employees  int
	Events     int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid view: %q (must be one of: employee, group, leader, diagram)", view)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	o.SetDefaults()
	for _, v := range o.Views {
		if err := ValidateView(v); err != nil {
			return err
		}
	}
	return ValidateFormats(o.Formats)
}

// SetDefaults fills in unset options.
func (o *Options) SetDefaults() {
	if len(o.Views) == 0 {
		o.Views = slices.Clone(DefaultViews)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultPNGScale
	}
	if o.Offsets == (labels.Offsets{}) {
		o.Offsets = labels.DefaultOffsets
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Wants reports whether view is requested.
func (o *Options) Wants(view string) bool {
	return slices.Contains(o.Views, view)
}

// isJSON reports whether path names a JSON export rather than a workbook.
func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), "."+FormatJSON)
}
