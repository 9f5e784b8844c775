package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/grid"
	dpio "github.com/dienstplan/dienstplan/pkg/io"
	"github.com/dienstplan/dienstplan/pkg/labels"
	"github.com/dienstplan/dienstplan/pkg/pipeline"
	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// configNames are looked up in the working directory when --config is not
// given, in this order.
var configNames = []string{"dienstplan.toml", "config.yaml", "config.yml"}

// Config is the file configuration shared by all commands. Flags override
// its values.
type Config struct {
	InputPath   string `toml:"input_path" yaml:"input_path"`
	OutputPath  string `toml:"output_path" yaml:"output_path"`
	ArchivePath string `toml:"archive_path" yaml:"archive_path"`

	ColsPerDay int `toml:"cols_per_day" yaml:"cols_per_day"`
	HeaderRows int `toml:"header_rows" yaml:"header_rows"`

	Groups       []string `toml:"groups" yaml:"groups"`
	Absences     []string `toml:"absences" yaml:"absences"`
	CrossCutting string   `toml:"cross_cutting" yaml:"cross_cutting"`

	Labels       LabelConfig         `toml:"labels" yaml:"labels"`
	ShiftBuckets []query.ShiftBucket `toml:"shift_buckets" yaml:"shift_buckets"`
	Formats      []string            `toml:"formats" yaml:"formats"`
}

// LabelConfig tunes time label placement.
type LabelConfig struct {
	MinDistance float64        `toml:"min_distance" yaml:"min_distance"`
	Spacing     labels.Spacing `toml:"spacing" yaml:"spacing"`
	Offsets     labels.Offsets `toml:"offsets" yaml:"offsets"`
}

// defaultConfig mirrors the directory layout of the weekly batch.
func defaultConfig() Config {
	return Config{
		InputPath:   "eingabe",
		OutputPath:  "ausgabe",
		ArchivePath: "archiv",
		ColsPerDay:  grid.DefaultColumnsPerDay,
		HeaderRows:  dpio.DefaultHeaderRows,
		Formats:     []string{pipeline.FormatPDF},
	}
}

// loadConfig reads path, or the first of [configNames] found in the
// working directory when path is empty. Without any file the defaults are
// returned. Files ending in .yaml or .yml are read as YAML, everything else
// as TOML.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		for _, name := range configNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.ColsPerDay < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cols_per_day must not be negative")
	}
	if c.HeaderRows < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "header_rows must not be negative")
	}
	if c.Labels.MinDistance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "labels.min_distance must not be negative")
	}
	for _, b := range c.ShiftBuckets {
		if b.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "shift bucket without name")
		}
		for _, w := range b.Windows {
			if !w.Start.Before(w.End) {
				return errors.New(errors.ErrCodeInvalidConfig, "shift bucket %s: window %s-%s is empty", b.Name, w.Start, w.End)
			}
		}
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "formats")
	}
	return nil
}

// queryOptions returns the sentinels configured for the query engine.
func (c Config) queryOptions() query.Options {
	var opts query.Options
	for _, a := range c.Absences {
		opts.Absences = append(opts.Absences, roster.Assignment(a))
	}
	opts.CrossCutting = roster.Assignment(c.CrossCutting)
	return opts
}

// reportOptions returns the view options derived from the configuration.
func (c Config) reportOptions() report.Options {
	opts := report.Options{
		Buckets:     c.ShiftBuckets,
		Query:       c.queryOptions(),
		MinDistance: c.Labels.MinDistance,
		Spacing:     c.Labels.Spacing,
	}
	for _, g := range c.Groups {
		opts.Groups = append(opts.Groups, roster.Assignment(g))
	}
	return opts
}

// workbookOptions returns the workbook layout of the configuration.
func (c Config) workbookOptions() dpio.WorkbookOptions {
	return dpio.WorkbookOptions{
		HeaderRows: c.HeaderRows,
		Grid:       grid.Options{ColumnsPerDay: c.ColsPerDay},
	}
}

// pipelineOptions combines the configuration into pipeline options for input.
func (c Config) pipelineOptions(input string) pipeline.Options {
	return pipeline.Options{
		Input:    input,
		Formats:  c.Formats,
		Workbook: c.workbookOptions(),
		Report:   c.reportOptions(),
		Offsets:  c.Labels.Offsets,
	}
}
