package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dpio "github.com/dienstplan/dienstplan/pkg/io"
	"github.com/dienstplan/dienstplan/pkg/pipeline"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output     string // output file path (stdout if empty)
	colsPerDay int    // overrides cols_per_day
	headerRows int    // overrides header_rows
}

// newParseCmd creates the parse command, which converts a roster workbook
// to JSON.
func newParseCmd() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse [workbook]",
		Short: "Convert a roster workbook to JSON",
		Long: `Convert a roster workbook to JSON.

Without an argument the single .xlsx file in input_path is used.

Examples:
  dienstplan parse                       # workbook from input_path, JSON to stdout
  dienstplan parse KW12.xlsx -o kw12.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&opts.colsPerDay, "cols-per-day", 0, "columns per weekday window (overrides config)")
	cmd.Flags().IntVar(&opts.headerRows, "header-rows", 0, "planning rows above the first employee (overrides config)")

	return cmd
}

func runParse(ctx context.Context, args []string, opts parseOpts) error {
	cfg := configFromContext(ctx)
	if opts.colsPerDay > 0 {
		cfg.ColsPerDay = opts.colsPerDay
	}
	if opts.headerRows > 0 {
		cfg.HeaderRows = opts.headerRows
	}

	prog := newProgress(loggerFromContext(ctx))
	w, input, err := loadWeek(ctx, cfg, args)
	if err != nil {
		return err
	}

	if opts.output == "" {
		return dpio.WriteJSON(w, os.Stdout)
	}
	if err := dpio.ExportJSON(w, opts.output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d employees from %s", len(w.Schedules), input))
	printSuccess("Wrote %s", opts.output)
	printNextStep("Render the plans", "dienstplan render "+opts.output)
	return nil
}

// resolveInput returns args[0], or the single workbook of the configured
// input path.
func resolveInput(cfg Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return pipeline.FindWorkbook(cfg.InputPath)
}

// loadWeek resolves the input and reads it with the configured layout.
func loadWeek(ctx context.Context, cfg Config, args []string) (*roster.Week, string, error) {
	input, err := resolveInput(cfg, args)
	if err != nil {
		return nil, "", err
	}
	w, err := newRunner(ctx).Load(ctx, cfg.pipelineOptions(input))
	if err != nil {
		return nil, input, err
	}
	return w, input, nil
}
