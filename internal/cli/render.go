package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dienstplan/dienstplan/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output directory (output_path if empty)
	views    []string // employee, group, leader, diagram
	formats  []string // svg, pdf, png, json, dot
	detailed bool     // time ranges on diagram edges
	scale    float64  // PNG scale factor
}

// newRenderCmd creates the render command for generating plans.
func newRenderCmd() *cobra.Command {
	var viewsStr, formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [workbook-or-json]",
		Short: "Render the weekly plans",
		Long: `Render the employee, group and leadership plans of a roster.

The input is a workbook or a JSON export written by "dienstplan parse". Without
an argument the single .xlsx file in input_path is used.

Examples:
  dienstplan render                                  # all plans, formats from config
  dienstplan render KW12.xlsx -t employee -f svg,pdf
  dienstplan render kw12.json -t diagram -f dot,svg --detailed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.views = splitList(viewsStr)
			opts.formats = splitList(formatsStr)
			return runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: output_path)")
	cmd.Flags().StringVarP(&viewsStr, "type", "t", "", "view(s): employee, group, leader, diagram (comma-separated; default: employee,group,leader)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg, pdf, png, json, dot (comma-separated; default: formats from config)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show time ranges in the group diagram")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultPNGScale, "PNG scale factor")

	return cmd
}

// splitList parses a comma-separated flag into its non-empty parts.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runRender(ctx context.Context, args []string, opts renderOpts) error {
	cfg := configFromContext(ctx)
	input, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}

	popts := cfg.pipelineOptions(input)
	popts.Views = opts.views
	if len(opts.formats) > 0 {
		popts.Formats = opts.formats
	}
	popts.Detailed = opts.detailed
	popts.Scale = opts.scale

	out := opts.output
	if out == "" {
		out = cfg.OutputPath
	}

	paths, result, err := renderTo(ctx, popts, out)
	if err != nil {
		return err
	}
	printSuccess("Rendered %d files for KW %d/%d", len(paths), result.Week.CalendarWeek, result.Week.Year)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// renderTo runs the pipeline behind a spinner and writes the artifacts to dir.
func renderTo(ctx context.Context, opts pipeline.Options, dir string) ([]string, *pipeline.Result, error) {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Input))
	spinner.Start()
	result, err := newRunner(ctx).Execute(ctx, opts)
	spinner.Stop()
	if spinner.Cancelled() {
		return nil, nil, ctx.Err()
	}
	if err != nil {
		return nil, nil, err
	}

	paths, err := pipeline.WriteArtifacts(dir, result.Artifacts)
	if err != nil {
		return nil, nil, err
	}
	return paths, result, nil
}
