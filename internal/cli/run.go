package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/pipeline"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// newRunCmd creates the run command, the weekly batch: find the workbook,
// render the three plans and archive them.
func newRunCmd() *cobra.Command {
	var noArchive bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render all plans of the week and archive them",
		Long: `Render the employee, group and leadership plans from the single .xlsx
file in input_path into output_path, then copy them to
archive_path/<year>/KW-<week>. An existing archive of the week is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeekly(cmd.Context(), noArchive)
		},
	}
	cmd.Flags().BoolVar(&noArchive, "no-archive", false, "skip the archive copy")
	return cmd
}

func runWeekly(ctx context.Context, noArchive bool) error {
	cfg := configFromContext(ctx)
	input, err := pipeline.FindWorkbook(cfg.InputPath)
	if err != nil {
		return err
	}
	printInfo("Eingabe: %s", input)

	opts := cfg.pipelineOptions(input)
	opts.Views = pipeline.DefaultViews
	paths, result, err := renderTo(ctx, opts, cfg.OutputPath)
	if err != nil {
		return err
	}
	printSuccess("KW %d/%d gerendert", result.Week.CalendarWeek, result.Week.Year)
	printKeyValue("Mitarbeitende", StyleNumber.Render(strconv.Itoa(result.Stats.Employees)))
	printKeyValue("Termine", StyleNumber.Render(strconv.Itoa(result.Stats.Events)))
	printDetail("load %s, layout %s, render %s", result.Stats.LoadTime.Round(time.Millisecond), result.Stats.LayoutTime.Round(time.Millisecond), result.Stats.RenderTime.Round(time.Millisecond))
	for _, p := range paths {
		printFile(p)
	}

	if noArchive {
		return nil
	}
	return archiveFiles(ctx, cfg.ArchivePath, result.Week.Header, paths)
}

// archiveFiles copies paths into the archive of week h. An existing archive
// is reported, not treated as failure.
func archiveFiles(ctx context.Context, root string, h roster.Header, paths []string) error {
	dir, err := pipeline.Archive(ctx, root, h, paths)
	if errors.Is(err, errors.ErrCodeArchiveExists) {
		printWarning("Kopie der Auswertung in %s übersprungen, das Verzeichnis existiert bereits", dir)
		return nil
	}
	if err != nil {
		return err
	}
	printSuccess("Archiviert in %s", dir)
	return nil
}

// newArchiveCmd creates the archive command, which copies already rendered
// plans of one week from output_path into the archive.
func newArchiveCmd() *cobra.Command {
	var h roster.Header

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Copy the rendered plans of a week into the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			paths, err := weekFiles(cfg.OutputPath, h)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.New(errors.ErrCodeNotFound, "no plans for KW %d/%d in %s", h.CalendarWeek, h.Year, cfg.OutputPath)
			}
			return archiveFiles(cmd.Context(), cfg.ArchivePath, h, paths)
		},
	}
	cmd.Flags().IntVar(&h.Year, "year", 0, "year of the plans")
	cmd.Flags().IntVar(&h.CalendarWeek, "week", 0, "calendar week of the plans")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("week")
	return cmd
}

// weekFiles lists the rendered files of week h in dir.
func weekFiles(dir string, h roster.Header) ([]string, error) {
	pattern := filepath.Join(dir, fmt.Sprintf("*-%d-KW%d.*", h.Year, h.CalendarWeek))
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	perDay, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("*-%d-KW%d-*.*", h.Year, h.CalendarWeek)))
	if err != nil {
		return nil, err
	}
	paths = append(paths, perDay...)
	slices.Sort(paths)
	return paths, nil
}
