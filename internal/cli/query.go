package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/labels"
	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// queryOpts holds the flags shared by all query subcommands.
type queryOpts struct {
	input  string // workbook or JSON export (input_path discovery if empty)
	asJSON bool   // print JSON instead of a table
}

// newQueryCmd creates the query command with one subcommand per query.
func newQueryCmd() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Answer staffing questions for one day",
		Long: `Answer staffing questions for one day of the planned week.

Days are given as German or English names, abbreviations or numbers (1 = Montag).

Examples:
  dienstplan query groups Montag Igel
  dienstplan query buckets di
  dienstplan query affected Mittwoch Igel --start 09:00 --end 11:00
  dienstplan query hours Freitag --assignment Igel --assignment Bären
  dienstplan query labels Montag Alice`,
	}

	cmd.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "workbook or JSON export (default: the .xlsx in input_path)")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON")

	cmd.AddCommand(queryGroupsCmd(&opts))
	cmd.AddCommand(queryBucketsCmd(&opts))
	cmd.AddCommand(queryAffectedCmd(&opts))
	cmd.AddCommand(queryEventsCmd(&opts))
	cmd.AddCommand(queryHoursCmd(&opts))
	cmd.AddCommand(queryLabelsCmd(&opts))

	return cmd
}

// session bundles what every query needs.
type session struct {
	cfg    Config
	week   *roster.Week
	engine *query.Engine
	day    roster.Weekday
	out    io.Writer
	asJSON bool
}

func openSession(ctx context.Context, opts *queryOpts, day string) (*session, error) {
	d, err := roster.ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	cfg := configFromContext(ctx)
	var args []string
	if opts.input != "" {
		args = []string{opts.input}
	}
	w, _, err := loadWeek(ctx, cfg, args)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		week:   w,
		engine: query.New(w.Schedules, cfg.queryOptions()),
		day:    d,
		out:    os.Stdout,
		asJSON: opts.asJSON,
	}, nil
}

// emit prints v as JSON or as a table.
func (s *session) emit(v any, headers []string, rows [][]string) error {
	if s.asJSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	if len(rows) == 0 {
		fmt.Fprintln(s.out, StyleDim.Render("keine Einträge"))
		return nil
	}
	writeTable(s.out, headers, rows)
	return nil
}

func (s *session) title(format string, args ...any) {
	if !s.asJSON {
		fmt.Fprintln(s.out, StyleTitle.Render(fmt.Sprintf(format, args...)))
	}
}

func queryGroupsCmd(opts *queryOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "groups <day> <group>",
		Short: "List the staff working for a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			members := s.engine.GroupMembership(roster.Assignment(args[1]), s.day)

			rows := make([][]string, 0, len(members))
			for _, m := range members {
				rows = append(rows, []string{m.Name, m.Start().String(), entryList(m.Primary), entryList(m.Secondary)})
			}
			s.title("Gruppe %s, %s", args[1], s.day)
			return s.emit(members, []string{"Name", "Beginn", "Gruppe", "Zusätzlich"}, rows)
		},
	}
}

func queryBucketsCmd(opts *queryOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "buckets <day>",
		Short: "Count staff per shift window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			buckets := s.cfg.ShiftBuckets
			if len(buckets) == 0 {
				buckets = query.DefaultShiftBuckets
			}
			counts := s.engine.ShiftBucketing(buckets, s.day)

			rows := make([][]string, 0, len(counts))
			for _, c := range counts {
				rows = append(rows, []string{c.Name, strconv.Itoa(c.Count), strings.Join(c.Names, ", ")})
			}
			s.title("Dienstbelegung, %s", s.day)
			return s.emit(counts, []string{"Dienst", "Anzahl", "Namen"}, rows)
		},
	}
}

func queryAffectedCmd(opts *queryOpts) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "affected <day> <target>",
		Short: "List the staff affected by an event for a target assignment",
		Long: `List the staff whose entries for target overlap the event window.

Without --start and --end the event lasts all day. The cross-cutting target
matches every assignment.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			from, err := roster.ParseClock(start)
			if err != nil {
				return err
			}
			to, err := roster.ParseClock(end)
			if err != nil {
				return err
			}
			names := s.engine.AffectedEmployees(s.day, roster.Assignment(args[1]), from, to)

			rows := make([][]string, 0, len(names))
			for _, n := range names {
				rows = append(rows, []string{n})
			}
			s.title("Betroffen: %s, %s", args[1], s.day)
			return s.emit(names, []string{"Name"}, rows)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "event start (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "event end (HH:MM)")
	return cmd
}

func queryEventsCmd(opts *queryOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "events <day>",
		Short: "List the special events of a day with the affected staff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			impacts := s.engine.AffectedByEvents(s.week, s.day)

			rows := make([][]string, 0, len(impacts))
			for _, imp := range impacts {
				window := "ganztägig"
				if !imp.Event.AllDay() {
					from, to := imp.Event.Window()
					window = from.String() + "-" + to.String()
				}
				rows = append(rows, []string{imp.Event.Name, window, string(imp.Event.Target), strings.Join(imp.Affected, ", ")})
			}
			s.title("Sondertermine, %s", s.day)
			return s.emit(impacts, []string{"Termin", "Zeit", "Für", "Betroffen"}, rows)
		},
	}
}

func queryHoursCmd(opts *queryOpts) *cobra.Command {
	var assignments []string
	var qualification string
	var week bool
	cmd := &cobra.Command{
		Use:   "hours <day>",
		Short: "Sum regular working hours by assignment or qualification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			days := []roster.Weekday{s.day}
			if week {
				days = roster.Weekdays
			}

			var result []query.DayHours
			var label string
			if qualification != "" {
				label = qualification
				result = s.engine.WeeklyHoursByQualification(s.week.Staff, qualification, days)
			} else {
				targets := make([]roster.Assignment, 0, len(assignments))
				for _, a := range assignments {
					targets = append(targets, roster.Assignment(a))
				}
				if len(targets) == 0 {
					targets = s.week.Groups(roster.DefaultGroupCount)
				}
				label = joinAssignments(targets)
				result = s.engine.WeeklyHoursByAssignment(targets, days)
			}

			rows := make([][]string, 0, len(result))
			for _, h := range result {
				rows = append(rows, []string{h.Day.String(), strconv.FormatFloat(h.Hours, 'f', 2, 64)})
			}
			s.title("Stunden: %s", label)
			return s.emit(result, []string{"Tag", "Stunden"}, rows)
		},
	}
	cmd.Flags().StringArrayVarP(&assignments, "assignment", "a", nil, "assignment to count (repeatable; default: all groups)")
	cmd.Flags().StringVarP(&qualification, "qualification", "q", "", "count by staff qualification instead")
	cmd.Flags().BoolVar(&week, "week", false, "report every day of the week")
	return cmd
}

func queryLabelsCmd(opts *queryOpts) *cobra.Command {
	var minDistance float64
	cmd := &cobra.Command{
		Use:   "labels <day> <employee>",
		Short: "Show the time label levels of an employee's timeline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			placed, err := employeeLabels(s.week, s.day, args[1], labelDistance(minDistance, s.cfg))
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(placed))
			for _, l := range placed {
				rows = append(rows, []string{l.Text, strconv.FormatFloat(l.X, 'f', 2, 64), strconv.Itoa(l.Level)})
			}
			s.title("Zeitmarken %s, %s", args[1], s.day)
			return s.emit(placed, []string{"Zeit", "Position", "Ebene"}, rows)
		},
	}
	cmd.Flags().Float64Var(&minDistance, "min-distance", 0, "label conflict distance in hours (overrides config)")
	return cmd
}

// employeeLabels lays out the start and end labels of an employee's valid
// entries on day d.
func employeeLabels(w *roster.Week, d roster.Weekday, name string, minDistance float64) ([]labels.Label, error) {
	emp, ok := w.Employee(name)
	if !ok {
		return nil, notFound("employee %q", name)
	}
	return labels.Assign(labels.ForEntries(name, emp.Entries(d)), minDistance), nil
}

func labelDistance(flag float64, cfg Config) float64 {
	switch {
	case flag > 0:
		return flag
	case cfg.Labels.MinDistance > 0:
		return cfg.Labels.MinDistance
	default:
		return labels.DefaultMinDistance
	}
}

func entryList(entries []roster.SlotEntry) string {
	parts := make([]string, 0, len(entries))
	for _, se := range entries {
		parts = append(parts, se.Entry.String())
	}
	return strings.Join(parts, "; ")
}

func joinAssignments(as []roster.Assignment) string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}

func notFound(format string, args ...any) error {
	return errors.New(errors.ErrCodeNotFound, format, args...)
}
