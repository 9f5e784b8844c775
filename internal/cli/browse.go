package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newBrowseCmd creates the browse command, an interactive view of group
// membership per day.
func newBrowseCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse group staffing interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			var in []string
			if input != "" {
				in = []string{input}
			}
			w, _, err := loadWeek(ctx, cfg, in)
			if err != nil {
				return err
			}
			groups := cfg.reportOptions().Groups
			if len(groups) == 0 {
				groups = w.Groups(roster.DefaultGroupCount)
			}
			m := NewBrowseModel(w, query.New(w.Schedules, cfg.queryOptions()), groups)
			_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "workbook or JSON export (default: the .xlsx in input_path)")
	return cmd
}

// BrowseModel is the bubbletea model for browsing the groups of a week.
// Left and right switch the day, up and down the group.
type BrowseModel struct {
	Week   *roster.Week
	Engine *query.Engine
	Groups []roster.Assignment
	Day    roster.Weekday
	Cursor int
}

// NewBrowseModel creates a browse model starting at Monday and the first
// group.
func NewBrowseModel(w *roster.Week, e *query.Engine, groups []roster.Assignment) BrowseModel {
	return BrowseModel{Week: w, Engine: e, Groups: groups, Day: roster.Monday}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Groups)-1 {
			m.Cursor++
		}
	case "left", "h":
		if m.Day > roster.Monday {
			m.Day--
		}
	case "right", "l":
		if m.Day < roster.Friday {
			m.Day++
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("KW %d/%d", m.Week.CalendarWeek, m.Week.Year)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ day  ↑/↓ group  q quit"))
	b.WriteString("\n\n")

	days := make([]string, 0, len(roster.Weekdays))
	for _, d := range roster.Weekdays {
		if d == m.Day {
			days = append(days, listSelectedStyle.Render("["+d.String()+"]"))
		} else {
			days = append(days, listDimStyle.Render(d.String()))
		}
	}
	b.WriteString(strings.Join(days, "  "))
	b.WriteString("\n\n")

	if len(m.Groups) == 0 {
		b.WriteString(listDimStyle.Render("keine Gruppen"))
		return b.String()
	}

	for i, g := range m.Groups {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + string(g)))
		} else {
			b.WriteString(listNormalStyle.Render("  " + string(g)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	members := m.Engine.GroupMembership(m.Groups[m.Cursor], m.Day)
	if len(members) == 0 {
		b.WriteString(listDimStyle.Render("keine Einträge"))
		return b.String()
	}

	rows := make([][]string, 0, len(members))
	for _, mem := range members {
		rows = append(rows, []string{mem.Name, mem.Start().String(), entryList(mem.Primary), entryList(mem.Secondary)})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Beginn", "Gruppe", "Zusätzlich").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 3 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())

	if events := m.groupEvents(); len(events) > 0 {
		b.WriteString("\n\n")
		b.WriteString(StyleWarning.Render(strings.Join(events, "\n")))
	}
	return b.String()
}

// groupEvents describes the events of the current day that concern the
// selected group.
func (m BrowseModel) groupEvents() []string {
	group := m.Groups[m.Cursor]
	var out []string
	for _, imp := range m.Engine.AffectedByEvents(m.Week, m.Day) {
		if imp.Event.Target != group && imp.Event.Target != roster.CrossCutting {
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", imp.Event.Name, strings.Join(imp.Affected, ", ")))
	}
	return out
}
