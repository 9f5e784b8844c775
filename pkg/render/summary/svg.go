// Package summary draws the leadership view as SVG tables: shift-bucket
// occupancy per day, hours per group and hours per qualification.
package summary

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dienstplan/dienstplan/pkg/render"
	"github.com/dienstplan/dienstplan/pkg/report"
)

const (
	margin      = 20.0
	labelColumn = 160.0
	cellWidth   = 90.0
	lineHeight  = 20.0
	tableGap    = 30.0
)

// Table is a titled grid of text cells. The first column holds row labels.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// RenderSVG draws v. The leadership view fits on one page.
func RenderSVG(v report.LeaderView) []byte {
	tables := Tables(v)

	cols := 0
	height := margin + 30
	for _, t := range tables {
		cols = max(cols, len(t.Header))
		height += float64(len(t.Rows)+2)*lineHeight + tableGap
	}
	width := 2*margin + labelColumn + float64(max(cols-1, 0))*cellWidth

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="sans-serif">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")
	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="16" font-weight="bold">%s</text>`+"\n",
		margin, margin+10, render.EscapeXML(Title(v)))

	y := margin + 30
	for _, t := range tables {
		y = renderTable(&buf, t, y)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// Title returns the heading of the leadership page.
func Title(v report.LeaderView) string {
	return fmt.Sprintf("Leitungsansicht %d, KW %d", v.Year, v.CalendarWeek)
}

func renderTable(buf *bytes.Buffer, t Table, top float64) float64 {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="13" font-weight="bold">%s</text>`+"\n",
		margin, top+14, render.EscapeXML(t.Title))

	y := top + lineHeight
	renderLine(buf, t.Header, y, true)
	for i, row := range t.Rows {
		y += lineHeight
		if i%2 == 0 {
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#f2f2f2"/>`+"\n",
				margin, y, labelColumn+float64(len(t.Header)-1)*cellWidth, lineHeight)
		}
		renderLine(buf, row, y, false)
	}
	return y + lineHeight + tableGap
}

func renderLine(buf *bytes.Buffer, cells []string, top float64, bold bool) {
	weight := ""
	if bold {
		weight = ` font-weight="bold"`
	}
	for i, c := range cells {
		x, anchor := margin+4, "start"
		if i > 0 {
			x, anchor = margin+labelColumn+float64(i)*cellWidth-6, "end"
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11" text-anchor="%s"%s>%s</text>`+"\n",
			x, top+14, anchor, weight, render.EscapeXML(c))
	}
}

// Tables returns the leadership tables as text rows, also used by the
// terminal output.
func Tables(v report.LeaderView) []Table {
	header := []string{""}
	for _, d := range v.Days {
		header = append(header, d.Day.String())
	}

	buckets := Table{Title: "Dienstbelegung", Header: header}
	if len(v.Days) > 0 {
		for i, b := range v.Days[0].Buckets {
			row := []string{b.Name}
			for _, d := range v.Days {
				row = append(row, bucketCell(d.Buckets[i].Count, d.Buckets[i].Names))
			}
			buckets.Rows = append(buckets.Rows, row)
		}
	}

	withTotal := append(append([]string(nil), header...), "Woche")

	groups := Table{Title: "Stunden je Gruppe", Header: withTotal}
	for i, g := range v.GroupTotals {
		row := []string{string(g.Assignment)}
		for _, d := range v.Days {
			row = append(row, hours(d.Groups[i].Hours))
		}
		groups.Rows = append(groups.Rows, append(row, hours(g.Hours)))
	}

	quals := Table{Title: "Stunden je Qualifikation", Header: withTotal}
	for i, q := range v.QualificationTotals {
		row := []string{q.Qualification}
		for _, d := range v.Days {
			row = append(row, hours(d.Qualifications[i].Hours))
		}
		quals.Rows = append(quals.Rows, append(row, hours(q.Hours)))
	}

	return []Table{buckets, groups, quals}
}

func bucketCell(count int, names []string) string {
	if count == 0 {
		return "0"
	}
	return fmt.Sprintf("%d (%d)", count, len(names))
}

func hours(h float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", h), ".", ",", 1)
}
