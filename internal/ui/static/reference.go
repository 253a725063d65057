// Package static renders the reference for non-interactive output: section
// tables for `gitref list`, single cards for `gitref show`, and the category
// overview.
package static

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/render"
	"github.com/raphi011/gitref/internal/ui/styles"
)

// Column headers for command tables.
var (
	commandHeaders        = []string{"COMMAND", "DESCRIPTION"}
	commandExampleHeaders = []string{"COMMAND", "DESCRIPTION", "EXAMPLE"}
	categoryHeaders       = []string{"ID", "CATEGORY", "COMMANDS"}
)

// columnGap separates adjacent columns.
const columnGap = 2

// columns holds the display width of each table column. One set of widths is
// shared by every section of a rendering, so commands line up across them.
type columns []int

// measure returns the widest cell of each column over the headers and all
// row sets. Widths are display cells, so styled and Gujarati text align.
func measure(headers []string, tables ...[][]string) columns {
	widths := make(columns, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, rows := range tables {
		for _, row := range rows {
			for i, cell := range row {
				if i < len(widths) {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}
	return widths
}

// line renders one row padded to the column widths. The last column is left
// unpadded so lines carry no trailing blanks.
func (c columns) line(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", c[i]-lipgloss.Width(cell)+columnGap))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// table renders a bold header line followed by rows. Empty rows render nothing.
func (c columns) table(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	bold := make([]string, len(headers))
	for i, h := range headers {
		bold[i] = styles.Bold.Render(h)
	}

	var b strings.Builder
	b.WriteString(c.line(bold))
	for _, row := range rows {
		b.WriteString(c.line(row))
	}
	return b.String()
}

// SectionHeading returns "NN. Title" styled as a section header.
func SectionHeading(s render.SectionNode) string {
	return styles.SectionTitleStyle.Render(fmt.Sprintf("%s. %s", s.Number, s.Title))
}

// CommandRows converts a section's cards to table rows. The example column
// is added when withExamples is set; a collapsed card leaves it empty.
func CommandRows(s render.SectionNode, withExamples bool) [][]string {
	rows := make([][]string, 0, len(s.Cards))
	for _, c := range s.Cards {
		row := []string{styles.CommandStyle.Render(c.Command), c.Description}
		if withExamples {
			example := ""
			if c.Expanded {
				example = c.Example
			}
			row = append(row, example)
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderTree renders every section of the tree as a heading, description and
// command table, or the no-results placeholder.
func RenderTree(t render.Tree, withExamples bool) string {
	if t.NoResults != nil {
		return RenderNoResults(*t.NoResults)
	}

	headers := commandHeaders
	if withExamples {
		headers = commandExampleHeaders
	}

	tables := make([][][]string, len(t.Sections))
	for i, s := range t.Sections {
		tables[i] = CommandRows(s, withExamples)
	}
	cols := measure(headers, tables...)

	var b strings.Builder
	for i, s := range t.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(SectionHeading(s))
		b.WriteString("\n")
		if s.Description != "" {
			b.WriteString(styles.MutedStyle.Render(s.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(cols.table(headers, tables[i]))
	}
	return b.String()
}

// RenderNoResults renders the locale's empty-result placeholder.
func RenderNoResults(n render.NoResults) string {
	return styles.Bold.Render(n.Title) + "\n" + styles.MutedStyle.Render(n.Hint) + "\n"
}

// RenderCard renders a single command card with its example, as shown by
// `gitref show`. sectionTitle names where the card lives.
func RenderCard(c render.Card, sectionTitle string) string {
	var b strings.Builder
	b.WriteString(styles.CommandStyle.Bold(true).Render(c.Command))
	b.WriteString("  ")
	b.WriteString(styles.MutedStyle.Render(sectionTitle))
	b.WriteString("\n")
	b.WriteString(c.Description)
	b.WriteString("\n")
	if c.Expanded {
		b.WriteString("\n")
		b.WriteString(styles.InfoStyle.Render(c.ExampleLabel + ":"))
		b.WriteString("\n")
		b.WriteString(styles.ExampleStyle.Render(c.Example))
		b.WriteString("\n")
	}
	return b.String()
}

// CategoryRows lists the locale's categories with their command counts.
// The "all" row counts every command.
func CategoryRows(loc *catalog.Locale) [][]string {
	rows := make([][]string, 0, len(loc.Categories))
	for _, c := range loc.Categories {
		rows = append(rows, []string{c.ID, c.Label, strconv.Itoa(loc.CategoryCount(c.ID))})
	}
	return rows
}

// RenderCategories renders the category overview table.
func RenderCategories(loc *catalog.Locale) string {
	rows := CategoryRows(loc)
	return measure(categoryHeaders, rows).table(categoryHeaders, rows)
}
