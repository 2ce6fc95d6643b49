// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/ui/styles"
)

// TaskTableHeaders are the columns of TaskTableRow.
var TaskTableHeaders = []string{"", "PRI", "TITLE", "TAGS", "DUE", "ID"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// TaskTableRow returns the columns for one task: status symbol, priority,
// title, tags, due date and id. Due dates are colored relative to today.
func TaskTableRow(t model.Task, today model.Date) []string {
	pri := ""
	if t.Priority != 0 {
		pri = strconv.Itoa(t.Priority)
	}

	title := t.Title
	if t.Status == model.StatusCanceled {
		title = styles.MutedStyle.Render(title)
	}

	var tags string
	if len(t.Tags) > 0 {
		tags = "@" + strings.Join(t.Tags, " @")
	}

	due := ""
	if t.Status == model.StatusOpen {
		due = styles.FormatDue(t.Due, today)
	} else if t.Due != nil {
		due = t.Due.String()
	}

	return []string{
		styles.FormatStatus(t.Status),
		pri,
		title,
		tags,
		due,
		styles.MutedStyle.Render(t.ID),
	}
}
