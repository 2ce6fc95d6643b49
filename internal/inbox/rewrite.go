package inbox

import (
	"strings"

	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/taskline"
)

// DropHint is the comment rendered in the emptied DROP zone.
const DropHint = "<!-- Move tasks here to delete them permanently. -->"

// Rewrite returns the inbox text after a run. tasks are rendered into their
// zones in the given order; the caller decides the sort.
func Rewrite(text string, tasks []model.Task, today model.Date) string {
	var parts [][]string
	listDone := false

	sections := splitSections(text)
	for i, s := range sections {
		switch s.kind {
		case kindPreamble:
			if body := trimBlank(s.lines); len(body) > 0 {
				parts = append(parts, body)
			}
			if !hasTodoList(sections) {
				parts = append(parts, TodoList(tasks))
				listDone = true
			}
		case kindTodoList:
			// Duplicate TODO LIST headers collapse into one.
			if !listDone {
				parts = append(parts, TodoList(tasks))
				listDone = true
			}
		case kindDay:
			// Today's block was processed; empty blocks are rolled forward.
			if s.date.Equal(today) || !hasContent(s.lines) {
				continue
			}
			parts = append(parts, sectionLines(sections[i]))
		default:
			parts = append(parts, sectionLines(sections[i]))
		}
	}
	parts = append(parts, DayTemplate(today))

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, line := range p {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// TodoList renders the "## TODO LIST" section.
func TodoList(tasks []model.Task) []string {
	byZone := make(map[Zone][]string)
	for _, t := range tasks {
		z := ZoneFor(t.Status)
		byZone[z] = append(byZone[z], taskline.Format(taskline.FromTask(t)))
	}

	lines := []string{"## TODO LIST"}
	for _, z := range Zones {
		lines = append(lines, "", "### "+string(z), "")
		if z == ZoneDrop {
			lines = append(lines, DropHint)
			continue
		}
		if items := byZone[z]; len(items) > 0 {
			lines = append(lines, items...)
		} else {
			lines = lines[:len(lines)-1]
		}
	}
	return lines
}

// DayTemplate renders an empty dated block.
func DayTemplate(day model.Date) []string {
	return []string{
		"## " + day.String(),
		"",
		"### " + subLog,
		"",
		"### " + subAdd,
		"",
		"### " + subDone,
	}
}

func hasTodoList(sections []section) bool {
	for _, s := range sections {
		if s.kind == kindTodoList {
			return true
		}
	}
	return false
}

func sectionLines(s section) []string {
	lines := s.lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return append([]string{s.header}, lines...)
}

// Template returns a fresh inbox holding tasks and an empty block for today.
func Template(tasks []model.Task, today model.Date) string {
	return Rewrite("# Inbox\n", tasks, today)
}
