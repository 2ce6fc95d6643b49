package inbox

import (
	"regexp"
	"strings"

	"github.com/raphi011/worklog/internal/model"
)

type sectionKind int

const (
	kindPreamble sectionKind = iota
	kindTodoList
	kindDay
	kindOther
)

// section is a "## " header with the lines that follow it.
type section struct {
	kind   sectionKind
	header string
	date   model.Date
	clock  string // optional "HH:MM" from the header
	lines  []string
}

var (
	todoListHeaderRe = regexp.MustCompile(`(?i)^##\s+TODO LIST\s*$`)
	dayHeaderRe      = regexp.MustCompile(`^##\s+(\d{4}-\d{2}-\d{2})(?:\s+(\d{1,2}:\d{2}))?\s*$`)
)

// splitLines splits text into lines without line terminators.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// splitSections cuts the document at level-two headers.
// The first section is always the preamble, possibly empty.
func splitSections(text string) []section {
	sections := []section{{kind: kindPreamble}}
	for _, line := range splitLines(text) {
		trimmed := strings.TrimRight(line, " \t")
		if !strings.HasPrefix(trimmed, "## ") {
			cur := &sections[len(sections)-1]
			cur.lines = append(cur.lines, line)
			continue
		}
		sections = append(sections, classify(trimmed))
	}
	return sections
}

func classify(header string) section {
	if todoListHeaderRe.MatchString(header) {
		return section{kind: kindTodoList, header: header}
	}
	if m := dayHeaderRe.FindStringSubmatch(header); m != nil {
		if d, err := model.ParseDate(m[1]); err == nil {
			return section{kind: kindDay, header: header, date: d, clock: m[2]}
		}
	}
	return section{kind: kindOther, header: header}
}

// subheading returns the upper-cased name of a "### " line.
func subheading(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "### ") {
		return "", false
	}
	return strings.ToUpper(strings.TrimSpace(trimmed[4:])), true
}

// commentFilter drops HTML comment lines, including multi-line comments.
type commentFilter struct {
	open bool
}

func (f *commentFilter) skip(line string) bool {
	trimmed := strings.TrimSpace(line)
	if f.open {
		if strings.Contains(trimmed, "-->") {
			f.open = false
		}
		return true
	}
	if strings.HasPrefix(trimmed, "<!--") {
		f.open = !strings.Contains(trimmed, "-->")
		return true
	}
	return false
}

// trimBlank removes leading and trailing blank lines.
func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// hasContent reports whether a dated block holds anything besides its
// subheadings, comments, blank lines and bare bullets.
func hasContent(lines []string) bool {
	var comments commentFilter
	for _, line := range lines {
		if comments.skip(line) {
			continue
		}
		if _, ok := subheading(line); ok {
			continue
		}
		if strings.Trim(line, "-*[] \t") == "" {
			continue
		}
		return true
	}
	return false
}
