package taskline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/raphi011/worklog/internal/model"
)

// Checkbox is the marker between the list bullet and the title.
type Checkbox byte

const (
	CheckboxNone     Checkbox = 0
	CheckboxOpen     Checkbox = ' '
	CheckboxDone     Checkbox = 'v'
	CheckboxCanceled Checkbox = 'x'
)

// CheckboxFor returns the canonical checkbox for a task status.
func CheckboxFor(s model.Status) Checkbox {
	switch s {
	case model.StatusDone:
		return CheckboxDone
	case model.StatusCanceled:
		return CheckboxCanceled
	default:
		return CheckboxOpen
	}
}

// Field identifies a parsed field for malformed-token reporting.
type Field uint8

const (
	FieldPriority Field = 1 << iota
	FieldDue
)

// Line is the typed form of one task line.
type Line struct {
	Checkbox Checkbox
	Priority int // 0 when absent
	Title    string
	Tags     []string
	Due      *model.Date
	ID       string

	malformed Field
}

// Malformed reports whether the line carried an unparsable token for f.
func (l Line) Malformed(f Field) bool {
	return l.malformed&f != 0
}

var (
	checkboxRe = regexp.MustCompile(`^\[([ vVxX])\]\s*`)
	idRe       = regexp.MustCompile(`\(id:\s*([^()\s]+)\s*\)`)
	groupRe    = regexp.MustCompile(`\(([^()]*)\)`)
	priorityRe = regexp.MustCompile(`^\{(.*)\}$`)
	tagRe      = regexp.MustCompile(`^@([^\s@,(){}]+)$`)
)

const duePrefix = "due:"

// IsListItem reports whether raw starts with a "-" or "*" bullet.
func IsListItem(raw string) bool {
	_, ok := stripBullet(strings.TrimSpace(raw))
	return ok
}

func stripBullet(s string) (string, bool) {
	if s == "" || (s[0] != '-' && s[0] != '*') {
		return s, false
	}
	rest := s[1:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '[' {
		return s, false
	}
	return strings.TrimSpace(rest), true
}

// Parse converts raw into a Line. The bullet and checkbox are optional, so
// declarative intents like "Write tests @core" parse the same way.
func Parse(raw string) Line {
	s, _ := stripBullet(strings.TrimSpace(raw))

	var l Line
	if m := checkboxRe.FindStringSubmatch(s); m != nil {
		l.Checkbox = Checkbox(strings.ToLower(m[1])[0])
		s = s[len(m[0]):]
	}

	// The id is the trailing group; earlier id-like groups stay in the title.
	if all := idRe.FindAllStringSubmatchIndex(s, -1); len(all) > 0 {
		m := all[len(all)-1]
		l.ID = s[m[2]:m[3]]
		s = s[:m[0]] + s[m[1]:]
	}

	s = groupRe.ReplaceAllStringFunc(s, expandMetaGroup)

	var words []string
	for _, tok := range strings.Fields(s) {
		if !l.consume(tok) {
			words = append(words, tok)
		}
	}
	l.Title = strings.Join(words, " ")
	l.Tags = model.NormalizeTags(l.Tags)
	return l
}

// expandMetaGroup replaces a parenthesized group made only of tag and due
// tokens by its bare tokens. Other groups are part of the title.
func expandMetaGroup(group string) string {
	inner := group[1 : len(group)-1]
	tokens := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(tokens) == 0 {
		return group
	}
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, "@") && !strings.HasPrefix(tok, duePrefix) {
			return group
		}
	}
	return " " + strings.Join(tokens, " ") + " "
}

// consume applies a token to the line and reports whether it was used.
func (l *Line) consume(tok string) bool {
	if m := priorityRe.FindStringSubmatch(tok); m != nil {
		p, err := strconv.Atoi(strings.TrimSpace(m[1]))
		if err != nil {
			l.malformed |= FieldPriority
			return false
		}
		// {0} is no priority, so it stays text like a repeated token.
		if p == 0 || l.Priority != 0 {
			return false
		}
		l.Priority = p
		return true
	}

	if strings.HasPrefix(tok, "@") && strings.Contains(strings.Trim(tok, ","), ",") {
		parts := strings.Split(strings.Trim(tok, ","), ",")
		for _, p := range parts {
			if !tagRe.MatchString(p) {
				return false
			}
		}
		for _, p := range parts {
			l.Tags = append(l.Tags, p[1:])
		}
		return true
	}

	tok = strings.TrimRight(tok, ",")
	if m := tagRe.FindStringSubmatch(tok); m != nil {
		l.Tags = append(l.Tags, m[1])
		return true
	}

	if strings.HasPrefix(tok, duePrefix) {
		due, err := model.ParseDate(strings.TrimPrefix(tok, duePrefix))
		if err != nil {
			l.malformed |= FieldDue
			return false
		}
		if l.Due != nil {
			return false
		}
		l.Due = &due
		return true
	}

	return false
}

// Format renders l in canonical form, starting with "- [c] ".
func Format(l Line) string {
	cb := l.Checkbox
	if cb == CheckboxNone {
		cb = CheckboxOpen
	}
	return fmt.Sprintf("- [%c] %s", cb, Body(l))
}

// Body renders l without bullet and checkbox. Change-log entries use this form.
func Body(l Line) string {
	var b strings.Builder
	if l.Priority != 0 {
		fmt.Fprintf(&b, "{%d} ", l.Priority)
	}
	b.WriteString(l.Title)

	var meta []string
	if tags := model.NormalizeTags(l.Tags); len(tags) > 0 {
		meta = append(meta, "@"+strings.Join(tags, ",@"))
	}
	if l.Due != nil {
		meta = append(meta, duePrefix+l.Due.String())
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(meta, ", "))
	}
	if l.ID != "" {
		fmt.Fprintf(&b, " (id:%s)", l.ID)
	}
	return b.String()
}

// FromTask builds the line for a stored task, with the checkbox of its status.
func FromTask(t model.Task) Line {
	return Line{
		Checkbox: CheckboxFor(t.Status),
		Priority: t.Priority,
		Title:    t.Title,
		Tags:     model.NormalizeTags(t.Tags),
		Due:      t.Due,
		ID:       t.ID,
	}
}
