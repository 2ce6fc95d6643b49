package inbox

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/taskline"
)

// Zone is one list of the TODO LIST section.
type Zone string

const (
	ZoneTodo   Zone = "TODO"
	ZoneDone   Zone = "DONE"
	ZoneDelete Zone = "DELETE"
	ZoneDrop   Zone = "DROP"
)

// Zones lists the zones in document order.
var Zones = []Zone{ZoneTodo, ZoneDone, ZoneDelete, ZoneDrop}

// Status returns the task status a zone implies. DROP implies none.
func (z Zone) Status() (model.Status, bool) {
	switch z {
	case ZoneTodo:
		return model.StatusOpen, true
	case ZoneDone:
		return model.StatusDone, true
	case ZoneDelete:
		return model.StatusCanceled, true
	}
	return "", false
}

// ZoneFor returns the zone a task with status s is rendered in.
func ZoneFor(s model.Status) Zone {
	switch s {
	case model.StatusDone:
		return ZoneDone
	case model.StatusCanceled:
		return ZoneDelete
	default:
		return ZoneTodo
	}
}

// ZoneLine is a task line found in a zone.
type ZoneLine struct {
	Zone Zone
	// Status is the zone status refined by the checkbox ("[v]" or "[x]" in TODO).
	Status model.Status
	Line   taskline.Line
}

// LogLine is a plain note from a LOG subsection.
type LogLine struct {
	Clock string // "HH:MM" or empty
	Text  string
}

// Block is a dated block for the processing day.
type Block struct {
	Date   model.Date
	Header string
	Clock  string // time from the header, "H:MM" or empty
	Log    []LogLine
	Add    []string
	Done   []string
}

// Document is the parsed inbox.
type Document struct {
	HasTodoList bool
	Zones       map[Zone][]ZoneLine
	// Pending holds the blocks dated today, in document order.
	Pending []Block
	// Stale holds the dates of other dated blocks that still have content.
	// Empty blocks left over from earlier runs are not stale.
	Stale []model.Date
}

// Lines returns the lines of zone z.
func (d *Document) Lines(z Zone) []ZoneLine {
	return d.Zones[z]
}

// IDs returns every task id referenced in the TODO LIST, in document order.
func (d *Document) IDs() []string {
	var ids []string
	for _, z := range Zones {
		for _, zl := range d.Zones[z] {
			if zl.Line.ID != "" {
				ids = append(ids, zl.Line.ID)
			}
		}
	}
	return ids
}

// Parse parses inbox text. Only blocks dated today are pending.
func Parse(text string, today model.Date) *Document {
	doc := &Document{Zones: make(map[Zone][]ZoneLine)}
	for _, s := range splitSections(text) {
		switch s.kind {
		case kindTodoList:
			doc.HasTodoList = true
			parseTodoList(doc, s.lines)
		case kindDay:
			if s.date.Equal(today) {
				doc.Pending = append(doc.Pending, parseBlock(s))
			} else if hasContent(s.lines) {
				doc.Stale = append(doc.Stale, s.date)
			}
		}
	}
	return doc
}

func parseTodoList(doc *Document, lines []string) {
	var (
		zone     Zone
		comments commentFilter
	)
	for _, line := range lines {
		if comments.skip(line) {
			continue
		}
		if name, ok := subheading(line); ok {
			zone = ""
			for _, z := range Zones {
				if string(z) == name {
					zone = z
				}
			}
			continue
		}
		if zone == "" || !taskline.IsListItem(line) {
			continue
		}
		l := taskline.Parse(line)
		if l.Title == "" {
			continue
		}
		doc.Zones[zone] = append(doc.Zones[zone], ZoneLine{
			Zone:   zone,
			Status: lineStatus(zone, l.Checkbox),
			Line:   l,
		})
	}
}

func lineStatus(z Zone, c taskline.Checkbox) model.Status {
	status, _ := z.Status()
	if z != ZoneTodo {
		return status
	}
	switch c {
	case taskline.CheckboxDone:
		return model.StatusDone
	case taskline.CheckboxCanceled:
		return model.StatusCanceled
	}
	return status
}

const (
	subLog  = "LOG"
	subAdd  = "TODO_ADD"
	subDone = "TODO_DONE"
)

var (
	bulletRe = regexp.MustCompile(`^[-*]\s*`)
	clockRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s+|$)`)
)

func parseBlock(s section) Block {
	b := Block{Date: s.date, Header: s.header, Clock: s.clock}
	var (
		sub      = subLog
		comments commentFilter
	)
	for _, line := range s.lines {
		if comments.skip(line) {
			continue
		}
		if name, ok := subheading(line); ok {
			switch name {
			case subAdd, subDone:
				sub = name
			default:
				sub = subLog
			}
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch sub {
		case subAdd:
			b.Add = appendNonEmpty(b.Add, trimmed)
		case subDone:
			b.Done = appendNonEmpty(b.Done, trimmed)
		default:
			if ll, ok := parseLogLine(trimmed); ok {
				b.Log = append(b.Log, ll)
			}
		}
	}
	return b
}

// appendNonEmpty skips bare bullets such as "-" or "- [ ]".
func appendNonEmpty(list []string, line string) []string {
	if taskline.Parse(line).Title == "" {
		return list
	}
	return append(list, line)
}

func parseLogLine(line string) (LogLine, bool) {
	text := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
	var ll LogLine
	if m := clockRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h < 24 && mm < 60 {
			ll.Clock = fmt.Sprintf("%02d:%02d", h, mm)
			text = strings.TrimSpace(text[len(m[0]):])
		}
	}
	if text == "" {
		return LogLine{}, false
	}
	ll.Text = text
	return ll, true
}
