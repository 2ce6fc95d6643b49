package reconcile

import (
	"time"

	"github.com/raphi011/worklog/internal/inbox"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/store"
	"github.com/raphi011/worklog/internal/taskline"
)

// Verb names a task operation in the change log.
type Verb string

const (
	VerbAdded     Verb = "added"
	VerbCompleted Verb = "completed"
	VerbCanceled  Verb = "canceled"
	VerbReopened  Verb = "reopened"
	VerbUpdated   Verb = "updated"
	VerbDeleted   Verb = "deleted"
)

// Sources of changes and skips besides the zones.
const (
	SourceAdd  = "TODO_ADD"
	SourceDone = "TODO_DONE"
)

// Change is one applied task operation.
type Change struct {
	At   time.Time
	Verb Verb
	// Task is the task after the change, or before it for VerbDeleted.
	Task   model.Task
	Source string
}

// Text returns the change as written to the day log, e.g. "added: Write docs (id:abc)".
func (c Change) Text() string {
	return string(c.Verb) + ": " + taskline.Body(taskline.FromTask(c.Task))
}

// Entry returns the change as a log entry.
func (c Change) Entry() model.Entry {
	return model.Entry{At: c.At, Kind: model.EntryChange, Text: c.Text()}
}

// Skip is an inbox reference that could not be applied.
type Skip struct {
	Source string
	Text   string
	Reason string
}

// Options configures Apply.
type Options struct {
	Now   time.Time
	Match MatchMode
}

// Result lists what Apply did.
type Result struct {
	Changes []Change
	Skips   []Skip
}

// Changed reports whether the store was modified.
func (r Result) Changed() bool {
	return len(r.Changes) > 0
}

// Count returns the number of changes with verb v.
func (r Result) Count(v Verb) int {
	n := 0
	for _, c := range r.Changes {
		if c.Verb == v {
			n++
		}
	}
	return n
}

// zonePrecedence decides which line wins when an ID appears in several zones.
var zonePrecedence = []inbox.Zone{inbox.ZoneDelete, inbox.ZoneDone, inbox.ZoneTodo}

type applier struct {
	doc   *inbox.Document
	store *store.Store
	// base is the store as the inbox was rendered from it.
	base    *store.Store
	dropped map[string]bool
	opts    Options
	res     Result
}

// Apply mutates s according to doc and returns the changes in order.
func Apply(doc *inbox.Document, s *store.Store, opts Options) Result {
	if opts.Match == "" {
		opts.Match = MatchExact
	}
	a := &applier{
		doc:     doc,
		store:   s,
		base:    s.Snapshot(),
		dropped: make(map[string]bool),
		opts:    opts,
	}

	a.applyDrops()
	for _, b := range doc.Pending {
		for _, raw := range b.Add {
			a.applyAdd(raw)
		}
	}
	for _, b := range doc.Pending {
		for _, raw := range b.Done {
			a.applyDone(raw)
		}
	}
	a.applyZones()

	return a.res
}

func (a *applier) emit(v Verb, t model.Task, source string) {
	a.res.Changes = append(a.res.Changes, Change{At: a.opts.Now, Verb: v, Task: t.Clone(), Source: source})
}

func (a *applier) skip(source, text, reason string) {
	a.res.Skips = append(a.res.Skips, Skip{Source: source, Text: text, Reason: reason})
}

func (a *applier) applyDrops() {
	for _, zl := range a.doc.Lines(inbox.ZoneDrop) {
		id := zl.Line.ID
		text := taskline.Body(zl.Line)
		if id == "" {
			a.skip(string(inbox.ZoneDrop), text, "no id")
			continue
		}
		t, ok := a.store.Get(id)
		if !ok {
			if !a.dropped[id] {
				a.skip(string(inbox.ZoneDrop), text, "unknown id")
			}
			continue
		}
		a.store.Delete(id)
		a.dropped[id] = true
		a.emit(VerbDeleted, t, string(inbox.ZoneDrop))
	}
}

// newTask inserts a task built from l with a fresh ID.
func (a *applier) newTask(l taskline.Line, status model.Status, source string) {
	t := model.Task{
		ID:        a.store.NewID(),
		Title:     l.Title,
		Status:    status,
		Priority:  l.Priority,
		Tags:      model.NormalizeTags(l.Tags),
		Due:       l.Due,
		CreatedAt: a.opts.Now,
		UpdatedAt: a.opts.Now,
	}
	// NewID guarantees a free ID, so Insert cannot fail.
	_ = a.store.Insert(t)
	a.emit(VerbAdded, t, source)
}

func (a *applier) applyAdd(raw string) {
	l := taskline.Parse(raw)
	if l.Title == "" {
		a.skip(SourceAdd, raw, "empty title")
		return
	}
	a.newTask(l, model.StatusOpen, SourceAdd)
}

func (a *applier) applyDone(raw string) {
	l := taskline.Parse(raw)

	var (
		t  model.Task
		ok bool
	)
	switch {
	case l.ID != "":
		t, ok = a.store.Get(l.ID)
		if !ok {
			a.skip(SourceDone, raw, "unknown id")
			return
		}
		switch t.Status {
		case model.StatusDone:
			a.skip(SourceDone, raw, "already done")
			return
		case model.StatusCanceled:
			a.skip(SourceDone, raw, "task is canceled")
			return
		}
	case l.Title == "":
		a.skip(SourceDone, raw, "empty title")
		return
	default:
		open := a.store.ByStatus(model.StatusOpen)
		i, found := matchTitle(l.Title, open, a.opts.Match)
		if !found {
			a.skip(SourceDone, raw, "no open task matches")
			return
		}
		t = open[i]
	}

	t.Status = model.StatusDone
	t.Tags = model.MergeTags(t.Tags, l.Tags)
	if t.Due == nil && l.Due != nil {
		due := *l.Due
		t.Due = &due
	}
	t.Touch(a.opts.Now)
	_ = a.store.Update(t)
	a.emit(VerbCompleted, t, SourceDone)
}

// lineRef identifies a zone line by position.
type lineRef struct {
	zone  inbox.Zone
	index int
}

func (a *applier) applyZones() {
	winners := make(map[string]lineRef)
	for _, z := range zonePrecedence {
		for i, zl := range a.doc.Lines(z) {
			if id := zl.Line.ID; id != "" {
				if _, ok := winners[id]; !ok {
					winners[id] = lineRef{z, i}
				}
			}
		}
	}

	for _, z := range inbox.Zones {
		if z == inbox.ZoneDrop {
			continue
		}
		for i, zl := range a.doc.Lines(z) {
			id := zl.Line.ID
			switch {
			case id == "":
				a.newTask(zl.Line, zl.Status, string(z))
			case winners[id] != (lineRef{z, i}):
				a.skip(string(z), taskline.Body(zl.Line), "id listed in a zone with higher precedence")
			case a.dropped[id]:
				a.skip(string(z), taskline.Body(zl.Line), "task was dropped")
			case !a.base.Has(id):
				// A hand-typed ID the store never issued.
				a.newTask(zl.Line, zl.Status, string(z))
			default:
				a.applyLine(zl)
			}
		}
	}
}

// applyLine writes the fields in which zl differs from the base record.
func (a *applier) applyLine(zl inbox.ZoneLine) {
	base, _ := a.base.Get(zl.Line.ID)
	cur, ok := a.store.Get(zl.Line.ID)
	if !ok {
		return
	}
	l := zl.Line
	changed := false
	statusChanged := false

	if zl.Status != base.Status && zl.Status != cur.Status {
		cur.Status = zl.Status
		changed, statusChanged = true, true
	}
	if !l.Malformed(taskline.FieldPriority) && l.Priority != base.Priority && l.Priority != cur.Priority {
		cur.Priority = l.Priority
		changed = true
	}
	if !model.SameTags(l.Tags, base.Tags) && !model.SameTags(l.Tags, cur.Tags) {
		cur.Tags = model.NormalizeTags(l.Tags)
		changed = true
	}
	if !l.Malformed(taskline.FieldDue) && !model.SameDate(l.Due, base.Due) && !model.SameDate(l.Due, cur.Due) {
		cur.Due = l.Due
		changed = true
	}
	if !changed {
		return
	}

	cur.Touch(a.opts.Now)
	_ = a.store.Update(cur)

	verb := VerbUpdated
	if statusChanged {
		switch cur.Status {
		case model.StatusDone:
			verb = VerbCompleted
		case model.StatusCanceled:
			verb = VerbCanceled
		default:
			verb = VerbReopened
		}
	}
	a.emit(verb, cur, string(zl.Zone))
}
