// Package views renders the generated markdown views: the global todo list
// and the two-day activity digest. Both are fully regenerated every run.
package views

import (
	"cmp"
	"slices"
	"strings"

	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/taskline"
)

// SortKey selects the primary order of the todo view.
type SortKey string

const (
	SortPriority SortKey = "priority"
	SortDue      SortKey = "due"
	SortCreated  SortKey = "created"
)

// SortKeys lists the valid sort keys.
var SortKeys = []string{string(SortPriority), string(SortDue), string(SortCreated)}

// Order is the direction non-zero priorities sort in.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Orders lists the valid priority orders.
var Orders = []string{string(OrderAsc), string(OrderDesc)}

// Options configures task ordering.
type Options struct {
	Sort          SortKey
	PriorityOrder Order
}

// Sort returns a sorted copy of tasks. Ties fall back to creation time, then ID.
func Sort(tasks []model.Task, opts Options) []model.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b model.Task) int {
		var c int
		switch opts.Sort {
		case SortDue:
			c = compareDue(a, b)
		case SortCreated:
		default:
			c = comparePriority(a, b, opts.PriorityOrder)
		}
		if c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// comparePriority orders prioritized tasks before unprioritized ones.
func comparePriority(a, b model.Task, order Order) int {
	switch {
	case a.Priority == b.Priority:
		return 0
	case a.Priority == 0:
		return 1
	case b.Priority == 0:
		return -1
	case order == OrderDesc:
		return cmp.Compare(b.Priority, a.Priority)
	default:
		return cmp.Compare(a.Priority, b.Priority)
	}
}

// compareDue orders tasks with a due date first, earliest first.
func compareDue(a, b model.Task) int {
	switch {
	case a.Due == nil && b.Due == nil:
		return 0
	case a.Due == nil:
		return 1
	case b.Due == nil:
		return -1
	default:
		return a.Due.Compare(b.Due.Time)
	}
}

// TodoView renders every open task, round-trippable through the task-line grammar.
func TodoView(tasks []model.Task, opts Options) string {
	var open []model.Task
	for _, t := range tasks {
		if t.Status == model.StatusOpen {
			open = append(open, t)
		}
	}

	var b strings.Builder
	b.WriteString("# Open tasks\n\n")
	if len(open) == 0 {
		b.WriteString("_No open tasks._\n")
		return b.String()
	}
	for _, t := range Sort(open, opts) {
		b.WriteString(taskline.Format(taskline.FromTask(t)))
		b.WriteString("\n")
	}
	return b.String()
}
