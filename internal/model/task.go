package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusOpen     Status = "open"
	StatusDone     Status = "done"
	StatusCanceled Status = "canceled"
)

// Statuses lists every valid status in inbox zone order.
var Statuses = []Status{StatusOpen, StatusDone, StatusCanceled}

// ParseStatus validates a stored status string.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Statuses, st) {
		return "", fmt.Errorf("invalid status %q", s)
	}
	return st, nil
}

// Task is a structured todo item.
type Task struct {
	ID        string    `yaml:"id" json:"id"`
	Title     string    `yaml:"title" json:"title"`
	Status    Status    `yaml:"status" json:"status"`
	Priority  int       `yaml:"priority,omitempty" json:"priority,omitempty"` // 0 = none
	Tags      []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Due       *Date     `yaml:"due,omitempty" json:"due,omitempty"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	c := t
	c.Tags = slices.Clone(t.Tags)
	if t.Due != nil {
		due := *t.Due
		c.Due = &due
	}
	return c
}

// Touch records a modification at now.
func (t *Task) Touch(now time.Time) {
	t.UpdatedAt = now
}

// HasTag reports whether the task carries tag.
func (t Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// NormalizeTags returns tags sorted and without duplicates or empty labels.
// Tag sets are unordered, so every stored and parsed tag list goes through here.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// SameTags compares two tag sets irrespective of order.
func SameTags(a, b []string) bool {
	return slices.Equal(NormalizeTags(a), NormalizeTags(b))
}

// MergeTags returns the union of two tag sets.
func MergeTags(a, b []string) []string {
	return NormalizeTags(append(slices.Clone(a), b...))
}
