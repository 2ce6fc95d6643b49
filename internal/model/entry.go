package model

import "time"

// EntryKind distinguishes plain notes from change records.
type EntryKind string

const (
	// EntryNote is a plain work note taken from the inbox LOG subsection.
	EntryNote EntryKind = "note"
	// EntryChange is a task operation recorded by the reconciler.
	EntryChange EntryKind = "change"
)

// ClockLayout is the time-of-day format used in log lines.
const ClockLayout = "15:04"

// Entry is one immutable line of a day log.
type Entry struct {
	At   time.Time
	Kind EntryKind
	Text string
}

// Day returns the calendar day the entry belongs to.
func (e Entry) Day() Date {
	return DateOf(e.At)
}

// Clock returns the entry time as "HH:MM".
func (e Entry) Clock() string {
	return e.At.Format(ClockLayout)
}
