// Package model defines the records shared by the worklog packages.
//
// A [Task] is a structured todo item owned by the task store. An [Entry] is a
// single line of a per-day log: either a plain work note or a change record
// emitted by the reconciler. Both are plain values; persistence lives in the
// store and journal packages.
//
// # Identity
//
// Task IDs are opaque and assigned once. Nothing in this package generates
// them; see [github.com/raphi011/worklog/internal/store.Store.NewID].
//
// # Dates
//
// [Date] is a calendar day without a time component. It marshals to and from
// "YYYY-MM-DD" in YAML and JSON so stored files stay readable.
package model
