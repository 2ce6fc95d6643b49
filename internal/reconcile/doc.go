// Package reconcile applies a parsed inbox to the task store.
//
// [Apply] evaluates a fixed precedence on every run:
//
//  1. DROP lines delete their task permanently.
//  2. TODO_ADD intents create open tasks with fresh IDs.
//  3. TODO_DONE intents complete a task matched by ID or title.
//  4. TODO, DONE and DELETE lines are diffed against the store as it was
//     when the run started; differences in status, priority, tags and due
//     date are written back. When an ID appears in several zones, DELETE
//     wins over DONE, which wins over TODO.
//
// Tasks the inbox does not mention are left untouched. References that
// cannot be resolved are reported as [Skip] values, never as errors.
package reconcile
