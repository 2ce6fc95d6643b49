// Package doctor diagnoses a worklog root and optionally repairs it.
//
// Checks are grouped into three categories:
//
//   - [CategoryFiles]: missing root, inbox, store, log directory or views
//   - [CategoryInbox]: no TODO LIST section, ids unknown to the store,
//     ids listed twice, malformed priority or due tokens, unprocessed
//     blocks from earlier days, and a sync that is overdue
//   - [CategoryStore]: unreadable store files and duplicate task ids
//
// Each [Issue] carries a fix action when --fix can repair it. Inbox issues
// never have one: the next sync resolves them or they need a human.
//
// # Usage
//
//	report, err := doctor.Check(ctx, layout, today)  // collect issues
//	err := doctor.Run(ctx, layout, now, false)         // check and print
//	err := doctor.Run(ctx, layout, now, true)          // check, print and fix
package doctor
