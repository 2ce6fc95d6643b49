// Package inbox parses and rewrites the human-edited inbox document.
//
// # Document Layout
//
//	# Inbox                       <- preamble, kept as is
//
//	## TODO LIST
//
//	### TODO
//	- [ ] {3} Write tests (@core) (id:abc123)
//
//	### DONE
//	- [v] Ship v1 (id:def456)
//
//	### DELETE
//	- [x] Old idea (id:789abc)
//
//	### DROP
//	<!-- Move tasks here to delete them permanently. -->
//
//	## 2026-01-08
//
//	### LOG
//	- 09:30 Reviewed the design
//
//	### TODO_ADD
//	- Write docs @docs due:2026-01-10
//
//	### TODO_DONE
//	- Write tests
//
// # Parsing
//
// [Parse] is pure and tolerant: missing markers yield empty sections, HTML
// comments and non-list lines inside zones are ignored. Only dated blocks for
// the processing day are pending; blocks for other days are reported in
// [Document.Stale] and left alone.
//
// # Rewriting
//
// [Rewrite] regenerates the TODO LIST from the store, drops the processed
// blocks and appends exactly one empty block for today. Everything else is
// carried over in its original order.
package inbox
