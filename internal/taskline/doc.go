// Package taskline parses and formats single task lines.
//
// The grammar is free-form and tolerant:
//
//	- [ ] {3} Write tests (@core,@api, due:2026-02-01) (id:abc123)
//
// All groups are optional except the title. Recognized tokens:
//
//   - {N}: priority (the first integer group wins)
//   - @tag: a tag, bare or inside a parenthesized meta group, comma separated
//   - due:YYYY-MM-DD: due date
//   - (id:token): stable identifier; absent for new tasks
//
// Anything else stays in the title in its original order, including malformed
// priority and due tokens. Malformed fields are reported through
// [Line.Malformed] so callers can keep the previous value for that field only.
//
// [Format] renders the canonical form, and Parse(Format(l)) yields l again.
package taskline
