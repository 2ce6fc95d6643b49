// Package hooks provides post-command hook execution with placeholder substitution.
//
// Hooks are shell commands defined in config that run after worklog commands
// like sync or init. They enable workflow automation such as committing the
// worklog directory, pushing it, or opening the inbox in an editor.
//
// # Hook Selection
//
//   - Automatic: Hooks with "on" config matching the command type run automatically
//   - Manual: "worklog hook NAME" runs a specific hook, --no-hook skips all
//
// Example config:
//
//	[hooks.commit]
//	command = "git add -A && git commit -qm {date}"
//	on = ["sync"]
//
// # Placeholder Substitution
//
//   - {root}, {inbox}, {todo}, {digest}: absolute file paths
//   - {date}: processing date (YYYY-MM-DD)
//   - {trigger}: command that triggered the hook (sync, init, manual)
//   - {key}, {key:-default}, {key:raw}: custom variables from --arg key=value
//
// All values are shell-quoted unless :raw is used.
//
// # Stdin Support
//
// Use --arg key=- to read piped stdin content into a variable:
//
//	echo "weekly review" | worklog hook note --arg text=-
package hooks
