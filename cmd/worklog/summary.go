package main

import (
	"fmt"
	"strings"

	"github.com/raphi011/worklog/internal/engine"
	"github.com/raphi011/worklog/internal/reconcile"
	"github.com/raphi011/worklog/internal/ui/styles"
)

// renderSummary describes a sync run for the terminal.
func renderSummary(res *engine.Result) string {
	var b strings.Builder

	title := "Synced " + res.Date.String()
	if res.DryRun {
		title = "Dry run for " + res.Date.String() + " (nothing written)"
	}
	b.WriteString(styles.HeaderStyle.Render(title) + "\n")

	if !res.Changed() && len(res.Reconcile.Skips) == 0 {
		b.WriteString(styles.MutedStyle.Render("  nothing to do") + "\n")
		return b.String()
	}

	if n := len(res.Notes); n > 0 {
		fmt.Fprintf(&b, "  %s %s logged\n", styles.SuccessStyle.Render(styles.CurrentSymbols().Done), plural(n, "note"))
	}
	for _, c := range res.Reconcile.Changes {
		fmt.Fprintf(&b, "  %s %s\n", verbStyle(c.Verb), c.Text())
	}
	for _, sk := range res.Reconcile.Skips {
		fmt.Fprintf(&b, "  %s skipped %s %q: %s\n",
			styles.WarningStyle.Render(styles.CurrentSymbols().Warning), sk.Source, sk.Text, sk.Reason)
	}
	return b.String()
}

func verbStyle(v reconcile.Verb) string {
	sym := styles.CurrentSymbols()
	switch v {
	case reconcile.VerbAdded:
		return styles.AccentStyle.Render("+")
	case reconcile.VerbCompleted:
		return styles.SuccessStyle.Render(sym.Done)
	case reconcile.VerbCanceled:
		return styles.MutedStyle.Render(sym.Canceled)
	case reconcile.VerbDeleted:
		return styles.ErrorStyle.Render("-")
	case reconcile.VerbReopened:
		return styles.NormalStyle.Render(sym.Open)
	default:
		return styles.InfoStyle.Render("~")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
