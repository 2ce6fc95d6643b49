package styles

import (
	"github.com/raphi011/worklog/internal/model"
)

// Symbols holds the status markers used in tables and summaries
type Symbols struct {
	Open     string
	Done     string
	Canceled string
	Warning  string
	Problem  string
}

var defaultSymbols = Symbols{
	Open:     "○",
	Done:     "✓",
	Canceled: "✕",
	Warning:  "⚠",
	Problem:  "✗",
}

// asciiSymbols match the checkboxes of the markdown files
var asciiSymbols = Symbols{
	Open:     "[ ]",
	Done:     "[v]",
	Canceled: "[x]",
	Warning:  "!",
	Problem:  "x",
}

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// StatusSymbol returns the plain symbol for a task status.
func StatusSymbol(s model.Status) string {
	switch s {
	case model.StatusDone:
		return currentSymbols.Done
	case model.StatusCanceled:
		return currentSymbols.Canceled
	default:
		return currentSymbols.Open
	}
}

// FormatStatus returns the colored symbol for a task status.
func FormatStatus(s model.Status) string {
	switch s {
	case model.StatusDone:
		return SuccessStyle.Render(StatusSymbol(s))
	case model.StatusCanceled:
		return MutedStyle.Render(StatusSymbol(s))
	default:
		return NormalStyle.Render(StatusSymbol(s))
	}
}

// FormatDue colors a due date relative to today: red when overdue,
// orange when due within two days.
func FormatDue(due *model.Date, today model.Date) string {
	if due == nil {
		return ""
	}
	text := due.String()
	switch {
	case due.Before(today.Time):
		return ErrorStyle.Render(text)
	case !due.After(today.AddDays(2).Time):
		return WarningStyle.Render(text)
	default:
		return text
	}
}
