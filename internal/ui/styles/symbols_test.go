package styles

import (
	"strings"
	"testing"

	"github.com/raphi011/worklog/internal/model"
)

func TestStatusSymbol(t *testing.T) {
	Init("default")

	tests := []struct {
		status   model.Status
		expected string
	}{
		{model.StatusOpen, "○"},
		{model.StatusDone, "✓"},
		{model.StatusCanceled, "✕"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := StatusSymbol(tt.status); got != tt.expected {
				t.Errorf("StatusSymbol(%s) = %q, want %q", tt.status, got, tt.expected)
			}
			if got := FormatStatus(tt.status); !strings.Contains(got, tt.expected) {
				t.Errorf("FormatStatus(%s) = %q, want it to contain %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestStatusSymbol_Mono(t *testing.T) {
	Init("mono")
	defer Init("default")

	if got := StatusSymbol(model.StatusCanceled); got != "[x]" {
		t.Errorf("StatusSymbol(canceled) = %q, want %q", got, "[x]")
	}
}

func TestFormatDue(t *testing.T) {
	Init("mono")
	defer Init("default")

	today := model.NewDate(2026, 1, 8)
	date := func(d int) *model.Date {
		v := model.NewDate(2026, 1, d)
		return &v
	}

	if got := FormatDue(nil, today); got != "" {
		t.Errorf("FormatDue(nil) = %q, want empty", got)
	}
	for _, d := range []int{5, 8, 10, 20} {
		due := date(d)
		if got := FormatDue(due, today); !strings.Contains(got, due.String()) {
			t.Errorf("FormatDue(%s) = %q, want it to contain %q", due, got, due.String())
		}
	}
}
