package model

import (
	"encoding/json"
	"slices"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2026-02-01", NewDate(2026, time.February, 1), false},
		{" 2026-02-01 ", NewDate(2026, time.February, 1), false},
		{"2026-13-45", Date{}, true},
		{"tomorrow", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*3600)
	at := time.Date(2026, 1, 8, 1, 30, 0, 0, loc)
	if got := DateOf(at).String(); got != "2026-01-08" {
		t.Errorf("DateOf() = %s, want 2026-01-08", got)
	}
	if got := NewDate(2026, 1, 1).AddDays(-1).String(); got != "2025-12-31" {
		t.Errorf("AddDays(-1) = %s, want 2025-12-31", got)
	}
}

func TestNormalizeTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"blank only", []string{" ", ""}, nil},
		{"sorted dedup", []string{"b", "a", "b"}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeTags(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("NormalizeTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if !SameTags([]string{"x", "y"}, []string{"y", "x", "x"}) {
		t.Error("SameTags should ignore order and duplicates")
	}
	if got := MergeTags([]string{"b"}, []string{"a", "b"}); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("MergeTags = %q", got)
	}
}

func TestTaskJSON(t *testing.T) {
	t.Parallel()

	due := NewDate(2026, 2, 1)
	task := Task{ID: "abcd1234", Title: "x", Status: StatusOpen, Due: &due}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatal(err)
	}
	var got Task
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if !SameDate(got.Due, task.Due) {
		t.Errorf("due = %v, want %v (json %s)", got.Due, task.Due, data)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	due := NewDate(2026, 2, 1)
	orig := Task{Tags: []string{"a"}, Due: &due}
	c := orig.Clone()
	c.Tags[0] = "z"
	*c.Due = c.Due.AddDays(1)

	if orig.Tags[0] != "a" || !orig.Due.Equal(due) {
		t.Errorf("Clone shares state with the original: %+v", orig)
	}
}
