// Package history records the most recent sync run.
// doctor uses it to report how long the inbox has gone unprocessed.
package history

import (
	"encoding/json"
	"os"
	"time"

	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/storage"
)

// Run describes one completed sync
type Run struct {
	At      time.Time      `json:"at"`
	Date    model.Date     `json:"date"`
	Notes   int            `json:"notes"`
	Changes map[string]int `json:"changes,omitempty"` // verb -> count
	Skips   int            `json:"skips"`
}

// Total returns the number of changes of any kind.
func (r *Run) Total() int {
	n := 0
	for _, c := range r.Changes {
		n += c
	}
	return n
}

// DaysSince returns the number of calendar days between the run and today.
func (r *Run) DaysSince(today model.Date) int {
	return int(today.Sub(r.Date.Time).Hours() / 24)
}

// Load reads the last run record.
// Returns nil (no error) when no run was recorded yet.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var r Run
	if err := json.Unmarshal(data, &r); err != nil {
		// Corrupted - treat as never run
		return nil, nil
	}

	return &r, nil
}

// Save writes the record to disk atomically
func (r *Run) Save(path string) error {
	return storage.SaveJSON(path, r)
}
