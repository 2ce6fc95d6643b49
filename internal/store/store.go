package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/raphi011/worklog/internal/model"
)

// IDLength is the number of hex characters in a generated task ID.
const IDLength = 8

// Store is an ordered collection of tasks keyed by ID.
type Store struct {
	tasks []model.Task
	index map[string]int
	// duplicates holds IDs that appeared more than once on load.
	duplicates []string
	idSource   func() string
}

// New returns a store holding tasks in the given order.
// Later tasks with an already seen ID are dropped and reported by Duplicates.
func New(tasks ...model.Task) *Store {
	s := &Store{index: make(map[string]int, len(tasks))}
	for _, t := range tasks {
		if _, ok := s.index[t.ID]; ok {
			s.duplicates = append(s.duplicates, t.ID)
			continue
		}
		s.insert(t)
	}
	return s
}

// fromRecords validates decoded records before building a store.
func fromRecords(tasks []model.Task) (*Store, error) {
	for i := range tasks {
		t := &tasks[i]
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("task %d (%q) has no id", i+1, t.Title)
		}
		status, err := model.ParseStatus(string(t.Status))
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		t.Status = status
		t.Tags = model.NormalizeTags(t.Tags)
	}
	return New(tasks...), nil
}

func (s *Store) insert(t model.Task) {
	s.index[t.ID] = len(s.tasks)
	s.tasks = append(s.tasks, t.Clone())
}

func (s *Store) reindex() {
	clear(s.index)
	for i, t := range s.tasks {
		s.index[t.ID] = i
	}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns a copy of the task with id.
func (s *Store) Get(id string) (model.Task, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Has reports whether a task with id exists.
func (s *Store) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Insert appends a new task. The ID must not be in use.
func (s *Store) Insert(t model.Task) error {
	if t.ID == "" {
		return fmt.Errorf("insert %q: empty id", t.Title)
	}
	if s.Has(t.ID) {
		return fmt.Errorf("insert %q: id %s already exists", t.Title, t.ID)
	}
	t.Tags = model.NormalizeTags(t.Tags)
	s.insert(t)
	return nil
}

// Update replaces the stored task with the same ID, keeping its position.
func (s *Store) Update(t model.Task) error {
	i, ok := s.index[t.ID]
	if !ok {
		return fmt.Errorf("update: unknown id %s", t.ID)
	}
	t.Tags = model.NormalizeTags(t.Tags)
	s.tasks[i] = t.Clone()
	return nil
}

// Delete removes the task with id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.reindex()
	return true
}

// All returns copies of every task in insertion order.
func (s *Store) All() []model.Task {
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// ByStatus returns the tasks with status in insertion order.
func (s *Store) ByStatus(status model.Status) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Duplicates returns the IDs dropped on load because they were already used.
func (s *Store) Duplicates() []string {
	return slices.Clone(s.duplicates)
}

// Snapshot returns an independent copy of the store.
func (s *Store) Snapshot() *Store {
	c := New(s.tasks...)
	c.idSource = s.idSource
	return c
}

// SetIDSource replaces the random ID source. Tests use it for stable IDs.
func (s *Store) SetIDSource(src func() string) {
	s.idSource = src
}

// NewID returns an ID that no stored task uses.
func (s *Store) NewID() string {
	src := s.idSource
	if src == nil {
		src = randomID
	}
	for {
		id := src()
		if id != "" && !s.Has(id) {
			return id
		}
	}
}

func randomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:IDLength]
}
