package reconcile

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/worklog/internal/model"
)

// MatchMode selects how TODO_DONE titles find a task when no exact title matches.
type MatchMode string

const (
	MatchExact     MatchMode = "exact"
	MatchSubstring MatchMode = "substring"
	MatchFuzzy     MatchMode = "fuzzy"
)

// MatchModes lists the valid match modes.
var MatchModes = []string{string(MatchExact), string(MatchSubstring), string(MatchFuzzy)}

// matchTitle returns the index of the task in candidates matching query.
// An exact title always wins; the mode decides the fallback.
func matchTitle(query string, candidates []model.Task, mode MatchMode) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, false
	}

	for i, t := range candidates {
		if t.Title == query {
			return i, true
		}
	}

	switch mode {
	case MatchSubstring:
		q := strings.ToLower(query)
		for i, t := range candidates {
			if strings.Contains(strings.ToLower(t.Title), q) {
				return i, true
			}
		}
	case MatchFuzzy:
		// FindFrom returns matches sorted by score, best first.
		if matches := fuzzy.FindFrom(query, titleSource(candidates)); len(matches) > 0 {
			return matches[0].Index, true
		}
	}
	return 0, false
}

// titleSource implements fuzzy.Source over task titles.
type titleSource []model.Task

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }
