package config

import "testing"

func TestMergeLocal_Nil(t *testing.T) {
	t.Parallel()

	global := Default()
	if got := MergeLocal(&global, nil); got != &global {
		t.Error("MergeLocal(nil) should return global unchanged")
	}
}

func TestMergeLocal(t *testing.T) {
	t.Parallel()

	global := Default()
	global.Root = "/data/worklog"
	global.Hooks = HooksConfig{Hooks: map[string]Hook{
		"commit": {Command: "git commit", On: []string{"sync"}},
		"edit":   {Command: "vim {inbox}"},
	}}

	disabled := false
	local := &LocalConfig{
		View:  ViewConfig{PriorityOrder: "desc"},
		Match: MatchConfig{Done: "fuzzy"},
		Hooks: HooksConfig{Hooks: map[string]Hook{
			"commit": {Enabled: &disabled},
			"edit":   {Command: "code {inbox}"},
			"push":   {Command: "git push", On: []string{"sync"}},
		}},
	}

	merged := MergeLocal(&global, local)

	if merged.Root != "/data/worklog" {
		t.Errorf("Root = %q, global-only setting lost", merged.Root)
	}
	if merged.View.Sort != DefaultSort || merged.View.PriorityOrder != "desc" {
		t.Errorf("View = %+v", merged.View)
	}
	if merged.Match.Done != "fuzzy" || merged.Theme != DefaultTheme {
		t.Errorf("Match/Theme = %+v %q", merged.Match, merged.Theme)
	}
	if _, ok := merged.Hooks.Hooks["commit"]; ok {
		t.Error("disabled hook still present")
	}
	if merged.Hooks.Hooks["edit"].Command != "code {inbox}" {
		t.Errorf("edit hook not overridden: %+v", merged.Hooks.Hooks["edit"])
	}
	if _, ok := merged.Hooks.Hooks["push"]; !ok {
		t.Error("local hook not added")
	}

	// Global is not mutated.
	if global.View.PriorityOrder != DefaultPriorityOrder || len(global.Hooks.Hooks) != 2 {
		t.Errorf("global mutated: %+v", global)
	}
}
