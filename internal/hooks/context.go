package hooks

import (
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/workspace"
)

// ContextFromLayout builds a Context for the files of a worklog root.
func ContextFromLayout(l workspace.Layout, day model.Date, trigger CommandType, env map[string]string) Context {
	return Context{
		Root:    l.Root,
		Inbox:   l.Inbox,
		Todo:    l.TodoView,
		Digest:  l.Digest,
		Date:    day.String(),
		Trigger: string(trigger),
		Env:     env,
	}
}
