package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryFiles represents missing workspace files or directories.
	CategoryFiles IssueCategory = "files"
	// CategoryInbox represents problems in the inbox document.
	CategoryInbox IssueCategory = "inbox"
	// CategoryStore represents problems with the task store.
	CategoryStore IssueCategory = "store"
)

// Fix actions
const (
	FixCreateDir   = "create_dir"
	FixCreateInbox = "create_inbox"
	FixCreateStore = "create_store"
	FixDedupe      = "dedupe_store"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // path, task id or date
	Description string        // human-readable description
	FixAction   string        // what --fix would do, empty if nothing
	Category    IssueCategory // issue category
}

// IssueStats tracks counts by category.
type IssueStats struct {
	FilesPresent int // workspace files that exist
	FilesMissing int
	InboxIssues  int
	Tasks        int // tasks in the store
	OpenTasks    int
	StoreIssues  int
	DaysSinceRun int // -1 if never synced
}

// Report is the result of Check.
type Report struct {
	Issues []Issue
	Stats  IssueStats
}

// Fixable returns the number of issues --fix can repair.
func (r Report) Fixable() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.FixAction != "" {
			n++
		}
	}
	return n
}
