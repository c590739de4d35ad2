package tui

// TaskID identifies a step of a report run.
type TaskID int

const (
	TaskList  TaskID = iota // list pull requests and apply the date range
	TaskFetch               // fetch reviews, review comments and PR comments
	TaskWrite               // render or save the report
)

// TaskStatus is the state of a step.
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusRunning
	StatusComplete
	StatusError
)

// Final reports whether no further updates follow for a task in this status.
func (s TaskStatus) Final() bool {
	return s == StatusComplete || s == StatusError
}

// Event updates one step of the display.
type Event struct {
	Task   TaskID
	Status TaskStatus

	// Completed and Total count pull requests. For TaskList, Total is the
	// number left after date filtering; for TaskFetch, Completed of Total
	// have been assembled.
	Completed int
	Total     int

	// Target names what TaskWrite produced, e.g. "table" or a file path.
	Target string
	Err    error
}
