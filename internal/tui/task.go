package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// Task is one line of the display.
type Task struct {
	ID        TaskID
	Name      string
	Status    TaskStatus
	Completed int
	Total     int
	Target    string
	Err       error
}

func newTask(id TaskID, name string) Task {
	return Task{ID: id, Name: name, Status: StatusPending}
}

// reportTasks returns the steps of a report run in display order.
func reportTasks() []Task {
	return []Task{
		newTask(TaskList, "Listing pull requests"),
		newTask(TaskFetch, "Fetching reviews and comments"),
		newTask(TaskWrite, "Writing report"),
	}
}

func (t *Task) apply(e Event) {
	t.Status = e.Status
	switch t.ID {
	case TaskList:
		if e.Status == StatusComplete {
			t.Total = e.Total
		}
	case TaskFetch:
		if e.Total > 0 {
			t.Completed, t.Total = e.Completed, e.Total
		}
	case TaskWrite:
		if e.Target != "" {
			t.Target = e.Target
		}
	}
	if e.Err != nil {
		t.Err = e.Err
	}
}

// fraction is the share of pull requests assembled, or 0 when unknown.
func (t Task) fraction() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Completed) / float64(t.Total)
}

// View renders the task line. The fetch step shows a bar while running.
func (t Task) View(spinnerFrame string, bar progress.Model) string {
	name := taskNameStyle.Render(t.Name)
	if t.Status == StatusPending {
		name = taskDimStyle.Render(t.Name)
	}
	line := fmt.Sprintf("  %s %s", statusIcon(t.Status, spinnerFrame), name)

	switch t.ID {
	case TaskList:
		if t.Status == StatusComplete {
			line += " " + countStyle.Render(fmt.Sprintf("(%s)", pullRequests(t.Total)))
		}
	case TaskFetch:
		if t.Status == StatusRunning && t.Total > 0 {
			line += " " + bar.ViewAs(t.fraction())
		}
		if t.Total > 0 {
			line += " " + countStyle.Render(fmt.Sprintf("fetched %d/%d PRs", t.Completed, t.Total))
		}
	case TaskWrite:
		if t.Target != "" {
			line += " " + countStyle.Render(t.Target)
		}
	}

	if t.Err != nil {
		line += " " + errorStyle.Render(t.Err.Error())
	}
	return line
}

func pullRequests(n int) string {
	if n == 1 {
		return "1 pull request"
	}
	return fmt.Sprintf("%d pull requests", n)
}
