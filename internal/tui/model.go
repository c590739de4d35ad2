package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for the report progress display.
type Model struct {
	tasks    []Task
	spinner  spinner.Model
	progress progress.Model
	events   <-chan Event
	repo     string
	cancel   func()
	done     bool
}

// doneMsg signals that the event channel was closed.
type doneMsg struct{}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRepo sets the repository shown in the header line.
func WithRepo(repo string) ModelOption {
	return func(m *Model) {
		m.repo = repo
	}
}

// WithCancel sets the function called when the user presses Ctrl+C. The
// terminal is in raw mode while the display runs, so the keypress never
// reaches the process as a signal.
func WithCancel(cancel func()) ModelOption {
	return func(m *Model) {
		m.cancel = cancel
	}
}

// NewModel creates a display fed by events.
func NewModel(events <-chan Event, opts ...ModelOption) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		tasks:   reportTasks(),
		spinner: s,
		progress: progress.New(
			progress.WithScaledGradient("#60a5fa", "#1e3a8a"),
			progress.WithWidth(25),
			progress.WithoutPercentage(),
		),
		events: events,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the spinner and the event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.cancel != nil {
				m.cancel()
			}
			m.done = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd

	case Event:
		for i := range m.tasks {
			if m.tasks[i].ID == msg.Task {
				m.tasks[i].apply(msg)
				break
			}
		}
		return m, waitForEvent(m.events)

	case doneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	if m.repo != "" {
		fmt.Fprintf(&b, "  Pull request report for %s\n", repoStyle.Render(m.repo))
	}
	for _, task := range m.tasks {
		b.WriteString(task.View(m.spinner.View(), m.progress))
		b.WriteByte('\n')
	}
	if !m.done {
		b.WriteString(hintStyle.Render("\n  Press Ctrl+C to cancel"))
	}
	b.WriteByte('\n')

	return b.String()
}

// waitForEvent reads the next event, or doneMsg once the channel is closed.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return doneMsg{}
		}
		return e
	}
}
