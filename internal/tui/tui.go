package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ciEnvVars mark environments where an animated display is unwanted.
var ciEnvVars = []string{
	"CI",
	"GITHUB_ACTIONS",
	"JENKINS_URL",
	"TRAVIS",
	"CIRCLECI",
	"GITLAB_CI",
	"BUILDKITE",
}

// Run renders the display inline on out until events is closed. Events sent
// after the display exits early (Ctrl+C) are drained so senders never block.
func Run(events <-chan Event, out io.Writer, opts ...ModelOption) error {
	p := tea.NewProgram(NewModel(events, opts...), tea.WithOutput(out))
	_, err := p.Run()
	for range events {
	}
	return err
}

// ShouldUseTUI reports whether out is an interactive terminal outside CI.
func ShouldUseTUI(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			return false
		}
	}
	return true
}

// Send delivers e to ch. Progress updates are dropped when the buffer is
// full; final states always arrive so no task is left spinning.
func Send(ch chan<- Event, e Event) {
	if ch == nil {
		return
	}
	if e.Status.Final() {
		ch <- e
		return
	}
	select {
	case ch <- e:
	default:
	}
}
