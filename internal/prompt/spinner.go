package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type spinDoneMsg struct{}

type spinModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinModel(title string) spinModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cursorStyle
	return spinModel{spinner: s, title: title}
}

func (m spinModel) Init() tea.Cmd { return m.spinner.Tick }

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinModel) View() string {
	if m.done {
		return markStyle.Render("✓") + " " + m.title + "\n"
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// Spin runs fn while a spinner titled title is drawn on w.
// When w is not a terminal the title is printed once instead.
// Spin always waits for fn to return and reports its error.
func Spin(ctx context.Context, w io.Writer, title string, fn func() error) error {
	if !isTerminal(w) {
		// best-effort: output write failure is non-actionable
		_, _ = fmt.Fprintln(w, title)
		return fn()
	}

	p := tea.NewProgram(newSpinModel(title), tea.WithOutput(w), tea.WithInput(nil), tea.WithContext(ctx))
	result := make(chan error, 1)
	go func() {
		result <- fn()
		p.Send(spinDoneMsg{})
	}()
	_, runErr := p.Run()
	err := <-result
	if err != nil {
		return err
	}
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return ctx.Err()
}
