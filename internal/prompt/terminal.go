package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	markStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
)

var _ Prompter = (*Terminal)(nil)

// Terminal asks questions on an interactive terminal, one Bubble Tea program
// per question.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal returns a Terminal reading from in and drawing on out.
// in must be a terminal.
func NewTerminal(in *os.File, out io.Writer) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, ErrNotInteractive
	}
	return &Terminal{in: in, out: out}, nil
}

// isTerminal reports whether w is a terminal device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return nil, ErrAborted
		}
		return nil, err
	}
	if a, ok := final.(interface{ isAborted() bool }); ok && a.isAborted() {
		return nil, ErrAborted
	}
	return final, nil
}

func (t *Terminal) Input(ctx context.Context, q Input) (string, error) {
	final, err := t.run(ctx, newInputModel(q))
	if err != nil {
		return "", err
	}
	return final.(inputModel).value, nil
}

func (t *Terminal) Number(ctx context.Context, q Number) (int, error) {
	v, err := t.Input(ctx, numberAsInput(q))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func (t *Terminal) Select(ctx context.Context, q Select) (int, error) {
	if len(q.Options) == 0 {
		return 0, fmt.Errorf("no options for %q", q.Message)
	}
	final, err := t.run(ctx, newSelectModel(q))
	if err != nil {
		return 0, err
	}
	return final.(selectModel).cursor, nil
}

func (t *Terminal) Confirm(ctx context.Context, q Confirm) (bool, error) {
	final, err := t.run(ctx, confirmModel{q: q})
	if err != nil {
		return false, err
	}
	return final.(confirmModel).value, nil
}

// Notify prints msg on its own line.
func (t *Terminal) Notify(msg string) {
	// best-effort: output write failure is non-actionable
	_, _ = fmt.Fprintln(t.out, msg)
}

func header(message string) string {
	return markStyle.Render("?") + " " + questionStyle.Render(message)
}

// inputModel is a single-line text question with inline validation.
type inputModel struct {
	q       Input
	input   textinput.Model
	errMsg  string
	value   string
	done    bool
	aborted bool
}

func newInputModel(q Input) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = q.Default
	ti.CharLimit = 256
	ti.Focus()
	return inputModel{q: q, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) isAborted() bool { return m.aborted }

// submit applies the default and validator to the current text.
// A rejected answer keeps the question open with the reason shown below it.
func (m inputModel) submit() (inputModel, bool) {
	v := m.input.Value()
	if v == "" {
		v = m.q.Default
	}
	if m.q.Validate != nil {
		if err := m.q.Validate(v); err != nil {
			m.errMsg = err.Error()
			return m, false
		}
	}
	m.value = v
	m.errMsg = ""
	m.done = true
	return m, true
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			next, ok := m.submit()
			if ok {
				return next, tea.Quit
			}
			return next, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return header(m.q.Message) + " " + answerStyle.Render(m.value) + "\n"
	}
	if m.aborted {
		return header(m.q.Message) + "\n"
	}
	var b strings.Builder
	b.WriteString(header(m.q.Message))
	if m.q.Default != "" {
		b.WriteString(" " + hintStyle.Render("("+m.q.Default+")"))
	}
	b.WriteString(" " + m.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(">> "+m.errMsg) + "\n")
	}
	return b.String()
}

// selectModel is a cursor-driven single-choice list.
type selectModel struct {
	q       Select
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(q Select) selectModel {
	cursor := q.Default
	if cursor < 0 || cursor >= len(q.Options) {
		cursor = 0
	}
	return selectModel{q: q, cursor: cursor}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) isAborted() bool { return m.aborted }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyUp:
		m.cursor = (m.cursor - 1 + len(m.q.Options)) % len(m.q.Options)
	case tea.KeyDown, tea.KeyTab:
		m.cursor = (m.cursor + 1) % len(m.q.Options)
	case tea.KeyRunes:
		switch key.String() {
		case "k":
			m.cursor = (m.cursor - 1 + len(m.q.Options)) % len(m.q.Options)
		case "j":
			m.cursor = (m.cursor + 1) % len(m.q.Options)
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return header(m.q.Message) + " " + answerStyle.Render(m.q.Options[m.cursor]) + "\n"
	}
	if m.aborted {
		return header(m.q.Message) + "\n"
	}
	var b strings.Builder
	b.WriteString(header(m.q.Message) + " " + hintStyle.Render("(use arrow keys)") + "\n")
	for i, opt := range m.q.Options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("❯ "+opt) + "\n")
			continue
		}
		b.WriteString("  " + opt + "\n")
	}
	return b.String()
}

// confirmModel is a yes/no question; Enter keeps the default.
type confirmModel struct {
	q       Confirm
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) isAborted() bool { return m.aborted }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.value, m.done = m.q.Default, true
		return m, tea.Quit
	case tea.KeyRunes:
		switch strings.ToLower(key.String()) {
		case "y":
			m.value, m.done = true, true
			return m, tea.Quit
		case "n":
			m.value, m.done = false, true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return header(m.q.Message) + " " + answerStyle.Render(answer) + "\n"
	}
	hint := "(y/N)"
	if m.q.Default {
		hint = "(Y/n)"
	}
	return header(m.q.Message) + " " + hintStyle.Render(hint) + "\n"
}
