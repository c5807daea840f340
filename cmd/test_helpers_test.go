package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/spf13/cobra"
	dxcontext "github.com/wasabi0522/dxflow/internal/context"
	"github.com/wasabi0522/dxflow/internal/prompt"
)

// appIn creates an App working in dir with real git and the given prompter.
func appIn(dir string, p prompt.Prompter) *App {
	return &App{
		resolveDeps: defaultResolveDeps,
		resolveRepo: defaultResolveRepo,
		newPrompter: func(*cobra.Command) (prompt.Prompter, error) { return p, nil },
		getwd:       func() (string, error) { return dir, nil },
	}
}

// appWithDeps creates an App that resolves to the given deps and repository.
func appWithDeps(d *deps, repo *dxcontext.Context, p prompt.Prompter) *App {
	return &App{
		resolveDeps: func(string) (*deps, error) { return d, nil },
		resolveRepo: func(string) (*dxcontext.Context, error) { return repo, nil },
		newPrompter: func(*cobra.Command) (prompt.Prompter, error) { return p, nil },
		getwd:       func() (string, error) { return d.dir, nil },
	}
}

// appWithDepsError creates an App whose resolvers return an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps: func(string) (*deps, error) { return nil, err },
		resolveRepo: func(string) (*dxcontext.Context, error) { return nil, err },
		newPrompter: func(*cobra.Command) (prompt.Prompter, error) { return nil, err },
		getwd:       os.Getwd,
	}
}

// executeCommand runs the CLI command tree with the given args and returns the output.
func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// executeCommandSplit is executeCommand with stdout and stderr kept apart.
func executeCommandSplit(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// answers scripts the replies of a terminal session. Each question kind takes
// its replies from its own queue; an empty input reply accepts the default.
// A question with no reply left is aborted.
type answers struct {
	inputs   []string
	numbers  []int
	selects  []string
	confirms []bool
}

func (a *answers) prompter(t *testing.T) *prompt.PrompterMock {
	t.Helper()
	return &prompt.PrompterMock{
		InputFunc: func(_ context.Context, q prompt.Input) (string, error) {
			if len(a.inputs) == 0 {
				return "", prompt.ErrAborted
			}
			v := a.inputs[0]
			a.inputs = a.inputs[1:]
			if v == "" {
				v = q.Default
			}
			if q.Validate != nil {
				if err := q.Validate(v); err != nil {
					t.Fatalf("%q rejected for %q: %v", v, q.Message, err)
				}
			}
			return v, nil
		},
		NumberFunc: func(context.Context, prompt.Number) (int, error) {
			if len(a.numbers) == 0 {
				return 0, prompt.ErrAborted
			}
			n := a.numbers[0]
			a.numbers = a.numbers[1:]
			return n, nil
		},
		SelectFunc: func(_ context.Context, q prompt.Select) (int, error) {
			if len(a.selects) == 0 {
				return 0, prompt.ErrAborted
			}
			label := a.selects[0]
			a.selects = a.selects[1:]
			for i, o := range q.Options {
				if o == label {
					return i, nil
				}
			}
			t.Fatalf("option %q not offered in %v", label, q.Options)
			return 0, nil
		},
		ConfirmFunc: func(context.Context, prompt.Confirm) (bool, error) {
			if len(a.confirms) == 0 {
				return false, prompt.ErrAborted
			}
			c := a.confirms[0]
			a.confirms = a.confirms[1:]
			return c, nil
		},
		NotifyFunc: func(string) {},
	}
}

// gitIdentity makes commits work without a user-level git configuration.
func gitIdentity(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
}
