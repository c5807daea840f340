package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	dxcontext "github.com/wasabi0522/dxflow/internal/context"
	dxexec "github.com/wasabi0522/dxflow/internal/exec"
	"github.com/wasabi0522/dxflow/internal/flow"
	"github.com/wasabi0522/dxflow/internal/git"
	"github.com/wasabi0522/dxflow/internal/prompt"
	"github.com/wasabi0522/dxflow/internal/scaffold"
	"github.com/wasabi0522/dxflow/internal/setup"
)

// App holds the dependency resolution functions and builds the CLI command tree.
type App struct {
	resolveDeps func(dir string) (*deps, error)
	resolveRepo func(dir string) (*dxcontext.Context, error)
	newPrompter func(cmd *cobra.Command) (prompt.Prompter, error)
	getwd       func() (string, error)
	verbose     bool
}

// NewApp creates an App with default dependency resolvers.
func NewApp() *App {
	return &App{
		resolveDeps: defaultResolveDeps,
		resolveRepo: defaultResolveRepo,
		newPrompter: defaultPrompter,
		getwd:       os.Getwd,
	}
}

// deps are the collaborators bound to one working directory.
type deps struct {
	dir  string
	exec dxexec.Executor
	git  git.Client
}

func defaultResolveDeps(dir string) (*deps, error) {
	return resolveDepsWithExec(dir, dxexec.NewDefaultExecutor().InDir(dir))
}

func resolveDepsWithExec(dir string, e dxexec.Executor) (*deps, error) {
	if err := e.LookPath("git"); err != nil {
		return nil, fmt.Errorf("required command 'git' not found")
	}
	return &deps{dir: dir, exec: e, git: git.NewClient(e)}, nil
}

func defaultResolveRepo(dir string) (*dxcontext.Context, error) {
	return dxcontext.NewResolver(dir).Resolve()
}

// defaultPrompter asks on the terminal. Questions are drawn on stderr so that
// stdout only carries command output.
func defaultPrompter(cmd *cobra.Command) (prompt.Prompter, error) {
	return prompt.NewTerminal(os.Stdin, cmd.ErrOrStderr())
}

// logger returns the verbose logger, or nil when verbose logging is off.
func (a *App) logger(w io.Writer) *slog.Logger {
	if !a.verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (a *App) wizardOpts(w io.Writer) []flow.Option {
	if l := a.logger(w); l != nil {
		return []flow.Option{flow.WithLogger(l)}
	}
	return nil
}

func (a *App) scaffoldOpts(w io.Writer) []scaffold.Option {
	if l := a.logger(w); l != nil {
		return []scaffold.Option{scaffold.WithLogger(l)}
	}
	return nil
}

func (a *App) setupOpts(w io.Writer) []setup.Option {
	if l := a.logger(w); l != nil {
		return []setup.Option{setup.WithLogger(l)}
	}
	return nil
}
