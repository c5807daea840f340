package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/dxflow/internal/config"
	dxcontext "github.com/wasabi0522/dxflow/internal/context"
	dxexec "github.com/wasabi0522/dxflow/internal/exec"
	"github.com/wasabi0522/dxflow/internal/git"
	"github.com/wasabi0522/dxflow/internal/prompt"
	"github.com/wasabi0522/dxflow/internal/scaffold"
	"github.com/wasabi0522/dxflow/internal/setup"
	"github.com/wasabi0522/dxflow/internal/ui"
	"github.com/wasabi0522/dxflow/testutil"
)

func sfdxRepo(t *testing.T) *testutil.RepoBuilder {
	t.Helper()
	return testutil.NewRepo(t).WithFile(scaffold.ProjectFile, "{}\n")
}

func TestRunInit(t *testing.T) {
	ui.SetNoColor(true)
	t.Cleanup(func() { ui.SetNoColor(false) })

	t.Run("empty repository with defaults", func(t *testing.T) {
		gitIdentity(t)
		dir := sfdxRepo(t).WithInitialBranch("master").Empty().Build()
		a := &answers{numbers: []int{1}, inputs: []string{"", "", "", "", ""}}

		out, err := executeCommand(t, appIn(dir, a.prompter(t)), "init")
		require.NoError(t, err)

		cfg, err := config.Load(config.Path(dir))
		require.NoError(t, err)
		assert.Equal(t, "master", cfg.Branches[0].Production)
		assert.Equal(t, "develop", cfg.Branches[0].Develop)
		assert.Equal(t, "feature/", cfg.Prefixes.Feature)

		assert.ElementsMatch(t, []string{"master", "develop"}, testutil.Branches(t, dir))
		assert.Equal(t, "develop", testutil.CurrentBranch(t, dir))
		assert.Equal(t, "Initial Commit", testutil.Git(t, dir, "log", "-1", "--format=%s"))
		assert.FileExists(t, filepath.Join(dir, ".vscode", "dxflow.schema.json"))

		assert.Contains(t, out, "SFDX Project:")
		assert.Contains(t, out, "(no commits on master)")
		assert.Contains(t, out, "creating branches")
		assert.Contains(t, out, "Saved "+config.Path(dir))
		assert.Contains(t, out, "existing")
		assert.Contains(t, out, "created")
		assert.Contains(t, out, "Switched to 'develop'")
	})

	t.Run("json output", func(t *testing.T) {
		gitIdentity(t)
		dir := sfdxRepo(t).WithInitialBranch("master").Empty().Build()
		a := &answers{numbers: []int{1}, inputs: []string{"", "", "", "", ""}}

		stdout, stderr, err := executeCommandSplit(t, appIn(dir, a.prompter(t)), "init", "--json")
		require.NoError(t, err)
		assert.Contains(t, stderr, "creating branches")

		var res initResult
		require.NoError(t, json.Unmarshal([]byte(stdout), &res))
		assert.Equal(t, config.Path(dir), res.ConfigPath)
		require.Len(t, res.Config.Branches, 1)
		assert.Equal(t, setup.StatusCreated, res.Report.InitialCommit)
		assert.Equal(t, setup.StatusExisting, res.Report.Codebases[0].Production.Status)
		assert.Equal(t, setup.StatusCreated, res.Report.Codebases[0].Develop.Status)
		assert.Equal(t, setup.StatusCheckedOut, res.Report.Checkout.Status)
	})

	t.Run("existing branches without project check", func(t *testing.T) {
		dir := testutil.GitRepoWithBranches(t, "develop")
		a := &answers{
			numbers: []int{1},
			selects: []string{"main", "develop"},
			inputs:  []string{"", "", ""},
		}

		out, err := executeCommand(t, appIn(dir, a.prompter(t)), "init", "--no-project")
		require.NoError(t, err)
		assert.NotContains(t, out, "SFDX Project:")

		cfg, err := config.Load(config.Path(dir))
		require.NoError(t, err)
		assert.Equal(t, "main", cfg.Branches[0].Production)
		assert.Equal(t, "1", testutil.Git(t, dir, "rev-list", "--count", "HEAD"), "no initial commit on a repository with history")
		assert.Equal(t, "develop", testutil.CurrentBranch(t, dir))
	})

	t.Run("two codebases", func(t *testing.T) {
		dir := testutil.NewRepo(t).WithInitialBranch("master").WithBranch("develop").Build()
		// the pool is empty for codebase 2, so both of its branches are typed
		a := &answers{
			numbers: []int{2},
			selects: []string{"master", "develop"},
			inputs:  []string{"master2", "develop2", "", "", "", ""},
		}

		_, err := executeCommand(t, appIn(dir, a.prompter(t)), "init", "--no-project")
		require.NoError(t, err)

		cfg, err := config.Load(config.Path(dir))
		require.NoError(t, err)
		require.Len(t, cfg.Branches, 2)
		assert.Equal(t, "cb2", cfg.Branches[1].Prefix)
		assert.ElementsMatch(t, []string{"master", "develop", "master2", "develop2"}, testutil.Branches(t, dir))
	})

	t.Run("declining project creation", func(t *testing.T) {
		dir := testutil.GitRepo(t)
		a := &answers{confirms: []bool{false}}

		_, err := executeCommand(t, appIn(dir, a.prompter(t)), "init")
		assert.ErrorIs(t, err, errProjectRequired)
		assert.NoFileExists(t, config.Path(dir))
	})

	t.Run("declining git init", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, scaffold.ProjectFile), []byte("{}"), 0644))
		a := &answers{confirms: []bool{false}}

		_, err := executeCommand(t, appIn(dir, a.prompter(t)), "init")
		assert.ErrorIs(t, err, dxcontext.ErrNotRepository)
		assert.NoDirExists(t, filepath.Join(dir, ".git"))
	})

	t.Run("git init then setup", func(t *testing.T) {
		gitIdentity(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, scaffold.ProjectFile), []byte("{}"), 0644))
		a := &answers{confirms: []bool{true}, numbers: []int{1}, inputs: []string{"", "", "", "", ""}}

		_, err := executeCommand(t, appIn(dir, a.prompter(t)), "init")
		require.NoError(t, err)
		assert.DirExists(t, filepath.Join(dir, ".git"))
		assert.Subset(t, testutil.Branches(t, dir), []string{"master", "develop"})
		assert.Empty(t, testutil.Git(t, dir, "status", "--porcelain"))
	})

	t.Run("existing configuration kept", func(t *testing.T) {
		dir := sfdxRepo(t).Build()
		require.NoError(t, os.WriteFile(config.Path(dir), []byte("keep: me\n"), 0644))
		a := &answers{confirms: []bool{false}}
		p := a.prompter(t)

		out, err := executeCommand(t, appIn(dir, p), "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Kept")
		assert.Empty(t, p.NumberCalls())
		data, err := os.ReadFile(config.Path(dir))
		require.NoError(t, err)
		assert.Equal(t, "keep: me\n", string(data))
	})

	t.Run("aborted wizard writes nothing", func(t *testing.T) {
		dir := sfdxRepo(t).Build()
		a := &answers{numbers: []int{1}}

		_, err := executeCommand(t, appIn(dir, a.prompter(t)), "init")
		assert.ErrorIs(t, err, prompt.ErrAborted)
		assert.NoFileExists(t, config.Path(dir))
		assert.Equal(t, []string{"main"}, testutil.Branches(t, dir))
	})

	t.Run("deps error", func(t *testing.T) {
		_, err := executeCommand(t, appWithDepsError(errors.New("required command 'git' not found")), "init")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git")
	})

	t.Run("no terminal", func(t *testing.T) {
		app := appIn(t.TempDir(), nil)
		app.newPrompter = func(*cobra.Command) (prompt.Prompter, error) { return nil, prompt.ErrNotInteractive }

		_, err := executeCommand(t, app, "init")
		assert.ErrorIs(t, err, prompt.ErrNotInteractive)
	})

	t.Run("failed branches are reported", func(t *testing.T) {
		root := t.TempDir()
		g := &git.ClientMock{
			ListBranchesFunc: func(context.Context) ([]string, error) { return nil, nil },
			BranchExistsFunc: func(context.Context, string) (bool, error) { return false, nil },
			CreateBranchFunc: func(_ context.Context, name string) error {
				if name == "develop" {
					return errors.New("cannot lock ref")
				}
				return nil
			},
			CheckoutFunc: func(context.Context, string) error { return errors.New("invalid reference: develop") },
		}
		d := &deps{dir: root, exec: &dxexec.ExecutorMock{}, git: g}
		a := &answers{numbers: []int{1}, inputs: []string{"", "", "", "", ""}}

		out, err := executeCommand(t, appWithDeps(d, &dxcontext.Context{RepoRoot: root, HasCommits: true}, a.prompter(t)), "init", "--no-project")
		assert.ErrorIs(t, err, errSetupIncomplete)
		assert.Contains(t, out, "failed (cannot lock ref)")
		assert.Contains(t, out, "Could not check out 'develop'")
		assert.FileExists(t, config.Path(root), "configuration is saved before branches are created")
	})

	t.Run("scaffolds a project and continues inside it", func(t *testing.T) {
		root := t.TempDir()
		var resolved []string
		e := &dxexec.ExecutorMock{
			LookPathFunc: func(string) error { return nil },
			RunFunc: func(_ context.Context, name string, args ...string) error {
				project := filepath.Join(root, "demo")
				if err := os.MkdirAll(project, 0755); err != nil {
					return err
				}
				return os.WriteFile(filepath.Join(project, scaffold.ProjectFile), []byte("{}"), 0644)
			},
		}
		g := &git.ClientMock{
			ListBranchesFunc: func(context.Context) ([]string, error) { return nil, nil },
			BranchExistsFunc: func(context.Context, string) (bool, error) { return false, nil },
			CreateBranchFunc: func(context.Context, string) error { return nil },
			CheckoutFunc:     func(context.Context, string) error { return nil },
			AddAllFunc:       func(context.Context) error { return nil },
			CommitFunc:       func(context.Context, string) error { return nil },
		}
		a := &answers{
			confirms: []bool{true, false},
			inputs:   []string{"demo", "", "", "", "", "", "", "", "", ""},
			numbers:  []int{1},
		}
		app := &App{
			resolveDeps: func(dir string) (*deps, error) {
				resolved = append(resolved, dir)
				return &deps{dir: dir, exec: e, git: g}, nil
			},
			resolveRepo: func(dir string) (*dxcontext.Context, error) {
				return &dxcontext.Context{RepoRoot: dir}, nil
			},
			newPrompter: func(*cobra.Command) (prompt.Prompter, error) { return a.prompter(t), nil },
			getwd:       func() (string, error) { return root, nil },
		}

		out, err := executeCommand(t, app, "init")
		require.NoError(t, err)
		project := filepath.Join(root, "demo")
		assert.Equal(t, []string{root, project}, resolved)
		assert.Contains(t, out, "Project created on "+project)
		assert.FileExists(t, config.Path(project))
		assert.Len(t, g.CommitCalls(), 1)
		require.Len(t, e.RunCalls(), 1)
		assert.Equal(t, []string{"force:project:create", "-n", "demo"}, e.RunCalls()[0].Args)
	})
}

func TestPrintReport(t *testing.T) {
	ui.SetNoColor(true)
	t.Cleanup(func() { ui.SetNoColor(false) })

	r := &setup.Report{
		InitialCommit: setup.StatusFailed,
		Codebases: []setup.CodebaseResult{
			{
				Production: setup.BranchResult{Name: "master", Status: setup.StatusExisting},
				Develop:    setup.BranchResult{Name: "develop", Status: setup.StatusCreated},
			},
			{
				Production: setup.BranchResult{Name: "master2", Status: setup.StatusCreated},
				Develop:    setup.BranchResult{Name: "master2", Status: setup.StatusCreated},
				Prefix:     "cb2",
			},
		},
		Checkout: setup.BranchResult{Name: "develop", Status: setup.StatusCheckedOut},
	}

	var buf bytes.Buffer
	printReport(&buf, r)
	out := buf.String()
	assert.Contains(t, out, "CODEBASE")
	assert.Contains(t, out, "production")
	assert.Contains(t, out, "master2")
	assert.Contains(t, out, "initial commit could not be created")
	assert.Contains(t, out, "Switched to 'develop'")
}

func TestPrintReportHighlightsCheckout(t *testing.T) {
	ui.SetNoColor(false)
	t.Cleanup(func() { ui.SetNoColor(false) })

	var buf bytes.Buffer
	printReport(&buf, &setup.Report{Checkout: setup.BranchResult{Name: "develop", Status: setup.StatusCheckedOut}})
	assert.Contains(t, buf.String(), "Switched to '"+ui.Bold("develop")+"'")
	assert.NotEqual(t, "develop", ui.Bold("develop"))
}

func TestHeadText(t *testing.T) {
	tests := []struct {
		name string
		repo dxcontext.Context
		want string
	}{
		{"branch with commits", dxcontext.Context{HeadBranch: "main", HasCommits: true}, "on main"},
		{"unborn branch", dxcontext.Context{HeadBranch: "master"}, "no commits on master"},
		{"detached", dxcontext.Context{HasCommits: true}, "detached HEAD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, headText(&tt.repo))
		})
	}
}
