package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wasabi0522/dxflow/internal/config"
	dxcontext "github.com/wasabi0522/dxflow/internal/context"
	"github.com/wasabi0522/dxflow/internal/flow"
	"github.com/wasabi0522/dxflow/internal/prompt"
	"github.com/wasabi0522/dxflow/internal/scaffold"
	"github.com/wasabi0522/dxflow/internal/setup"
	"github.com/wasabi0522/dxflow/internal/ui"
)

var (
	errProjectRequired = errors.New("a Salesforce DX project is required (use --no-project to skip this check)")
	errSetupIncomplete = errors.New("some branches could not be created")
)

type initOptions struct {
	json      bool
	noProject bool
}

// initResult is the JSON form of a completed init.
type initResult struct {
	ConfigPath string          `json:"config_path"`
	Config     *flow.GitConfig `json:"config"`
	Report     *setup.Report   `json:"report"`
}

func (a *App) initCmd() *cobra.Command {
	var opts initOptions
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Configure the branching convention of the repository",
		Long: "Asks for the long-lived branches of every codebase and the prefixes of support branches,\n" +
			"saves them to " + config.FileName + " and creates the missing branches.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.noProject, "no-project", false, "Skip the Salesforce DX project check")
	return cmd
}

func (a *App) runInit(cmd *cobra.Command, opts initOptions) error {
	ctx := cmd.Context()
	errOut := cmd.ErrOrStderr()

	dir, err := a.getwd()
	if err != nil {
		return err
	}
	d, err := a.resolveDeps(dir)
	if err != nil {
		return err
	}
	p, err := a.newPrompter(cmd)
	if err != nil {
		return err
	}

	if !opts.noProject {
		projectDir, err := a.ensureProject(ctx, errOut, d, p)
		if err != nil {
			return err
		}
		if projectDir != d.dir {
			if d, err = a.resolveDeps(projectDir); err != nil {
				return err
			}
		}
	}

	repo, err := a.ensureRepository(ctx, d, p)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(errOut, "Git repository: %s (%s)\n", repo.RepoRoot, headText(repo))

	path := config.Path(repo.RepoRoot)
	if _, err := os.Stat(path); err == nil {
		overwrite, err := p.Confirm(ctx, prompt.Confirm{
			Message: fmt.Sprintf("%s already exists. Do you want to replace it?", config.FileName),
		})
		if err != nil {
			return err
		}
		if !overwrite {
			_, _ = fmt.Fprintf(errOut, "Kept %s\n", path)
			return nil
		}
	}

	cfg, err := flow.NewWizard(d.git, p, a.wizardOpts(errOut)...).ResolveConfiguration(ctx)
	if err != nil {
		return err
	}

	var (
		report    *setup.Report
		schemaErr error
	)
	err = prompt.Spin(ctx, errOut, "creating branches", func() error {
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		schemaErr = config.SaveEditorSchema(repo.RepoRoot)

		setupOpts := a.setupOpts(errOut)
		if !repo.HasCommits {
			setupOpts = append(setupOpts, setup.WithInitialCommit())
		}
		var err error
		report, err = setup.NewService(d.git, setupOpts...).Apply(ctx, cfg)
		return err
	})
	if err != nil {
		return err
	}
	if schemaErr != nil {
		_, _ = fmt.Fprintln(errOut, ui.Yellow("Could not register the configuration schema for VS Code: "+schemaErr.Error()))
	}

	if opts.json {
		if err := printJSON(cmd.OutOrStdout(), initResult{ConfigPath: path, Config: cfg, Report: report}); err != nil {
			return err
		}
	} else {
		// best-effort: stdout write failure is non-actionable
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		printReport(cmd.OutOrStdout(), report)
	}

	if report.Failed() {
		return errSetupIncomplete
	}
	return nil
}

// ensureProject returns the directory of the Salesforce DX project to set up,
// offering to create one when d.dir is not inside a project.
func (a *App) ensureProject(ctx context.Context, errOut io.Writer, d *deps, p prompt.Prompter) (string, error) {
	root, err := scaffold.Detect(d.dir)
	if err == nil {
		_, _ = fmt.Fprintf(errOut, "SFDX Project: %s\n", root)
		return d.dir, nil
	}
	if !errors.Is(err, scaffold.ErrNoProject) {
		return "", err
	}

	p.Notify(ui.Yellow(scaffold.ErrNoProject.Error()))
	create, err := p.Confirm(ctx, prompt.Confirm{Message: "Would you like to start a new Sfdx project?", Default: true})
	if err != nil {
		return "", err
	}
	if !create {
		return "", errProjectRequired
	}

	path, err := scaffold.New(d.dir, d.exec, p, a.scaffoldOpts(errOut)...).Create(ctx)
	if err != nil {
		return "", err
	}
	_, _ = fmt.Fprintf(errOut, "Project created on %s\n", path)
	return path, nil
}

// ensureRepository resolves the repository enclosing d.dir, offering git init
// when there is none.
func (a *App) ensureRepository(ctx context.Context, d *deps, p prompt.Prompter) (*dxcontext.Context, error) {
	repo, err := a.resolveRepo(d.dir)
	if !errors.Is(err, dxcontext.ErrNotRepository) {
		return repo, err
	}

	p.Notify(ui.Yellow("You don't seem to be under a git repository"))
	start, err := p.Confirm(ctx, prompt.Confirm{Message: "Would you like to start a new repository?", Default: true})
	if err != nil {
		return nil, err
	}
	if !start {
		return nil, dxcontext.ErrNotRepository
	}
	if err := d.git.Init(ctx); err != nil {
		return nil, fmt.Errorf("git init: %w", err)
	}
	return a.resolveRepo(d.dir)
}

// headText describes where HEAD points before any branch is created.
func headText(repo *dxcontext.Context) string {
	switch {
	case repo.HeadBranch == "":
		return "detached HEAD"
	case !repo.HasCommits:
		return "no commits on " + repo.HeadBranch
	default:
		return "on " + repo.HeadBranch
	}
}

func statusText(s setup.Status) string {
	switch s {
	case setup.StatusCreated, setup.StatusCheckedOut:
		return ui.Green(s.String())
	case setup.StatusFailed:
		return ui.Red(s.String())
	default:
		return s.String()
	}
}

func printReport(w io.Writer, r *setup.Report) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"CODEBASE", "ROLE", "BRANCH", "STATUS"})

	for i, cb := range r.Codebases {
		for _, row := range []struct {
			role   flow.Role
			result setup.BranchResult
		}{
			{flow.RoleProduction, cb.Production},
			{flow.RoleDevelop, cb.Develop},
		} {
			status := statusText(row.result.Status)
			if row.result.Error != "" {
				status += " " + ui.Red("("+row.result.Error+")")
			}
			tw.AppendRow(table.Row{i + 1, row.role, row.result.Name, status})
		}
	}

	tw.Render()

	if r.InitialCommit == setup.StatusFailed {
		_, _ = fmt.Fprintln(w, ui.Yellow("⚠ The initial commit could not be created"))
	}
	if r.Checkout.Status == setup.StatusFailed {
		_, _ = fmt.Fprintln(w, ui.Yellow(fmt.Sprintf("⚠ Could not check out '%s': %s", r.Checkout.Name, r.Checkout.Error)))
		return
	}
	_, _ = fmt.Fprintf(w, "Switched to '%s'\n", ui.Bold(r.Checkout.Name))
}
