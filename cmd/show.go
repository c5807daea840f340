package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wasabi0522/dxflow/internal/config"
	"github.com/wasabi0522/dxflow/internal/flow"
)

func (a *App) showCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured branching convention",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func (a *App) runShow(cmd *cobra.Command, jsonOutput bool) error {
	dir, err := a.getwd()
	if err != nil {
		return err
	}
	repo, err := a.resolveRepo(dir)
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.Path(repo.RepoRoot))
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), cfg)
	}
	printConfig(cmd.OutOrStdout(), cfg)
	return nil
}

func printConfig(w io.Writer, cfg *flow.GitConfig) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"CODEBASE", "PRODUCTION", "DEVELOP", "PREFIX"})
	for i, cb := range cfg.Branches {
		prefix := cb.Prefix
		if prefix == "" {
			prefix = "-"
		}
		tw.AppendRow(table.Row{i + 1, cb.Production, cb.Develop, prefix})
	}
	tw.Render()

	_, _ = fmt.Fprintln(w)

	pw := newTable(w)
	pw.AppendHeader(table.Row{"SUPPORT", "PREFIX"})
	for _, role := range flow.SupportRoles {
		pw.AppendRow(table.Row{role, cfg.Prefixes.Get(role)})
	}
	pw.Render()
}
