package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dxflow",
		Short: "Branching convention wizard for Salesforce DX repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("dxflow version %s\n", version))
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	// Register subcommands
	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(a.showCmd())
	rootCmd.AddCommand(completionCmd(rootCmd))

	return rootCmd
}

// Execute creates an App and runs the CLI.
func Execute() {
	app := NewApp()
	cmd := app.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
