// Package commands wires the services into the vgk CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "vgk",
		Short:   "Property management books and dashboard",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newRecordCommand())
	rootCmd.AddCommand(newReverseCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newForecastCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
