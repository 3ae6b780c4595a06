package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilanz-dev/bilanz/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bilanz",
		Short:   "SKR04 Jahresabschluss: Bilanz, GuV und Kennzahlen aus Buchungslisten",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newJournalCommand())
	rootCmd.AddCommand(newKPICommand())
	rootCmd.AddCommand(newMappingCommand())

	return rootCmd
}
