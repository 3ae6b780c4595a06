package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bilanz-dev/bilanz/internal/mapping"
)

func newMappingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Manage the account override mapping",
	}
	cmd.AddCommand(newMappingInitCommand())
	return cmd
}

func newMappingInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init <file>",
		Short: "Write a starter mapping document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(mapping.Template), 0o644); err != nil {
				return fmt.Errorf("writing mapping: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Kontenzuordnung in %s angelegt\n", path)
			return nil
		},
	}
}
