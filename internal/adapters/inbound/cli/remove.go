package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var archive bool

	cmd := &cobra.Command{
		Use:   "remove [path]",
		Short: "Remove the managed agent context files from a project",
		Long:  "Delete the managed context files (.gitignore is left alone) and prune the managed directories they leave empty. --archive moves files into .agentinit-archive/ instead of deleting.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := "."
			if len(args) > 0 {
				dest = args[0]
			}

			removed, err := newScaffoldService().Remove(dest, archive)
			if err != nil {
				return fmt.Errorf("remove failed: %w", err)
			}

			verb := "removed"
			if archive {
				verb = "archived"
			}
			for _, rel := range removed {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", verb, rel)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d files %s\n", len(removed), verb)
			return nil
		},
	}

	cmd.Flags().BoolVar(&archive, "archive", false, "Move files into .agentinit-archive/ instead of deleting")

	return cmd
}
