package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentinit/agentinit/internal/adapters/outbound/tui"
)

func newNewCmd() *cobra.Command {
	var minimal bool

	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a new project directory with agent context files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newScaffoldService().NewProject(args[0], minimal)
			if err != nil {
				return fmt.Errorf("new failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", args[0])
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScaffoldReport(report))
			printNextSteps(cmd)
			return nil
		},
	}

	cmd.Flags().BoolVar(&minimal, "minimal", false, "Install only the minimal file set")

	return cmd
}
