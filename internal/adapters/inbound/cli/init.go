package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentinit/agentinit/internal/adapters/outbound/scaffold"
	"github.com/agentinit/agentinit/internal/adapters/outbound/scaffoldcfg"
	"github.com/agentinit/agentinit/internal/adapters/outbound/tui"
	"github.com/agentinit/agentinit/internal/application"
)

func newScaffoldService() *application.ScaffoldService {
	return application.NewScaffoldService(scaffold.New(), scaffoldcfg.New())
}

func newInitCmd() *cobra.Command {
	var (
		force   bool
		minimal bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Install agent context files into an existing project",
		Long:  "Copy the managed context-file templates into a project, substituting placeholders. Existing files are kept unless --force; .gitignore is never overwritten.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := "."
			if len(args) > 0 {
				dest = args[0]
			}

			report, err := newScaffoldService().Init(dest, force, minimal)
			if err != nil {
				return fmt.Errorf("init failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScaffoldReport(report))
			printNextSteps(cmd)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing managed files (except .gitignore)")
	cmd.Flags().BoolVar(&minimal, "minimal", false, "Install only the minimal file set")

	return cmd
}

func printNextSteps(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Open docs/PROJECT.md and describe your project")
	fmt.Fprintln(out, "  2. Fill in docs/CONVENTIONS.md with your team's standards")
	fmt.Fprintln(out, "  3. Run your coding agent — it will read AGENTS.md automatically")
}
