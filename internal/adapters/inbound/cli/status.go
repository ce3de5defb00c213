package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentinit/agentinit/internal/adapters/outbound/config"
	"github.com/agentinit/agentinit/internal/adapters/outbound/gitinfo"
	"github.com/agentinit/agentinit/internal/adapters/outbound/scanner"
	"github.com/agentinit/agentinit/internal/adapters/outbound/tui"
	"github.com/agentinit/agentinit/internal/application"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [path]",
		Short: "Show managed files, git position, and lint summary",
		Long:  "Report which managed context files exist, where the repository stands in git, and the current lint counts. Informational only: status always exits 0.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := "."
			if len(args) > 0 {
				dest = args[0]
			}

			lintSvc := application.NewLintService(config.New(), scanner.New())
			result, err := lintSvc.Lint(dest, "", true)
			if err != nil {
				return fmt.Errorf("status failed: %w", err)
			}

			entries := newScaffoldService().Status(dest, result.FileSizes)

			var branch, commit string
			gi := gitinfo.New()
			if gi.IsGitRepo(dest) {
				branch, _ = gi.Branch(dest)
				commit, _ = gi.CommitHash(dest)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatus(entries, branch, commit, result.Summary()))
			return nil
		},
	}

	return cmd
}
