package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentinit/agentinit/internal/adapters/outbound/config"
	"github.com/agentinit/agentinit/internal/adapters/outbound/scanner"
	"github.com/agentinit/agentinit/internal/adapters/outbound/tui"
	"github.com/agentinit/agentinit/internal/application"
	"github.com/agentinit/agentinit/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		root       string
		configPath string
		jsonOutput bool
		noDup      bool
	)

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Lint context files for bloat, broken refs, and duplication",
		Long:  "Run the contextlint checks over the repository's agent context files. Exits non-zero when any hard failure (broken reference or hard line-budget violation) is found.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewLintService(config.New(), scanner.New())

			result, err := svc.Lint(root, configPath, !noDup)
			if err != nil {
				return fmt.Errorf("lint failed: %w", err)
			}

			if jsonOutput {
				if err := renderLintJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderLintResult(result))
			}

			if result.HasHard() {
				s := result.Summary()
				return fmt.Errorf("contextlint found %d hard %s", s.Errors, pluralize(s.Errors, "failure"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Repository root to lint")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: auto-detect .contextlintrc.json)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noDup, "no-dup", false, "Disable duplicate-block detection")

	return cmd
}

func renderLintJSON(cmd *cobra.Command, result *domain.LintResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
