// Package checks implements the contextlint engine: line budgets, broken
// references, router sanity, and cross-file duplicate blocks over a
// discovered set of agent context files.
package checks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/agentinit/agentinit/internal/domain"
)

// Run executes all checks in a fixed order over the discovered files and
// returns one aggregate result. files are repo-relative and sorted; hot
// marks the subset under the hard line-budget policy. Unreadable files are
// skipped, never fatal.
func Run(root string, files []string, hot map[string]bool, cfg domain.LintConfig, checkDuplicates bool) *domain.LintResult {
	result := domain.NewLintResult()

	CheckLineBudget(root, files, hot, cfg, result)
	CheckRefs(root, files, cfg, result)
	CheckRouterSanity(root, cfg, result)
	if checkDuplicates {
		CheckDuplicates(root, files, result)
	}

	return result
}

// readLines reads a file and splits it into lines the way the budget and
// duplicate checks count them: a trailing newline does not add an empty
// final line, and an empty file has zero lines.
func readLines(path string) ([]string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return splitLines(string(data)), true
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func abs(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
