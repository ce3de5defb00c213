package checks

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentinit/agentinit/internal/domain"
)

// CheckLineBudget measures every discovered file against the configured
// soft and hard thresholds and records its line count in FileSizes.
//
// docs/ files are exempt from hard failure: documentation is allowed to
// grow, so crossing the hard limit only warns. Hot files hard-fail at the
// (possibly per-file overridden) error limit. Everything else warns at the
// soft threshold.
func CheckLineBudget(root string, files []string, hot map[string]bool, cfg domain.LintConfig, result *domain.LintResult) {
	for _, rel := range files {
		lines, ok := readLines(abs(root, rel))
		if !ok {
			continue
		}
		count := len(lines)
		result.FileSizes[rel] = count

		inDocs := strings.HasPrefix(filepath.ToSlash(rel), "docs/")
		errorLimit := cfg.ErrorLimit(rel)

		switch {
		case inDocs && count >= errorLimit:
			result.Add(domain.Diagnostic{
				Path:    rel,
				Message: fmt.Sprintf("%d lines — consider splitting (docs/ files never fail)", count),
			})
		case hot[rel] && count >= errorLimit:
			result.Add(domain.Diagnostic{
				Path:    rel,
				Message: fmt.Sprintf("%d lines (hard limit is %d)", count, errorLimit),
				Hard:    true,
			})
		case count >= cfg.DefaultWarn:
			if hot[rel] {
				result.Add(domain.Diagnostic{
					Path:    rel,
					Message: fmt.Sprintf("%d lines (soft warn at %d)", count, cfg.DefaultWarn),
				})
			} else {
				result.Add(domain.Diagnostic{
					Path:    rel,
					Message: fmt.Sprintf("%d lines — consider trimming", count),
				})
			}
		}
	}
}
