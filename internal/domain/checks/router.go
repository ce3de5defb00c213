package checks

import (
	"fmt"
	"os"
	"regexp"

	"github.com/agentinit/agentinit/internal/domain"
)

// Router files exist to route, not to document: they should stay short and
// hand off to AGENTS.md or docs/.
var pointerRE = regexp.MustCompile(`(?i)(AGENTS\.md|docs/)`)

// CheckRouterSanity warns when a router file grows past the router budget
// or lacks a pointer to canonical docs. The two checks are independent.
func CheckRouterSanity(root string, cfg domain.LintConfig, result *domain.LintResult) {
	for _, name := range domain.RouterFiles {
		data, err := os.ReadFile(abs(root, name))
		if err != nil {
			continue
		}
		text := string(data)

		count := len(splitLines(text))
		if count > cfg.RouterWarnLines {
			result.Add(domain.Diagnostic{
				Path:    name,
				Message: fmt.Sprintf("%d lines — router files should be short (<=%d)", count, cfg.RouterWarnLines),
			})
		}

		if !pointerRE.MatchString(text) {
			result.Add(domain.Diagnostic{
				Path:    name,
				Message: "no pointer to AGENTS.md or docs/ — add one",
			})
		}
	}
}
