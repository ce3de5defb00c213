package domain

// LintConfigLoader locates and parses .contextlintrc.json. Missing or
// malformed files degrade to DefaultLintConfig, never an error.
type LintConfigLoader interface {
	Load(root string, explicitPath string) LintConfig
}

// ContextDiscoverer enumerates the context files to lint under a root.
// Files are repo-relative, deduplicated, and sorted; hot holds the subset
// subject to the hard line-budget policy.
type ContextDiscoverer interface {
	Discover(root string, cfg LintConfig) (files []string, hot map[string]bool, err error)
}

// GitInfo exposes repository metadata for the status command.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	Branch(projectPath string) (string, error)
	CommitHash(projectPath string) (string, error)
}

// TemplateStore serves scaffold templates by managed-file path.
type TemplateStore interface {
	Read(rel string) ([]byte, error)
	Has(rel string) bool
}

// ScaffoldConfigLoader reads optional .agentinit.yaml settings. A missing
// file yields the zero config; a malformed one is a user-actionable error.
type ScaffoldConfigLoader interface {
	Load(projectPath string) (ScaffoldConfig, error)
}
