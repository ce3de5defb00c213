package domain

// ManagedFiles are the templates agentinit installs, relative to the
// project root. Used by --force to decide what may be overwritten.
var ManagedFiles = []string{
	"AGENTS.md",
	"CLAUDE.md",
	"GEMINI.md",
	".gitignore",
	"docs/PROJECT.md",
	"docs/CONVENTIONS.md",
	"docs/TODO.md",
	"docs/DECISIONS.md",
	".cursor/rules/project.mdc",
	".github/copilot-instructions.md",
}

// MinimalManagedFiles is the subset installed with --minimal.
var MinimalManagedFiles = []string{
	"AGENTS.md",
	"CLAUDE.md",
	"docs/PROJECT.md",
	"docs/CONVENTIONS.md",
}

// RemovableFiles are deleted or archived by remove. .gitignore is
// intentionally excluded: users commonly rely on it.
var RemovableFiles = []string{
	"AGENTS.md",
	"CLAUDE.md",
	"GEMINI.md",
	"docs/PROJECT.md",
	"docs/CONVENTIONS.md",
	"docs/TODO.md",
	"docs/DECISIONS.md",
	".cursor/rules/project.mdc",
	".github/copilot-instructions.md",
}

// CleanupDirs are removed after remove if empty, deepest first.
var CleanupDirs = []string{
	"docs",
	".cursor/rules",
	".cursor",
}

// ScaffoldConfig holds optional scaffolding settings from .agentinit.yaml.
type ScaffoldConfig struct {
	ProjectName string            `yaml:"project_name"`
	Minimal     bool              `yaml:"minimal"`
	Variables   map[string]string `yaml:"variables"`
}

// ScaffoldReport lists what an init run did per managed file.
type ScaffoldReport struct {
	Copied   []string `json:"copied"`
	Skipped  []string `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// StatusEntry describes one managed file for the status command.
type StatusEntry struct {
	Path    string `json:"path"`
	Present bool   `json:"present"`
	Lines   int    `json:"lines,omitempty"` // from lint file_sizes when discovered
}
