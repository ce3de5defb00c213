package domain

// Default line-budget thresholds.
const (
	SoftWarnLines   = 200
	HardFailLines   = 300
	RouterWarnLines = 50
)

// AlwaysHotFiles are root-level files injected into every AI prompt.
var AlwaysHotFiles = []string{
	".cursorrules",
	".github/copilot-instructions.md",
	".windsurfrules",
	"AGENTS.md",
	"CLAUDE.md",
	"GEMINI.md",
	"codex.md",
	"opencode.md",
}

// AlwaysHotGlobs are patterns (relative to the repo root) for always-hot
// rule directories.
var AlwaysHotGlobs = []string{
	".claude/rules/**/*.md",
	".cursor/rules/**/*.mdc",
	".windsurf/rules/**/*.md",
	".windsurf/rules/**/*.mdc",
}

// RouterFiles should stay short and point at canonical docs.
var RouterFiles = []string{"CLAUDE.md", "GEMINI.md"}

// ExcludedDirs are directory names skipped during discovery.
var ExcludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
}

// LintConfig holds settings resolved once per run from .contextlintrc.json.
// Construct with DefaultLintConfig and overlay parsed values; read-only
// thereafter.
type LintConfig struct {
	// Line budget
	DefaultWarn     int            `json:"default_warn"`
	DefaultError    int            `json:"default_error"`
	PerFileError    map[string]int `json:"per_file_error,omitempty"`
	RouterWarnLines int            `json:"router_warn_lines"`

	// Ignore
	IgnorePaths map[string]bool `json:"ignore_paths,omitempty"` // glob patterns, matched against repo-relative POSIX paths
	IgnoreRefs  map[string]bool `json:"ignore_refs,omitempty"`  // literal ref values or basenames exempt from ref checking

	// Discovery
	ExtraGlobs              []string `json:"extra_globs,omitempty"`
	DisableDefaultDiscovery bool     `json:"disable_default_discovery,omitempty"`
}

// DefaultLintConfig returns a config with the built-in thresholds and no
// ignores or extra globs.
func DefaultLintConfig() LintConfig {
	return LintConfig{
		DefaultWarn:     SoftWarnLines,
		DefaultError:    HardFailLines,
		RouterWarnLines: RouterWarnLines,
		PerFileError:    map[string]int{},
		IgnorePaths:     map[string]bool{},
		IgnoreRefs:      map[string]bool{},
	}
}

// ErrorLimit returns the hard line limit for a repo-relative path,
// honoring any per-file override.
func (c LintConfig) ErrorLimit(rel string) int {
	if limit, ok := c.PerFileError[rel]; ok {
		return limit
	}
	return c.DefaultError
}
