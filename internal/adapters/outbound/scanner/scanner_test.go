package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentinit/agentinit/internal/adapters/outbound/scanner"
	"github.com/agentinit/agentinit/internal/domain"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func discover(t *testing.T, root string, cfg domain.LintConfig) ([]string, map[string]bool) {
	t.Helper()
	files, hot, err := scanner.New().Discover(root, cfg)
	require.NoError(t, err)
	return files, hot
}

func TestDiscover_AlwaysHotFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "AGENTS.md", "a\n")
	writeFile(t, root, "CLAUDE.md", "c\n")
	writeFile(t, root, "README.md", "not a context file\n")

	files, hot := discover(t, root, domain.DefaultLintConfig())

	assert.Equal(t, []string{"AGENTS.md", "CLAUDE.md"}, files)
	assert.True(t, hot["AGENTS.md"])
	assert.True(t, hot["CLAUDE.md"])
}

func TestDiscover_RuleDirectoryGlobsAreHot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".claude/rules/style.md", "r\n")
	writeFile(t, root, ".cursor/rules/project.mdc", "r\n")

	files, hot := discover(t, root, domain.DefaultLintConfig())

	assert.Equal(t, []string{".claude/rules/style.md", ".cursor/rules/project.mdc"}, files)
	assert.True(t, hot[".claude/rules/style.md"])
	assert.True(t, hot[".cursor/rules/project.mdc"])
}

func TestDiscover_DocsIncludedButNotHot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md", "g\n")
	writeFile(t, root, "docs/deep/notes.md", "n\n")

	files, hot := discover(t, root, domain.DefaultLintConfig())

	assert.Equal(t, []string{"docs/deep/notes.md", "docs/guide.md"}, files)
	assert.False(t, hot["docs/guide.md"])
	assert.False(t, hot["docs/deep/notes.md"])
}

// A file matched both as always-hot and by an extra glob stays hot and
// appears once.
func TestDiscover_DedupKeepsHotFlag(t *testing.T) {
	cfg := domain.DefaultLintConfig()
	cfg.ExtraGlobs = []string{"*.md"}

	root := t.TempDir()
	writeFile(t, root, "AGENTS.md", "a\n")

	files, hot := discover(t, root, cfg)

	assert.Equal(t, []string{"AGENTS.md"}, files)
	assert.True(t, hot["AGENTS.md"])
}

func TestDiscover_ExtraGlobs(t *testing.T) {
	cfg := domain.DefaultLintConfig()
	cfg.ExtraGlobs = []string{"prompts/**/*.md"}

	root := t.TempDir()
	writeFile(t, root, "prompts/system.md", "p\n")
	writeFile(t, root, "prompts/sub/tool.md", "p\n")

	files, hot := discover(t, root, cfg)

	assert.Equal(t, []string{"prompts/sub/tool.md", "prompts/system.md"}, files)
	assert.Empty(t, hot)
}

func TestDiscover_IgnorePathsFilterFilesAndHotSet(t *testing.T) {
	cfg := domain.DefaultLintConfig()
	cfg.IgnorePaths["docs/**"] = true
	cfg.IgnorePaths["CLAUDE.md"] = true

	root := t.TempDir()
	writeFile(t, root, "AGENTS.md", "a\n")
	writeFile(t, root, "CLAUDE.md", "c\n")
	writeFile(t, root, "docs/guide.md", "g\n")

	files, hot := discover(t, root, cfg)

	assert.Equal(t, []string{"AGENTS.md"}, files)
	assert.True(t, hot["AGENTS.md"])
	assert.NotContains(t, hot, "CLAUDE.md")
}

func TestDiscover_DisableDefaults(t *testing.T) {
	cfg := domain.DefaultLintConfig()
	cfg.DisableDefaultDiscovery = true
	cfg.ExtraGlobs = []string{"context/*.md"}

	root := t.TempDir()
	writeFile(t, root, "AGENTS.md", "a\n")
	writeFile(t, root, "context/rules.md", "r\n")

	files, hot := discover(t, root, cfg)

	assert.Equal(t, []string{"context/rules.md"}, files)
	assert.Empty(t, hot)
}

func TestDiscover_ExcludedDirsSkipped(t *testing.T) {
	cfg := domain.DefaultLintConfig()
	cfg.ExtraGlobs = []string{"**/*.md"}

	root := t.TempDir()
	writeFile(t, root, "kept.md", "k\n")
	writeFile(t, root, "node_modules/pkg/readme.md", "n\n")
	writeFile(t, root, "dist/out.md", "d\n")

	files, _ := discover(t, root, cfg)

	assert.Equal(t, []string{"kept.md"}, files)
}

// A glob that matches a directory contributes nothing.
func TestDiscover_DirectoriesNotCounted(t *testing.T) {
	cfg := domain.DefaultLintConfig()
	cfg.ExtraGlobs = []string{"*"}

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "somedir"), 0o755))
	writeFile(t, root, "file.md", "f\n")

	files, _ := discover(t, root, cfg)

	assert.Equal(t, []string{"file.md"}, files)
}

func TestDiscover_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "AGENTS.md", "a\n")
	writeFile(t, root, "docs/b.md", "b\n")
	writeFile(t, root, "docs/a.md", "a\n")
	writeFile(t, root, ".claude/rules/x.md", "x\n")

	first, _ := discover(t, root, domain.DefaultLintConfig())
	second, _ := discover(t, root, domain.DefaultLintConfig())

	assert.Equal(t, first, second)
	assert.IsIncreasing(t, first)
}
