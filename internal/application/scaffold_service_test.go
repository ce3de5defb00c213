package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentinit/agentinit/internal/adapters/outbound/scaffold"
	"github.com/agentinit/agentinit/internal/adapters/outbound/scaffoldcfg"
	"github.com/agentinit/agentinit/internal/application"
	"github.com/agentinit/agentinit/internal/domain"
)

func newScaffoldService() *application.ScaffoldService {
	return application.NewScaffoldService(scaffold.New(), scaffoldcfg.New())
}

func readInstalled(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestScaffoldInit_CopiesManagedFiles(t *testing.T) {
	dir := t.TempDir()

	report, err := newScaffoldService().Init(dir, false, false)

	require.NoError(t, err)
	assert.ElementsMatch(t, domain.ManagedFiles, report.Copied)
	assert.Empty(t, report.Skipped)
	for _, rel := range domain.ManagedFiles {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(rel)))
	}
}

func TestScaffoldInit_SubstitutesPlaceholders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".agentinit.yaml"),
		[]byte("project_name: MyCoolApp\n"), 0o644))

	_, err := newScaffoldService().Init(dir, false, false)
	require.NoError(t, err)

	agents := readInstalled(t, dir, "AGENTS.md")
	assert.Contains(t, agents, "MyCoolApp")
	assert.NotContains(t, agents, "{{project_name}}")
	assert.NotContains(t, agents, "{{date}}")
}

func TestScaffoldInit_NameVariants(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".agentinit.yaml"),
		[]byte("project_name: MyCoolApp\n"), 0o644))

	_, err := newScaffoldService().Init(dir, false, false)
	require.NoError(t, err)

	project := readInstalled(t, dir, "docs/PROJECT.md")
	assert.NotContains(t, project, "{{project_name_snake}}")
	assert.NotContains(t, project, "{{project_name_kebab}}")
}

func TestScaffoldInit_SkipsExistingWithoutForce(t *testing.T) {
	dir := t.TempDir()
	custom := "my own agents file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AGENTS.md"), []byte(custom), 0o644))

	report, err := newScaffoldService().Init(dir, false, false)

	require.NoError(t, err)
	assert.Contains(t, report.Skipped, "AGENTS.md")
	assert.NotContains(t, report.Copied, "AGENTS.md")
	assert.Equal(t, custom, readInstalled(t, dir, "AGENTS.md"))
}

func TestScaffoldInit_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AGENTS.md"), []byte("stale\n"), 0o644))

	report, err := newScaffoldService().Init(dir, true, false)

	require.NoError(t, err)
	assert.Contains(t, report.Copied, "AGENTS.md")
	assert.NotEqual(t, "stale\n", readInstalled(t, dir, "AGENTS.md"))
}

// .gitignore is never overwritten, even under --force.
func TestScaffoldInit_GitignoreNeverOverwritten(t *testing.T) {
	dir := t.TempDir()
	custom := "node_modules/\nmy-secrets.env\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(custom), 0o644))

	report, err := newScaffoldService().Init(dir, true, false)

	require.NoError(t, err)
	assert.Contains(t, report.Skipped, ".gitignore")
	assert.Equal(t, custom, readInstalled(t, dir, ".gitignore"))
}

func TestScaffoldInit_Minimal(t *testing.T) {
	dir := t.TempDir()

	report, err := newScaffoldService().Init(dir, false, true)

	require.NoError(t, err)
	assert.ElementsMatch(t, domain.MinimalManagedFiles, report.Copied)
	assert.NoFileExists(t, filepath.Join(dir, "GEMINI.md"))
}

func TestScaffoldInit_SymlinkDestinationSkipped(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "elsewhere.md")
	require.NoError(t, os.WriteFile(target, []byte("outside\n"), 0o644))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "AGENTS.md")))

	report, err := newScaffoldService().Init(dir, true, false)

	require.NoError(t, err)
	assert.Contains(t, report.Skipped, "AGENTS.md")
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "outside\n", string(data))
}

func TestScaffoldInit_NonexistentDestination(t *testing.T) {
	_, err := newScaffoldService().Init(filepath.Join(t.TempDir(), "missing"), false, false)

	assert.Error(t, err)
}

func TestScaffoldNewProject_CreatesDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "fresh-app")

	report, err := newScaffoldService().NewProject(dest, false)

	require.NoError(t, err)
	assert.ElementsMatch(t, domain.ManagedFiles, report.Copied)
	assert.Contains(t, readInstalled(t, dest, "AGENTS.md"), "fresh-app")
}

func TestScaffoldNewProject_RefusesExisting(t *testing.T) {
	dest := t.TempDir()

	_, err := newScaffoldService().NewProject(dest, false)

	assert.ErrorContains(t, err, "already exists")
}

func TestScaffoldRemove_DeletesManagedFilesAndPrunesDirs(t *testing.T) {
	dir := t.TempDir()
	_, err := newScaffoldService().Init(dir, false, false)
	require.NoError(t, err)

	removed, err := newScaffoldService().Remove(dir, false)

	require.NoError(t, err)
	assert.ElementsMatch(t, domain.RemovableFiles, removed)
	assert.NoFileExists(t, filepath.Join(dir, "AGENTS.md"))
	assert.NoDirExists(t, filepath.Join(dir, "docs"))
	assert.NoDirExists(t, filepath.Join(dir, ".cursor"))
	// .gitignore survives removal.
	assert.FileExists(t, filepath.Join(dir, ".gitignore"))
}

func TestScaffoldRemove_KeepsNonEmptyDirs(t *testing.T) {
	dir := t.TempDir()
	_, err := newScaffoldService().Init(dir, false, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "NOTES.md"), []byte("mine\n"), 0o644))

	_, err = newScaffoldService().Remove(dir, false)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "docs", "NOTES.md"))
}

// archiveDirs lists the timestamped subdirectories under .agentinit-archive.
func archiveDirs(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dir, ".agentinit-archive"))
	require.NoError(t, err)
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(dir, ".agentinit-archive", e.Name()))
		}
	}
	return dirs
}

func TestScaffoldRemove_ArchiveMode(t *testing.T) {
	dir := t.TempDir()
	_, err := newScaffoldService().Init(dir, false, false)
	require.NoError(t, err)

	removed, err := newScaffoldService().Remove(dir, true)

	require.NoError(t, err)
	assert.Contains(t, removed, "AGENTS.md")
	assert.NoFileExists(t, filepath.Join(dir, "AGENTS.md"))

	dirs := archiveDirs(t, dir)
	require.Len(t, dirs, 1)
	assert.FileExists(t, filepath.Join(dirs[0], "AGENTS.md"))
	assert.FileExists(t, filepath.Join(dirs[0], "docs", "PROJECT.md"))
}

// Each archive run lands in its own timestamped subdirectory, so a second
// archive never clobbers the first.
func TestScaffoldRemove_RepeatedArchivesKeptSeparate(t *testing.T) {
	dir := t.TempDir()
	svc := newScaffoldService()
	_, err := svc.Init(dir, false, false)
	require.NoError(t, err)
	_, err = svc.Remove(dir, true)
	require.NoError(t, err)

	_, err = svc.Init(dir, false, false)
	require.NoError(t, err)
	_, err = svc.Remove(dir, true)
	require.NoError(t, err)

	dirs := archiveDirs(t, dir)
	require.Len(t, dirs, 2)
	for _, d := range dirs {
		assert.FileExists(t, filepath.Join(d, "AGENTS.md"))
	}
}

// brokenStore claims every template exists but fails to read them.
type brokenStore struct{}

func (brokenStore) Read(string) ([]byte, error) { return nil, os.ErrNotExist }
func (brokenStore) Has(string) bool             { return true }

// A template the store cannot read shows up in the report as skipped with
// a warning instead of vanishing from the counts.
func TestScaffoldInit_UnreadableTemplateReported(t *testing.T) {
	dir := t.TempDir()
	svc := application.NewScaffoldService(brokenStore{}, scaffoldcfg.New())

	report, err := svc.Init(dir, false, false)

	require.NoError(t, err)
	assert.Empty(t, report.Copied)
	assert.ElementsMatch(t, domain.ManagedFiles, report.Skipped)
	assert.NotEmpty(t, report.Warnings)
}

func TestScaffoldStatus(t *testing.T) {
	dir := t.TempDir()
	_, err := newScaffoldService().Init(dir, false, true)
	require.NoError(t, err)

	entries := newScaffoldService().Status(dir, map[string]int{"AGENTS.md": 12})

	require.Len(t, entries, len(domain.ManagedFiles))
	byPath := map[string]domain.StatusEntry{}
	for _, e := range entries {
		byPath[e.Path] = e
	}
	assert.True(t, byPath["AGENTS.md"].Present)
	assert.Equal(t, 12, byPath["AGENTS.md"].Lines)
	assert.False(t, byPath["GEMINI.md"].Present)
}
