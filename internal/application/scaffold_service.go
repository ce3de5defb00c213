package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/camelcase"

	"github.com/agentinit/agentinit/internal/domain"
)

// ScaffoldService installs, removes, and reports on the managed agent
// context files in a project.
type ScaffoldService struct {
	store  domain.TemplateStore
	config domain.ScaffoldConfigLoader
}

// NewScaffoldService creates a ScaffoldService.
func NewScaffoldService(store domain.TemplateStore, config domain.ScaffoldConfigLoader) *ScaffoldService {
	return &ScaffoldService{store: store, config: config}
}

// Init copies the managed templates into dest, substituting placeholders.
// Existing files are skipped unless force; .gitignore is never overwritten
// because users commonly customize it. Symlink and directory destinations,
// and anything whose real path escapes the project, are skipped with a
// warning rather than followed.
func (s *ScaffoldService) Init(dest string, force, minimal bool) (*domain.ScaffoldReport, error) {
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return nil, fmt.Errorf("resolving destination: %w", err)
	}
	if info, err := os.Stat(absDest); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("destination %s is not an existing directory", dest)
	}

	cfg, err := s.config.Load(absDest)
	if err != nil {
		return nil, err
	}

	projectName := cfg.ProjectName
	if projectName == "" {
		projectName = filepath.Base(absDest)
	}
	vars := placeholderVars(projectName, cfg.Variables)

	files := domain.ManagedFiles
	if minimal || cfg.Minimal {
		files = domain.MinimalManagedFiles
	}

	destReal := realPath(absDest)
	report := &domain.ScaffoldReport{}

	for _, rel := range files {
		if !s.store.Has(rel) {
			continue
		}
		dst := filepath.Join(absDest, filepath.FromSlash(rel))

		if !resolvesWithin(destReal, filepath.Dir(dst)) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("destination parent resolves outside project, skipping: %s", rel))
			report.Skipped = append(report.Skipped, rel)
			continue
		}

		if info, err := os.Lstat(dst); err == nil {
			if info.Mode()&os.ModeSymlink != 0 {
				report.Warnings = append(report.Warnings, fmt.Sprintf("destination is a symlink, skipping: %s", rel))
				report.Skipped = append(report.Skipped, rel)
				continue
			}
			if info.IsDir() {
				report.Warnings = append(report.Warnings, fmt.Sprintf("destination is a directory, skipping: %s", rel))
				report.Skipped = append(report.Skipped, rel)
				continue
			}
			if rel == ".gitignore" {
				if force {
					report.Warnings = append(report.Warnings, ".gitignore already exists, leaving it untouched")
				}
				report.Skipped = append(report.Skipped, rel)
				continue
			}
			if !force {
				report.Skipped = append(report.Skipped, rel)
				continue
			}
		}

		if !resolvesWithin(destReal, dst) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("destination resolves outside project, skipping: %s", rel))
			report.Skipped = append(report.Skipped, rel)
			continue
		}

		data, err := s.store.Read(rel)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("reading template %s: %v", rel, err))
			report.Skipped = append(report.Skipped, rel)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("creating %s: %v", filepath.Dir(dst), err))
			report.Skipped = append(report.Skipped, rel)
			continue
		}

		rendered := renderTemplate(data, vars)
		err = os.WriteFile(dst, rendered, 0o644)
		if err != nil && force {
			// A read-only managed file may block the overwrite.
			_ = os.Chmod(dst, 0o644)
			err = os.WriteFile(dst, rendered, 0o644)
		}
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("permission denied, skipping: %s", rel))
			report.Skipped = append(report.Skipped, rel)
			continue
		}
		report.Copied = append(report.Copied, rel)
	}

	return report, nil
}

// NewProject creates dest (which must not exist yet) and initializes it.
func (s *ScaffoldService) NewProject(dest string, minimal bool) (*domain.ScaffoldReport, error) {
	if _, err := os.Stat(dest); err == nil {
		return nil, fmt.Errorf("%s already exists", dest)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dest, err)
	}
	return s.Init(dest, false, minimal)
}

// Remove deletes the removable managed files from dest, or moves them into
// a timestamped .agentinit-archive/ subdirectory when archive is set (so
// repeated archives never clobber earlier ones), then prunes now-empty
// managed directories deepest-first.
func (s *ScaffoldService) Remove(dest string, archive bool) ([]string, error) {
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return nil, fmt.Errorf("resolving destination: %w", err)
	}

	var removed []string
	now := time.Now()
	ts := fmt.Sprintf("%s-%06d", now.Format("20060102-150405"), now.Nanosecond()/1000)
	archiveDir := filepath.Join(absDest, ".agentinit-archive", ts)

	for _, rel := range domain.RemovableFiles {
		src := filepath.Join(absDest, filepath.FromSlash(rel))
		info, err := os.Lstat(src)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if archive {
			dst := filepath.Join(archiveDir, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				continue
			}
			if err := os.Rename(src, dst); err != nil {
				continue
			}
		} else if err := os.Remove(src); err != nil {
			continue
		}
		removed = append(removed, rel)
	}

	// os.Remove refuses non-empty directories, which is exactly the
	// cleanup policy here.
	for _, dir := range domain.CleanupDirs {
		_ = os.Remove(filepath.Join(absDest, filepath.FromSlash(dir)))
	}

	return removed, nil
}

// Status reports which managed files exist in dest. sizes, usually the
// lint result's file_sizes, supplies line counts for discovered files.
func (s *ScaffoldService) Status(dest string, sizes map[string]int) []domain.StatusEntry {
	entries := make([]domain.StatusEntry, 0, len(domain.ManagedFiles))
	for _, rel := range domain.ManagedFiles {
		info, err := os.Stat(filepath.Join(dest, filepath.FromSlash(rel)))
		entries = append(entries, domain.StatusEntry{
			Path:    rel,
			Present: err == nil && info.Mode().IsRegular(),
			Lines:   sizes[rel],
		})
	}
	return entries
}

// placeholderVars builds the substitution table for templates. Name
// variants come from camelcase splitting so MyService, my-service, and
// my_service all yield the same word list.
func placeholderVars(projectName string, extra map[string]string) map[string]string {
	var words []string
	for _, chunk := range strings.FieldsFunc(projectName, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	}) {
		for _, w := range camelcase.Split(chunk) {
			words = append(words, strings.ToLower(w))
		}
	}

	vars := map[string]string{
		"project_name":       projectName,
		"project_name_snake": strings.Join(words, "_"),
		"project_name_kebab": strings.Join(words, "-"),
		"date":               time.Now().Format("2006-01-02"),
	}
	for k, v := range extra {
		vars[k] = v
	}
	return vars
}

func renderTemplate(data []byte, vars map[string]string) []byte {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return []byte(strings.NewReplacer(pairs...).Replace(string(data)))
}

// realPath resolves symlinks on the nearest existing ancestor of p and
// rejoins the rest, so containment checks work for not-yet-created paths.
func realPath(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	clean := filepath.Clean(p)
	parent := filepath.Dir(clean)
	if parent == clean {
		return clean
	}
	return filepath.Join(realPath(parent), filepath.Base(clean))
}

func resolvesWithin(root, p string) bool {
	real := realPath(p)
	return real == root || strings.HasPrefix(real, root+string(filepath.Separator))
}
