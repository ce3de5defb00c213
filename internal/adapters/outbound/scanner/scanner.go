// Package scanner discovers the set of agent context files to lint.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/agentinit/agentinit/internal/domain"
)

// ContextScanner implements domain.ContextDiscoverer over the real
// filesystem using doublestar globs.
type ContextScanner struct{}

func New() *ContextScanner {
	return &ContextScanner{}
}

// Discover returns the deduplicated, sorted list of repo-relative context
// file paths under root, plus the always-hot subset. Paths use forward
// slashes. A glob matching nothing contributes nothing; patterns matching
// directories are skipped.
func (s *ContextScanner) Discover(root string, cfg domain.LintConfig) ([]string, map[string]bool, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, err
	}

	seen := map[string]bool{}
	var found []string
	hot := map[string]bool{}

	add := func(rel string, isHot bool) {
		if !seen[rel] {
			seen[rel] = true
			found = append(found, rel)
		}
		if isHot {
			hot[rel] = true
		}
	}

	if !cfg.DisableDefaultDiscovery {
		for _, name := range domain.AlwaysHotFiles {
			if isRegularFile(filepath.Join(absRoot, filepath.FromSlash(name))) {
				add(name, true)
			}
		}

		for _, pattern := range domain.AlwaysHotGlobs {
			for _, rel := range globFiles(absRoot, pattern) {
				add(rel, true)
			}
		}

		if info, err := os.Stat(filepath.Join(absRoot, "docs")); err == nil && info.IsDir() {
			for _, rel := range globFiles(absRoot, "docs/**/*.md") {
				add(rel, false)
			}
		}
	}

	for _, pattern := range cfg.ExtraGlobs {
		for _, rel := range globFiles(absRoot, pattern) {
			add(rel, false)
		}
	}

	sort.Strings(found)

	if len(cfg.IgnorePaths) > 0 {
		kept := found[:0]
		for _, rel := range found {
			if isIgnored(rel, cfg.IgnorePaths) {
				continue
			}
			kept = append(kept, rel)
		}
		found = kept
		for rel := range hot {
			if isIgnored(rel, cfg.IgnorePaths) {
				delete(hot, rel)
			}
		}
	}

	return found, hot, nil
}

// globFiles matches pattern under root, keeping regular files outside the
// excluded directory set. Bad patterns or walk errors contribute nothing.
func globFiles(absRoot, pattern string) []string {
	matches, err := doublestar.Glob(os.DirFS(absRoot), pattern)
	if err != nil {
		return nil
	}
	sort.Strings(matches)

	var files []string
	for _, rel := range matches {
		if inExcludedDir(rel) {
			continue
		}
		if !isRegularFile(filepath.Join(absRoot, filepath.FromSlash(rel))) {
			continue
		}
		files = append(files, rel)
	}
	return files
}

// inExcludedDir reports whether any directory component of rel is in the
// fixed exclusion set (version control, build output, dependency caches).
func inExcludedDir(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, part := range parts[:len(parts)-1] {
		if domain.ExcludedDirs[part] {
			return true
		}
	}
	return false
}

func isIgnored(rel string, ignorePaths map[string]bool) bool {
	for pattern := range ignorePaths {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
