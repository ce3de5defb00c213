package checks

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/agentinit/agentinit/internal/domain"
)

// Context files reference other files in three conventions: Markdown links
// in prose, tool-specific @file imports, and bare paths on their own line.
// Each convention has its own extractor; all candidates flow through the
// same validation and resolution pipeline.
var (
	mdLinkRE = regexp.MustCompile(`\[.*?\]\(([^)]+)\)`)

	// RE2 has no lookbehind, so the "not preceded by an alphanumeric"
	// guard consumes the leading character instead and the token is the
	// second capture group.
	atImportRE = regexp.MustCompile(`(^|[^A-Za-z0-9])@([\w./-]+)`)

	standalonePathRE = regexp.MustCompile(
		"^[\\s\\-*_>`]*" +
			"[`*_]*" +
			`(\.{0,2}/?` +
			`[A-Za-z0-9_\-./]+` +
			`)` +
			"[`*_]*" +
			`\s*$`)

	skipRefRE = regexp.MustCompile(`^(https?://|mailto:|#)`)

	shortExtRE = regexp.MustCompile(`\.\w{1,6}$`)
)

// looksLikePath is the shared heuristic that keeps @username mentions and
// plain words out of the candidate set: a reference has a slash or ends in
// a short file-extension-like suffix.
func looksLikePath(s string) bool {
	if strings.Contains(s, "/") {
		return true
	}
	return shortExtRE.MatchString(s)
}

// markdownLinkRefs extracts [label](target) targets from one line. The
// capture may still carry a quoted link title; it is passed through whole,
// and resolution fails the same way a missing file does.
func markdownLinkRefs(line string) []string {
	var refs []string
	for _, m := range mdLinkRE.FindAllStringSubmatch(line, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

// atImportRefs extracts @path/to/file style import tokens from one line.
func atImportRefs(line string) []string {
	var refs []string
	for _, m := range atImportRE.FindAllStringSubmatch(line, -1) {
		if token := m[2]; looksLikePath(token) {
			refs = append(refs, token)
		}
	}
	return refs
}

// standalonePathRefs extracts a bare path sitting alone on a line, allowing
// leading list/quote markup and emphasis markers around it.
func standalonePathRefs(line string) []string {
	m := standalonePathRE.FindStringSubmatch(line)
	if m == nil || !looksLikePath(m[1]) {
		return nil
	}
	return []string{m[1]}
}

// CheckRefs extracts and resolves path-like references in every discovered
// file. A reference that resolves outside the repo root is reported soft
// (it may be a legitimate external path this tool cannot verify); one that
// stays inside but does not exist is a hard failure.
func CheckRefs(root string, files []string, cfg domain.LintConfig, result *domain.LintResult) {
	for _, rel := range files {
		checkFileRefs(root, rel, cfg, result)
	}
}

func checkFileRefs(root, rel string, cfg domain.LintConfig, result *domain.LintResult) {
	lines, ok := readLines(abs(root, rel))
	if !ok {
		return
	}

	// Re-derive the canonical root per file rather than caching across the
	// run; a symlink may change between checks (known TOCTOU limitation).
	rootReal, err := filepath.EvalSymlinks(root)
	if err != nil {
		rootReal = root
	}

	seen := map[string]bool{}

	for i, line := range lines {
		lineno := i + 1

		var refs []string
		refs = append(refs, markdownLinkRefs(line)...)
		refs = append(refs, atImportRefs(line)...)
		refs = append(refs, standalonePathRefs(line)...)

		for _, ref := range refs {
			ref = strings.SplitN(ref, "#", 2)[0] // strip anchor
			if ref == "" {
				continue
			}
			if skipRefRE.MatchString(ref) {
				continue
			}
			if cfg.IgnoreRefs[ref] || cfg.IgnoreRefs[path.Base(ref)] {
				continue
			}
			if seen[ref] {
				continue
			}
			seen[ref] = true

			switch resolveRef(rootReal, ref) {
			case refEscapes:
				result.Add(domain.Diagnostic{
					Path:    rel,
					Lineno:  lineno,
					Message: fmt.Sprintf("ref '%s' escapes repo root — ignored", ref),
				})
			case refBroken:
				result.Add(domain.Diagnostic{
					Path:    rel,
					Lineno:  lineno,
					Message: fmt.Sprintf("broken ref → %s", ref),
					Hard:    true,
				})
			}
		}
	}
}

type refStatus int

const (
	refOK refStatus = iota
	refEscapes
	refBroken
)

// resolveRef resolves ref against the canonicalized root and classifies
// it. Symlinks are followed when the target exists; otherwise containment
// is judged on the lexically cleaned path so ../ escapes are still caught.
func resolveRef(rootReal, ref string) refStatus {
	target := filepath.Join(rootReal, filepath.FromSlash(ref))

	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		if !contains(rootReal, resolved) {
			return refEscapes
		}
		return refOK
	}

	if !contains(rootReal, target) {
		return refEscapes
	}
	return refBroken
}

func contains(root, target string) bool {
	return target == root || strings.HasPrefix(target, root+string(filepath.Separator))
}
