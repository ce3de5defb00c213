package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentinit/agentinit/internal/domain"
)

// dupMinLines is the window size: shorter matches are common incidental
// phrasing (shared headings) and would flood the output with noise.
const dupMinLines = 4

type dupLoc struct {
	file   string
	lineno int // first occurrence of the fingerprint in that file
}

// CheckDuplicates finds blocks of dupMinLines consecutive non-blank
// trimmed lines shared byte-for-byte across two or more files. Each
// distinct set of files sharing blocks is reported once, on the
// alphabetically-first file, regardless of how many regions they share.
func CheckDuplicates(root string, files []string, result *domain.LintResult) {
	// Inverted index: fingerprint -> locations, at most one per file.
	fpToLocs := map[string][]dupLoc{}

	for _, rel := range files {
		raw, ok := readLines(abs(root, rel))
		if !ok {
			continue
		}

		// Normalize: trim, drop blanks, keep original 1-based linenos.
		// A blank line never breaks a block but never counts toward it.
		type normLine struct {
			lineno int
			text   string
		}
		var norm []normLine
		for i, line := range raw {
			if t := strings.TrimSpace(line); t != "" {
				norm = append(norm, normLine{i + 1, t})
			}
		}
		if len(norm) < dupMinLines {
			continue
		}

		emitted := map[string]bool{}
		for i := 0; i+dupMinLines <= len(norm); i++ {
			parts := make([]string, dupMinLines)
			for j := 0; j < dupMinLines; j++ {
				parts[j] = norm[i+j].text
			}
			fp := strings.Join(parts, "\n")
			if !emitted[fp] {
				emitted[fp] = true
				fpToLocs[fp] = append(fpToLocs[fp], dupLoc{rel, norm[i].lineno})
			}
		}
	}

	fps := make([]string, 0, len(fpToLocs))
	for fp := range fpToLocs {
		fps = append(fps, fp)
	}
	sort.Strings(fps) // deterministic iteration

	reported := map[string]bool{}
	for _, fp := range fps {
		locs := fpToLocs[fp]
		if len(locs) < 2 {
			continue
		}

		first := map[string]int{}
		for _, loc := range locs {
			if prev, ok := first[loc.file]; !ok || loc.lineno < prev {
				first[loc.file] = loc.lineno
			}
		}

		sortedFiles := make([]string, 0, len(first))
		for f := range first {
			sortedFiles = append(sortedFiles, f)
		}
		sort.Strings(sortedFiles)

		// One diagnostic per file set, keyed independently of the
		// fingerprint, so long shared regions report once.
		pairKey := strings.Join(sortedFiles, "\x00")
		if reported[pairKey] {
			continue
		}
		reported[pairKey] = true

		primary := sortedFiles[0]
		others := make([]string, 0, len(sortedFiles)-1)
		for _, f := range sortedFiles[1:] {
			others = append(others, fmt.Sprintf("%s:%d", f, first[f]))
		}

		result.Add(domain.Diagnostic{
			Path:    primary,
			Lineno:  first[primary],
			Message: fmt.Sprintf("duplicate block found also in %s — consider consolidating", strings.Join(others, ", ")),
		})
	}
}
