package domain

import (
	"encoding/json"
	"sort"
)

// Diagnostic is one reported lint issue. Hard diagnostics cause a non-zero
// exit in the embedding CLI; soft ones are advisory.
type Diagnostic struct {
	Path    string `json:"path"`
	Lineno  int    `json:"lineno"` // 0 = not line-specific
	Message string `json:"message"`
	Hard    bool   `json:"hard"`
}

// LintResult aggregates the diagnostics and per-file line counts of one
// lint run. Diagnostic order is insertion order and deterministic for a
// fixed input tree and config.
type LintResult struct {
	Diagnostics []Diagnostic   `json:"diagnostics"`
	FileSizes   map[string]int `json:"file_sizes"`
}

// NewLintResult returns an empty result ready for checks to append into.
func NewLintResult() *LintResult {
	return &LintResult{FileSizes: map[string]int{}}
}

// Add appends a diagnostic.
func (r *LintResult) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// HasHard reports whether any diagnostic is hard.
func (r *LintResult) HasHard() bool {
	for _, d := range r.Diagnostics {
		if d.Hard {
			return true
		}
	}
	return false
}

// LintSummary counts diagnostics by severity.
type LintSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summary returns the severity counts for this result.
func (r *LintResult) Summary() LintSummary {
	s := LintSummary{Total: len(r.Diagnostics)}
	for _, d := range r.Diagnostics {
		if d.Hard {
			s.Errors++
		} else {
			s.Warnings++
		}
	}
	return s
}

// MarshalJSON emits the stable wire shape consumed by tooling:
// diagnostics, file_sizes, and a derived summary.
func (r *LintResult) MarshalJSON() ([]byte, error) {
	diags := r.Diagnostics
	if diags == nil {
		diags = []Diagnostic{}
	}
	return json.Marshal(struct {
		Diagnostics []Diagnostic   `json:"diagnostics"`
		FileSizes   map[string]int `json:"file_sizes"`
		Summary     LintSummary    `json:"summary"`
	}{diags, r.FileSizes, r.Summary()})
}

// FileSize is one entry of the top-offenders ranking.
type FileSize struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// TopOffenders returns the n largest files by line count, ties broken by
// path so the ranking is deterministic.
func (r *LintResult) TopOffenders(n int) []FileSize {
	all := make([]FileSize, 0, len(r.FileSizes))
	for path, lines := range r.FileSizes {
		all = append(all, FileSize{Path: path, Lines: lines})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Lines != all[j].Lines {
			return all[i].Lines > all[j].Lines
		}
		return all[i].Path < all[j].Path
	})
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}
