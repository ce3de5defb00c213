// Package tui renders lint and scaffold results for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentinit/agentinit/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning)
)

// topOffenderCount is how many oversized files the lint report lists.
const topOffenderCount = 3

func location(d domain.Diagnostic) string {
	if d.Lineno > 0 {
		return fmt.Sprintf("%s:%d", d.Path, d.Lineno)
	}
	return d.Path
}

func renderDiagnostic(b *strings.Builder, d domain.Diagnostic) {
	tag := warnTagStyle.Render("warn ")
	if d.Hard {
		tag = errorTagStyle.Render("ERROR")
	}
	fmt.Fprintf(b, "  %s  %s: %s\n", tag, dimStyle.Render(location(d)), d.Message)
}

// RenderLintResult renders the full text report: warnings, then errors,
// then the largest files, then a one-line summary.
func RenderLintResult(result *domain.LintResult) string {
	var b strings.Builder

	if len(result.Diagnostics) == 0 {
		b.WriteString(passStyle.Render("contextlint: all clear ✓"))
		b.WriteString("\n")
		return b.String()
	}

	var hards, softs []domain.Diagnostic
	for _, d := range result.Diagnostics {
		if d.Hard {
			hards = append(hards, d)
		} else {
			softs = append(softs, d)
		}
	}

	if len(softs) > 0 {
		b.WriteString(titleStyle.Render("Warnings:"))
		b.WriteString("\n")
		for _, d := range softs {
			renderDiagnostic(&b, d)
		}
	}

	if len(hards) > 0 {
		if len(softs) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render("Errors:"))
		b.WriteString("\n")
		for _, d := range hards {
			renderDiagnostic(&b, d)
		}
	}

	if offenders := result.TopOffenders(topOffenderCount); len(offenders) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Top offenders by size:"))
		b.WriteString("\n")
		for _, o := range offenders {
			fmt.Fprintf(&b, "  %s: %d lines\n", o.Path, o.Lines)
		}
	}

	s := result.Summary()
	fmt.Fprintf(&b, "\ncontextlint: %d %s (%d %s, %d %s)\n",
		s.Total, plural(s.Total, "issue"),
		s.Errors, plural(s.Errors, "error"),
		s.Warnings, plural(s.Warnings, "warning"))

	return b.String()
}

// RenderStatus renders the managed-file inventory, git position, and lint
// summary for the status command.
func RenderStatus(entries []domain.StatusEntry, branch, commit string, summary domain.LintSummary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("agentinit status"))
	b.WriteString("\n\n")

	for _, e := range entries {
		if e.Present {
			mark := passStyle.Render("✓")
			if e.Lines > 0 {
				fmt.Fprintf(&b, "  %s %s %s\n", mark, e.Path, dimStyle.Render(fmt.Sprintf("(%d lines)", e.Lines)))
			} else {
				fmt.Fprintf(&b, "  %s %s\n", mark, e.Path)
			}
		} else {
			fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("·"), dimStyle.Render(e.Path+" (missing)"))
		}
	}

	if branch != "" {
		b.WriteString("\n")
		short := commit
		if len(short) > 7 {
			short = short[:7]
		}
		fmt.Fprintf(&b, "  %s %s @ %s\n", dimStyle.Render("git:"), branch, short)
	}

	fmt.Fprintf(&b, "\n  lint: %d %s (%d %s, %d %s)\n",
		summary.Total, plural(summary.Total, "issue"),
		summary.Errors, plural(summary.Errors, "error"),
		summary.Warnings, plural(summary.Warnings, "warning"))

	return b.String()
}

// RenderScaffoldReport renders what init/new copied and skipped.
func RenderScaffoldReport(report *domain.ScaffoldReport) string {
	var b strings.Builder

	for _, w := range report.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", warnTagStyle.Render("warn "), w)
	}
	for _, rel := range report.Copied {
		fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("created"), rel)
	}
	for _, rel := range report.Skipped {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("skipped"), dimStyle.Render(rel))
	}

	fmt.Fprintf(&b, "\n%d created, %d skipped\n", len(report.Copied), len(report.Skipped))
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
