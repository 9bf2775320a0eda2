package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dialoglint/dialoglint/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	internalStyle = lipgloss.NewStyle().Foreground(danger).Reverse(true).Bold(true)
	pathStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats one lint run for terminal output.
func RenderResult(result *domain.ValidationResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("dialoglint")
	subtitle := dimStyle.Render(result.Source)
	if result.Source == "" {
		subtitle = dimStyle.Render("dialog validation")
	}
	statusLine := statusStyle(result.Status).Render(strings.ToUpper(result.Status))
	profileLine := dimStyle.Render("profile: " + result.Profile)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + statusLine + "\n" + profileLine))
	b.WriteString("\n\n")

	// ── Findings ──
	if len(result.Findings) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Findings"))
		b.WriteString("  ")
		if result.ErrorCount > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", result.ErrorCount)))
			b.WriteString("  ")
		}
		if result.WarningCount > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", result.WarningCount)))
		}
		b.WriteString("\n\n")

		for _, f := range result.Findings {
			renderFinding(&b, f)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	return b.String()
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	tag := severityTag(f.Severity)
	if f.Internal {
		tag = internalStyle.Render("internal")
	}

	location := f.Path
	if f.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", f.Path, f.Line)
	}

	fmt.Fprintf(b, "    %s %s\n", tag, pathStyle.Render(location))
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(f.Message))
	fmt.Fprintf(b, "         %s\n", faintStyle.Render(f.RuleID))
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case domain.StatusPass:
		return passStyle.Bold(true)
	case domain.StatusWarn:
		return warnStyle.Bold(true)
	default:
		return failStyle.Bold(true)
	}
}

// RenderRules formats the active rule catalog for terminal output.
func RenderRules(profile domain.Profile, rules []domain.Rule) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Rule catalog") + "  " + dimStyle.Render("profile: "+string(profile)) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, r := range rules {
		fmt.Fprintf(&b, "    %s %s\n", severityTag(r.Severity), titleStyle.Render(r.ID))
		fmt.Fprintf(&b, "         %s\n", dimStyle.Render(r.Description))
	}

	return b.String()
}

// RenderHistory formats past lint runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No lint history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Lint History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		if e.Dirty {
			// Uncommitted changes; the hash alone doesn't describe the run.
			hash += "*"
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		counts := fmt.Sprintf("%d errors, %d warnings", e.Errors, e.Warnings)

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			statusStyle(e.Status).Render(strings.ToUpper(e.Status)),
			dimStyle.Render(counts),
			e.Source,
		)
	}

	return b.String()
}
