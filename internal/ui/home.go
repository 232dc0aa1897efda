package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderHomeScreen builds the banner shown when an interactive session
// starts: the directory being scanned, the data files found there, and the
// profiles available in the store.
func RenderHomeScreen(dir string, files, profiles []string) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	frameStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 2)

	lines := []string{
		titleStyle.Render(fmt.Sprintf("csvtrim | %s", dir)),
		"",
		sectionStyle.Render("Data files:"),
	}
	for _, f := range truncateStrings(files, 8) {
		lines = append(lines, fmt.Sprintf("  - %s", f))
	}
	if len(files) == 0 {
		lines = append(lines, metaStyle.Render("  (no .csv or .xlsx files here)"))
	} else if rest := len(files) - 8; rest > 0 {
		lines = append(lines, metaStyle.Render(fmt.Sprintf("  … and %d more", rest)))
	}

	lines = append(lines, "", sectionStyle.Render("Profiles:"))
	for _, p := range truncateStrings(profiles, 8) {
		lines = append(lines, fmt.Sprintf("  - %s", p))
	}
	if len(profiles) == 0 {
		lines = append(lines, metaStyle.Render("  (no profiles yet; the wizard can create one)"))
	}

	lines = append(lines, "", "Tip: use `csvtrim trim` for scripted, non-interactive runs")
	return frameStyle.Render(strings.Join(lines, "\n"))
}

func truncateStrings(values []string, limit int) []string {
	if len(values) <= limit {
		return values
	}
	return values[:limit]
}
