package main

import (
	"fmt"
	"strings"

	"InsiderPull/internal/domain/models"
	"InsiderPull/pkg/util"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED"))

	boxStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B82F6")).
		Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Width(12)

	buyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	sellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// renderSummary formats the end-of-run box printed by collect.
func renderSummary(snap *models.Snapshot, outputPath string) string {
	s := snap.Report.Summary
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}

	lines := []string{
		titleStyle.Render("Insider report published"),
		"",
		row("run", snap.RunID),
		row("updated", snap.Report.LastUpdated),
		row("output", outputPath),
	}
	if c := snap.Collection; c != nil {
		lines = append(lines,
			row("window", "since "+c.WindowStart),
			row("entities", fmt.Sprintf("%d ok, %d skipped, %d failed", c.Succeeded(), c.Skipped(), c.Failed())),
			row("records", fmt.Sprintf("%d fetched, %d retained", c.Fetched(), len(c.Records))),
		)
	}
	lines = append(lines,
		row("buy", buyStyle.Render(util.FormatEok(s.TotalBuy))),
		row("sell", sellStyle.Render(util.FormatEok(s.TotalSell))),
		row("net", util.FormatEok(s.NetAmount)+" ("+string(s.Sentiment)+")"),
		row("trades", fmt.Sprintf("%d", s.TotalTrades)),
	)

	if c := snap.Collection; c != nil {
		for _, f := range c.Failures() {
			lines = append(lines, warnStyle.Render(fmt.Sprintf("! %s %s: %v", f.StockCode, f.Name, f.Err)))
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
