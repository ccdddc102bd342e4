package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/shipit/internal/game"
	"github.com/lox/shipit/internal/simulator"
	"github.com/lox/shipit/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Width(22)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func renderReport(stats *statistics.Statistics, sc simulator.Config, elapsed time.Duration) string {
	var b strings.Builder

	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("%d games, %d players, %s policy", stats.Games, sc.Players, sc.Policy.Name())))
	fmt.Fprintln(&b, dimStyle.Render(fmt.Sprintf("seed %s, %d workers, %s", sc.Seed, sc.Workers, elapsed.Round(time.Millisecond))))
	fmt.Fprintln(&b)

	lo, hi := stats.WinRateCI95()
	fmt.Fprintln(&b, row("Won", winStyle.Render(fmt.Sprintf("%d (%.1f%%)", stats.Wins, stats.WinRate()*100))))
	fmt.Fprintln(&b, row("Lost", lossStyle.Render(fmt.Sprintf("%d", stats.Losses))))
	fmt.Fprintln(&b, row("Win rate 95% CI", fmt.Sprintf("[%.1f%%, %.1f%%]", lo*100, hi*100)))
	fmt.Fprintln(&b, row("Turns", fmt.Sprintf("mean %.2f, median %.1f, sd %.2f", stats.MeanTurns(), stats.Median(), stats.StdDev())))
	fmt.Fprintln(&b, row("Turn percentiles", fmt.Sprintf("P5=%.1f P25=%.1f P75=%.1f P95=%.1f",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))))
	fmt.Fprintln(&b, row("Features per game", fmt.Sprintf("%.2f", stats.CompletionsPerGame())))
	fmt.Fprintln(&b, row("Contractor penalties", fmt.Sprintf("%d (%.1f%% of completions)", stats.Penalized, stats.PenaltyRate()*100)))
	fmt.Fprintln(&b, row("Revoked by deadlines", fmt.Sprintf("%d", stats.Revoked)))

	kinds := make([]string, 0, len(stats.Events))
	for kind := range stats.Events {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", kind, stats.Events[kind]))
	}
	if len(parts) > 0 {
		fmt.Fprintln(&b, row("Events drawn", strings.Join(parts, " ")))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func renderLog(g *game.Game) string {
	var b strings.Builder
	for _, entry := range g.Log {
		who := entry.PlayerID
		if who == "" {
			who = "-"
		}
		line := fmt.Sprintf("%s %-3s %-8s %s",
			dimStyle.Render(fmt.Sprintf("t%-2d", entry.Turn)), who, entry.Type, entry.Message)
		switch entry.Type {
		case game.LogComplete:
			line = winStyle.Render(line)
		case game.LogEvent:
			line = lossStyle.Render(line)
		}
		fmt.Fprintln(&b, line)
	}
	return b.String()
}

func renderOutcome(g *game.Game) string {
	style := lossStyle
	if g.Status == game.StatusWon {
		style = winStyle
	}
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("%s on turn %d", g.Status, g.Turn)))
	for _, p := range g.Players {
		fmt.Fprintln(&b, row(p.Name, fmt.Sprintf("%d features, %d pts", len(p.CompletedFeatures), p.Score)))
	}
	return style.Render(boxStyle.Render(strings.TrimRight(b.String(), "\n"))) + "\n"
}
