package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/tui/theme"
)

// ColorForLevel maps a budget alert level to its theme color.
func ColorForLevel(level model.AlertLevel) lipgloss.Color {
	t := theme.Active
	switch level {
	case model.AlertDanger:
		return t.Red
	case model.AlertWarning:
		return t.Orange
	case model.AlertInfo:
		return t.Blue
	default:
		return t.Green
	}
}

// BudgetBar renders a labeled budget progress bar with the percentage
// and alert-level coloring. pct is 0-100 and may exceed 100; the bar
// clamps, the number does not.
func BudgetBar(label string, pct float64, level model.AlertLevel, labelW, barWidth int) string {
	t := theme.Active

	p := pct / 100
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(ColorForLevel(level))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(ColorForLevel(level)).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(p) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}
