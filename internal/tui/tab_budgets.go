package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/tui/components"
	"github.com/theirongolddev/subtrack/internal/tui/theme"
)

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active

	if len(a.statuses) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("  No budgets configured. Use `subtrack budgets add` to create one.")
	}

	innerW := components.CardInnerWidth(cw)
	labelW := 18
	barW := innerW - labelW - 10
	if barW < 10 {
		barW = 10
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, st := range a.statuses {
		label := budgetLabel(st.Budget.Type, st.Budget.Category)
		bar := components.BudgetBar(label, st.PercentUsed, st.Level, labelW, barW)

		detail := fmt.Sprintf("    %s of %s  ·  %s → %s  ·  alert at %s",
			cli.FormatMoney(st.Spent, st.Budget.Currency),
			cli.FormatMoney(st.Budget.Amount, st.Budget.Currency),
			cli.FormatDate(st.Budget.Period.Start),
			cli.FormatDate(st.Budget.Period.End),
			cli.FormatPercent(st.Budget.AlertThreshold),
		)

		style := rowStyle
		if i == a.selected {
			style = selStyle
		}
		b.WriteString(style.Render("  " + bar))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(detail))
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func budgetLabel(budgetType model.BudgetType, category string) string {
	switch budgetType {
	case model.BudgetCategory:
		if category != "" {
			return category
		}
		return "Category"
	case model.BudgetYearly:
		return "Yearly"
	default:
		return "Monthly"
	}
}
