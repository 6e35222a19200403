package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/tui/theme"
)

func (a App) renderRenewalsTab(cw int) string {
	t := theme.Active

	if len(a.renewals) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("  Nothing due in the next %d days.", a.svc.Horizon))
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	overdueStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	soonStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-14s %-28s %10s  %-12s %s",
		"Due", "Name", "Cost", "Date", "Category")))
	b.WriteString("\n")

	for _, r := range a.renewals {
		line := fmt.Sprintf("  %-14s %-28s %10s  %-12s %s",
			cli.FormatRelativeDays(r.DaysLeft),
			truncate(r.Subscription.Name, 28),
			cli.FormatMoney(r.Subscription.Cost, r.Subscription.Currency),
			cli.FormatDate(r.DueDate),
			r.Subscription.Category,
		)
		b.WriteString(renewalRowStyle(r, rowStyle, soonStyle, overdueStyle).Render(line))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renewalRowStyle(r model.UpcomingRenewal, normal, soon, overdue lipgloss.Style) lipgloss.Style {
	switch {
	case r.DaysLeft < 0:
		return overdue
	case r.DaysLeft <= 3:
		return soon
	default:
		return normal
	}
}
