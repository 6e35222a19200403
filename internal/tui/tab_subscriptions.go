package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/subtrack/internal/billing"
	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/tui/components"
	"github.com/theirongolddev/subtrack/internal/tui/theme"
)

func (a App) renderSubscriptionsTab(cw int) string {
	t := theme.Active

	if len(a.subs) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("  No subscriptions yet. Press [a] to add one.")
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	pausedStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	innerW := components.CardInnerWidth(cw)
	nameW := innerW / 3
	if nameW > 28 {
		nameW = 28
	}

	now := time.Now()
	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-*s %10s  %-10s %-12s %-12s %s",
		nameW, "Name", "Cost", "Cycle", "Next", "Due", "Category")))
	b.WriteString("\n")

	for i, s := range a.subs {
		due := billing.DaysUntilRenewal(now, s.NextBillingDate)
		line := fmt.Sprintf("  %-*s %10s  %-10s %-12s %-12s %s",
			nameW, truncate(s.Name, nameW),
			cli.FormatMoney(s.Cost, s.Currency),
			cli.FormatCycle(string(s.Cycle.Type), s.Cycle.CustomDays),
			cli.FormatDate(s.NextBillingDate),
			cli.FormatRelativeDays(due),
			s.Category,
		)

		style := rowStyle
		if !s.Active {
			style = pausedStyle
			line += "  (paused)"
		}
		if i == a.selected {
			style = selStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	// Detail panel for the selected subscription
	if sub, ok := a.selectedSub(); ok {
		var d strings.Builder
		fmt.Fprintf(&d, "monthly equivalent %s",
			cli.FormatMoney(billing.MonthlyEquivalent(sub), sub.Currency))
		if len(sub.History) > 0 {
			last := sub.History[len(sub.History)-1]
			fmt.Fprintf(&d, "  ·  %d payments, last %s",
				len(sub.History), cli.FormatDate(last.Date))
		}
		if sub.Notes != "" {
			fmt.Fprintf(&d, "\n%s", sub.Notes)
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard(sub.Name, d.String(), cw))
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
