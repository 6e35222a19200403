package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/stats"
	"github.com/theirongolddev/subtrack/internal/tui/components"
	"github.com/theirongolddev/subtrack/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary
	var b strings.Builder

	// Row 1: Metric cards
	nextSub := "-"
	if s.NextRenewal != "" {
		nextSub = fmt.Sprintf("%s %s", s.NextRenewal, cli.FormatRelativeDays(s.NextRenewalIn))
	}
	cards := []struct{ Label, Value, Sublabel string }{
		{"Monthly", cli.FormatMoney(s.MonthlyTotal, s.Currency),
			cli.FormatMoney(s.AverageMonthly, s.Currency) + " avg"},
		{"Yearly", cli.FormatMoney(s.YearlyTotal, s.Currency), ""},
		{"Active", fmt.Sprintf("%d", s.ActiveCount),
			fmt.Sprintf("%d total", s.TotalCount)},
		{"Next renewal", nextSub, ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Category split + budget health side by side
	halves := components.LayoutRow(cw, 2)
	innerW := components.CardInnerWidth(halves[0])

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var catBody strings.Builder
	var maxShare float64
	for _, c := range a.byCat {
		if c.SharePercent > maxShare {
			maxShare = c.SharePercent
		}
	}
	nameW := innerW / 3
	if nameW < 10 {
		nameW = 10
	}
	barMaxLen := innerW - nameW - 8
	if barMaxLen < 1 {
		barMaxLen = 1
	}
	for _, c := range a.byCat {
		barLen := 0
		if maxShare > 0 {
			barLen = int(c.SharePercent / maxShare * float64(barMaxLen))
		}
		fmt.Fprintf(&catBody, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, c.Category)),
			barStyle.Render(strings.Repeat("█", barLen)),
			pctStyle.Render(fmt.Sprintf("%.0f%%", c.SharePercent)))
	}
	if catBody.Len() == 0 {
		catBody.WriteString(pctStyle.Render("no active subscriptions"))
	}

	var budBody strings.Builder
	budInnerW := components.CardInnerWidth(halves[1])
	for _, bs := range a.statuses {
		label := string(bs.Budget.Type)
		if bs.Budget.Category != "" {
			label = bs.Budget.Category
		}
		barW := budInnerW - 14 - 6
		if barW < 8 {
			barW = 8
		}
		budBody.WriteString(components.BudgetBar(label, bs.PercentUsed, bs.Level, 14, barW))
		budBody.WriteString("\n")
	}
	if budBody.Len() == 0 {
		budBody.WriteString(pctStyle.Render("no budgets configured"))
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard("By Category", catBody.String(), halves[0]),
		components.ContentCard("Budgets", budBody.String(), halves[1]),
	}))
	b.WriteString("\n")

	// Row 3: 12-month payment trend
	history := stats.MonthlyHistory(a.subs, a.settings, time.Now(), 12)
	values := make([]float64, len(history))
	var total float64
	for i, m := range history {
		values[i] = m.Total
		total += m.Total
	}
	if total > 0 {
		body := cli.RenderSparkline(values) +
			"  " +
			pctStyle.Render(cli.FormatMoney(total, s.Currency)+" paid")
		b.WriteString(components.ContentCard("Payments, last 12 months", body, cw))
	}

	return b.String()
}
