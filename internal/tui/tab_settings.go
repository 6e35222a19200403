package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/tui/components"
	"github.com/theirongolddev/subtrack/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-20s", label)) + valueStyle.Render(value)
	}

	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	s := a.settings

	var general strings.Builder
	general.WriteString(row("Default currency", s.DefaultCurrency))
	general.WriteString("\n")
	general.WriteString(row("Enabled currencies", strings.Join(s.EnabledCurrencies, ", ")))
	general.WriteString("\n")
	general.WriteString(row("Theme", theme.Active.Name) + labelStyle.Render("  (press t to cycle)"))

	var notif strings.Builder
	notif.WriteString(row("Renewal alerts", onOff(s.NotifyRenewals)))
	notif.WriteString("\n")
	notif.WriteString(row("Budget alerts", onOff(s.NotifyBudgets)))

	var rates strings.Builder
	if len(s.Rates) == 0 {
		rates.WriteString(labelStyle.Render("No exchange rates stored. Run `subtrack rates -u` to fetch."))
	} else {
		if !s.RatesUpdatedAt.IsZero() {
			rates.WriteString(row("Updated", cli.FormatDate(s.RatesUpdatedAt)))
			rates.WriteString("\n")
		}
		bases := make([]string, 0, len(s.Rates))
		for base := range s.Rates {
			bases = append(bases, base)
		}
		sort.Strings(bases)
		for _, base := range bases {
			rates.WriteString(row("Base "+base, fmt.Sprintf("%d rates", len(s.Rates[base]))))
			rates.WriteString("\n")
		}
	}

	sections := []string{
		components.ContentCard("General", general.String(), cw),
		components.ContentCard("Notifications", notif.String(), cw),
		components.ContentCard("Exchange Rates", strings.TrimRight(rates.String(), "\n"), cw),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
