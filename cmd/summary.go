package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/stats"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending overview across all subscriptions",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	subs, err := e.subs.List()
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("\n  No subscriptions yet. Add one with `subtrack add`.")
		return nil
	}

	settings, err := e.settings.Get()
	if err != nil {
		return err
	}
	if flagCurrency != "" {
		settings.DefaultCurrency = flagCurrency
	}

	now := time.Now()
	s := stats.Summarize(subs, settings, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SUBSCRIPTION SUMMARY"))
	fmt.Println()

	rows := [][]string{
		{"Active subscriptions", fmt.Sprintf("%d of %d", s.ActiveCount, s.TotalCount)},
		{"Monthly spend", cli.FormatMoney(s.MonthlyTotal, s.Currency)},
		{"Yearly spend", cli.FormatMoney(s.YearlyTotal, s.Currency)},
		{"Average per subscription", cli.FormatMoney(s.AverageMonthly, s.Currency)},
	}
	if s.MostExpensive != "" {
		rows = append(rows, []string{"Most expensive", s.MostExpensive})
	}
	if s.NextRenewal != "" {
		rows = append(rows, []string{"Next renewal",
			fmt.Sprintf("%s (%s)", s.NextRenewal, cli.FormatRelativeDays(s.NextRenewalIn))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	// Category breakdown with proportional bars
	cats := stats.ByCategory(subs, settings)
	if len(cats) > 0 {
		var maxSpend float64
		for _, c := range cats {
			if c.MonthlyTotal > maxSpend {
				maxSpend = c.MonthlyTotal
			}
		}
		catRows := make([][]string, 0, len(cats))
		for _, c := range cats {
			catRows = append(catRows, []string{
				c.Category,
				fmt.Sprintf("%d", c.Count),
				cli.FormatMoney(c.MonthlyTotal, s.Currency),
				cli.FormatPercent(c.SharePercent),
				cli.RenderHorizontalBar(c.MonthlyTotal, maxSpend, 20),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:     "By Category (monthly)",
			Headers:   []string{"Category", "Subs", "Spend", "Share", ""},
			Rows:      catRows,
			AlignLeft: map[int]bool{0: true, 4: true},
		}))
		fmt.Println()
	}

	// 12-month payment trend
	history := stats.MonthlyHistory(subs, settings, now, 12)
	values := make([]float64, len(history))
	var any bool
	for i, m := range history {
		values[i] = m.Total
		if m.Total > 0 {
			any = true
		}
	}
	if any {
		fmt.Printf("  Payments, last 12 months:  %s\n\n", cli.RenderSparkline(values))
	}

	return nil
}
