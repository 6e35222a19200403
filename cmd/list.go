package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/billing"
	"github.com/theirongolddev/subtrack/internal/cli"
)

var flagListCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListCategory, "category", "", "Filter by category")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
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

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].NextBillingDate.Before(subs[j].NextBillingDate)
	})

	now := time.Now()
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		if !flagAll && !s.Active {
			continue
		}
		if flagListCategory != "" && s.Category != flagListCategory {
			continue
		}

		status := "active"
		if !s.Active {
			status = "paused"
		}
		rows = append(rows, []string{
			cli.ShortID(s.ID),
			s.Name,
			cli.FormatMoney(s.Cost, s.Currency),
			cli.FormatCycle(string(s.Cycle.Type), s.Cycle.CustomDays),
			cli.FormatDate(s.NextBillingDate),
			cli.FormatRelativeDays(billing.DaysUntilRenewal(now, s.NextBillingDate)),
			s.Category,
			status,
		})
	}

	if len(rows) == 0 {
		fmt.Println("\n  No subscriptions match the filter.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"ID", "Name", "Cost", "Cycle", "Next Billing", "Due", "Category", "Status"},
		Rows:      rows,
		AlignLeft: map[int]bool{0: true, 1: true, 3: true, 5: true, 6: true, 7: true},
	}))
	fmt.Println()
	return nil
}
