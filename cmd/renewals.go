package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/stats"
)

var flagRenewalDays int

var renewalsCmd = &cobra.Command{
	Use:   "renewals",
	Short: "Upcoming renewals within the horizon",
	RunE:  runRenewals,
}

func init() {
	renewalsCmd.Flags().IntVarP(&flagRenewalDays, "days", "n", 0, "Horizon in days (default: config)")
	rootCmd.AddCommand(renewalsCmd)
}

func runRenewals(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	horizon := flagRenewalDays
	if horizon <= 0 {
		horizon = e.cfg.General.RenewalHorizon
	}

	subs, err := e.subs.List()
	if err != nil {
		return err
	}

	upcoming := stats.UpcomingRenewals(subs, time.Now(), horizon)
	if len(upcoming) == 0 {
		fmt.Printf("\n  Nothing due in the next %dd.\n\n", horizon)
		return nil
	}

	rows := make([][]string, 0, len(upcoming))
	for _, r := range upcoming {
		rows = append(rows, []string{
			r.Subscription.Name,
			cli.FormatMoney(r.Subscription.Cost, r.Subscription.Currency),
			cli.FormatDate(r.DueDate),
			cli.FormatRelativeDays(r.DaysLeft),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Renewals, next %dd", horizon),
		Headers:   []string{"Name", "Cost", "Date", "Due"},
		Rows:      rows,
		AlignLeft: map[int]bool{0: true, 3: true},
	}))
	fmt.Println()
	return nil
}
