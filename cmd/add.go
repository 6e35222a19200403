package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/model"
)

var (
	flagAddCost       float64
	flagAddCurrency   string
	flagAddCycle      string
	flagAddCustomDays int
	flagAddNext       string
	flagAddCategory   string
	flagAddNotes      string
	flagAddRemind     []int
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().Float64Var(&flagAddCost, "cost", 0, "Cost per billing cycle (required)")
	addCmd.Flags().StringVar(&flagAddCurrency, "currency", "", "ISO 4217 currency (default: settings)")
	addCmd.Flags().StringVar(&flagAddCycle, "cycle", "monthly", "Billing cycle: daily|weekly|monthly|quarterly|yearly|custom")
	addCmd.Flags().IntVar(&flagAddCustomDays, "every", 0, "Day interval for custom cycles")
	addCmd.Flags().StringVar(&flagAddNext, "next", "", "Next billing date, YYYY-MM-DD (default: today)")
	addCmd.Flags().StringVar(&flagAddCategory, "category", "", "Category name")
	addCmd.Flags().StringVar(&flagAddNotes, "notes", "", "Free-form notes")
	addCmd.Flags().IntSliceVar(&flagAddRemind, "remind", nil, "Reminder offsets in days, e.g. --remind 1,3,7")
	_ = addCmd.MarkFlagRequired("cost")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	currency := flagAddCurrency
	if currency == "" {
		settings, err := e.settings.Get()
		if err != nil {
			return err
		}
		currency = settings.DefaultCurrency
	}

	next := time.Now().Truncate(24 * time.Hour)
	if flagAddNext != "" {
		next, err = time.Parse("2006-01-02", flagAddNext)
		if err != nil {
			return fmt.Errorf("parsing --next: %w", err)
		}
	}

	sub, err := e.subs.Create(model.Subscription{
		Name:     args[0],
		Cost:     flagAddCost,
		Currency: currency,
		Cycle: model.BillingCycle{
			Type:       model.CycleType(flagAddCycle),
			CustomDays: flagAddCustomDays,
		},
		NextBillingDate: next,
		Category:        flagAddCategory,
		Notes:           flagAddNotes,
		ReminderDays:    flagAddRemind,
		Active:          true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n  Added %s (%s), %s %s, next billing %s\n\n",
		sub.Name,
		cli.ShortID(sub.ID),
		cli.FormatMoney(sub.Cost, sub.Currency),
		cli.FormatCycle(string(sub.Cycle.Type), sub.Cycle.CustomDays),
		cli.FormatDate(sub.NextBillingDate),
	)
	return nil
}
