package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/stats"
)

var (
	flagBudgetType      string
	flagBudgetCurrency  string
	flagBudgetCategory  string
	flagBudgetThreshold float64
	flagBudgetStart     string
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Show budget status",
	RunE:  runBudgets,
}

var budgetsAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Create a budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsAdd,
}

var budgetsRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a budget",
	Args:    cobra.ExactArgs(1),
	RunE:    runBudgetsRemove,
}

func init() {
	budgetsAddCmd.Flags().StringVar(&flagBudgetType, "type", "monthly", "Budget type: monthly|yearly|category")
	budgetsAddCmd.Flags().StringVar(&flagBudgetCurrency, "currency", "", "ISO 4217 currency (default: settings)")
	budgetsAddCmd.Flags().StringVar(&flagBudgetCategory, "category", "", "Category filter (empty = all)")
	budgetsAddCmd.Flags().Float64Var(&flagBudgetThreshold, "threshold", 80, "Alert threshold percentage")
	budgetsAddCmd.Flags().StringVar(&flagBudgetStart, "start", "", "Period start, YYYY-MM-DD (default: today)")
	budgetsCmd.AddCommand(budgetsAddCmd, budgetsRemoveCmd)
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	budgets, err := e.budgets.List()
	if err != nil {
		return err
	}
	if len(budgets) == 0 {
		fmt.Println("\n  No budgets yet. Create one with `subtrack budgets add`.")
		return nil
	}
	subs, err := e.subs.List()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGETS"))
	fmt.Println()

	for _, bs := range stats.BudgetStatuses(budgets, subs) {
		b := bs.Budget
		scope := string(b.Type)
		if b.Category != "" {
			scope += " · " + b.Category
		}

		level := cli.LevelStyle(bs.Level).Render(string(bs.Level))
		fmt.Printf("  %s  %s  %s\n", cli.ShortID(b.ID), scope, level)
		fmt.Printf("    %s  %s / %s   %s – %s\n\n",
			cli.RenderProgressBar(bs.PercentUsed, 30),
			cli.FormatMoney(bs.Spent, b.Currency),
			cli.FormatMoney(b.Amount, b.Currency),
			cli.FormatDate(b.Period.Start),
			cli.FormatDate(b.Period.End),
		)
	}
	return nil
}

func runBudgetsAdd(_ *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	var amount float64
	if _, err := fmt.Sscanf(args[0], "%f", &amount); err != nil {
		return fmt.Errorf("parsing amount %q: %w", args[0], err)
	}

	currency := flagBudgetCurrency
	if currency == "" {
		settings, err := e.settings.Get()
		if err != nil {
			return err
		}
		currency = settings.DefaultCurrency
	}

	var start time.Time
	if flagBudgetStart != "" {
		start, err = time.Parse("2006-01-02", flagBudgetStart)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
	}

	b, err := e.budgets.Create(model.Budget{
		Type:           model.BudgetType(flagBudgetType),
		Amount:         amount,
		Currency:       currency,
		Category:       flagBudgetCategory,
		Period:         model.Period{Start: start},
		AlertThreshold: flagBudgetThreshold,
		Active:         true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n  Created %s budget %s: %s, alert at %.0f%%, %s – %s\n\n",
		b.Type,
		cli.ShortID(b.ID),
		cli.FormatMoney(b.Amount, b.Currency),
		b.AlertThreshold,
		cli.FormatDate(b.Period.Start),
		cli.FormatDate(b.Period.End),
	)
	return nil
}

func runBudgetsRemove(_ *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	budgets, err := e.budgets.List()
	if err != nil {
		return err
	}
	for _, b := range budgets {
		if b.ID == args[0] || cli.ShortID(b.ID) == args[0] {
			if err := e.budgets.Delete(b.ID); err != nil {
				return err
			}
			fmt.Printf("\n  Removed budget %s\n\n", cli.ShortID(b.ID))
			return nil
		}
	}
	return fmt.Errorf("budget %s not found", args[0])
}
