package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/cli"
)

var payCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Record a payment and advance the billing date",
	Args:  cobra.ExactArgs(1),
	RunE:  runPay,
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a subscription",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var pauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Deactivate a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSetActive(args[0], false)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Reactivate a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSetActive(args[0], true)
	},
}

func init() {
	rootCmd.AddCommand(payCmd, removeCmd, pauseCmd, resumeCmd)
}

func runPay(_ *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	sub, err := e.subs.FindByPrefix(args[0])
	if err != nil {
		return err
	}

	paid := sub.NextBillingDate
	sub, err = e.subs.RecordPayment(sub.ID)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Recorded %s payment for %s on %s; next billing %s\n\n",
		cli.FormatMoney(sub.Cost, sub.Currency),
		sub.Name,
		cli.FormatDate(paid),
		cli.FormatDate(sub.NextBillingDate),
	)
	return nil
}

func runRemove(_ *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	sub, err := e.subs.FindByPrefix(args[0])
	if err != nil {
		return err
	}
	if err := e.subs.Delete(sub.ID); err != nil {
		return err
	}
	fmt.Printf("\n  Removed %s\n\n", sub.Name)
	return nil
}

func runSetActive(prefix string, active bool) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	sub, err := e.subs.FindByPrefix(prefix)
	if err != nil {
		return err
	}
	sub, err = e.subs.SetActive(sub.ID, active)
	if err != nil {
		return err
	}

	verb := "Paused"
	if active {
		verb = "Resumed"
	}
	fmt.Printf("\n  %s %s\n\n", verb, sub.Name)
	return nil
}
