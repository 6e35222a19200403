package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/rates"
)

var flagRatesUpdate bool

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show or update exchange rates",
	RunE:  runRates,
}

func init() {
	ratesCmd.Flags().BoolVarP(&flagRatesUpdate, "update", "u", false, "Fetch fresh rates for the default currency")
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	settings, err := e.settings.Get()
	if err != nil {
		return err
	}
	base := settings.DefaultCurrency

	if flagRatesUpdate {
		client := rates.NewClient(e.cfg.Rates.BaseURL)
		fetched, err := client.Fetch(cmd.Context(), base)
		if err != nil {
			// Keep the stored table; stale rates beat no rates.
			fmt.Fprintf(cmd.ErrOrStderr(), "  Rate update failed (%v), keeping stored rates\n", err)
		} else {
			if err := e.settings.UpdateRates(base, fetched); err != nil {
				return err
			}
			settings, err = e.settings.Get()
			if err != nil {
				return err
			}
			fmt.Printf("\n  Updated %d rates for %s\n", len(fetched), base)
		}
	}

	table := settings.Rates[base]
	if len(table) == 0 {
		fmt.Println("\n  No stored rates. Run `subtrack rates --update`.")
		return nil
	}

	// Show the enabled currencies first, the rest omitted.
	enabled := make(map[string]bool, len(settings.EnabledCurrencies))
	for _, c := range settings.EnabledCurrencies {
		enabled[c] = true
	}

	var codes []string
	for code := range table {
		if enabled[code] && code != base {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, []string{code, fmt.Sprintf("%.4f", table[code])})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("1 %s buys", base),
		Headers: []string{"Currency", "Rate"},
		Rows:    rows,
	}))
	if !settings.RatesUpdatedAt.IsZero() {
		fmt.Printf("  Last updated %s\n", settings.RatesUpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}
