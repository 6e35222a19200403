package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/notify"
)

var flagRemindWatch bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show due reminders and budget alerts",
	Long:  "Evaluate renewal reminders and budget alerts once, or keep watching with --watch.",
	RunE:  runRemind,
}

func init() {
	remindCmd.Flags().BoolVarP(&flagRemindWatch, "watch", "w", false, "Keep running, re-checking on an interval")
	rootCmd.AddCommand(remindCmd)
}

func runRemind(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	printAlert := func(a notify.Alert) {
		level := cli.LevelStyle(a.Level).Render(fmt.Sprintf("%-7s", a.Level))
		fmt.Printf("  %s  %s\n", level, a.Message)
	}

	svc := notify.New(e.store, notify.Config{
		Interval:            time.Duration(e.cfg.Notifications.IntervalMinutes) * time.Minute,
		DefaultReminderDays: e.cfg.Notifications.DefaultReminderDays,
		OnAlert:             printAlert,
	})

	if !flagRemindWatch {
		alerts, err := svc.Evaluate()
		if err != nil {
			return err
		}
		if len(alerts) == 0 {
			fmt.Println("\n  Nothing needs attention.")
			return nil
		}
		fmt.Println()
		for _, a := range alerts {
			printAlert(a)
		}
		fmt.Println()
		return nil
	}

	fmt.Fprintf(os.Stderr, "  Watching every %dm, Ctrl-C to stop\n",
		e.cfg.Notifications.IntervalMinutes)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = svc.Run(ctx)
	if ctx.Err() != nil {
		return nil // interrupted by the user
	}
	return err
}
