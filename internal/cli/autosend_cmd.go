package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/workclock/internal/autosend"
	"github.com/spf13/cobra"
)

func newAutoSendCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autosend",
		Short: "Deliver last month's report on the first day of each month",
	}

	cmd.AddCommand(
		newAutoSendRunCmd(app),
		newAutoSendDaemonCmd(app),
	)

	return cmd
}

func (a *App) runner(maxRetries int) *autosend.Runner {
	delay := a.RetryDelay
	if delay <= 0 {
		delay = autosend.DefaultRetryDelay
	}
	return autosend.NewRunner(a.Reports, a.logger(), autosend.WithRetry(delay, maxRetries))
}

func newAutoSendRunCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one auto-send check now, e.g. from cron",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			if dateFlag != "" {
				date, err := parseDateArg(dateFlag, now)
				if err != nil {
					return err
				}
				now = date.Add(time.Duration(now.Hour())*time.Hour + time.Duration(now.Minute())*time.Minute)
			}

			res, err := app.runner(0).RunOnce(cmd.Context(), now)
			if err != nil {
				return err
			}
			if res.Sent == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped: %s\n", res.SkipReason)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s report to %d recipient(s)\n",
				res.Sent.Month.Title(), len(res.Sent.Recipients))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Check as if today were DATE (YYYY-MM-DD)")

	return cmd
}

func newAutoSendDaemonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Stay in the foreground and send on the 1st of every month at 02:00",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			maxRetries := app.MaxRetries
			if maxRetries < 0 {
				maxRetries = autosend.DefaultMaxRetries
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Auto-send daemon running; next check %s. Press Ctrl+C to stop.\n",
				autosend.NextRun(app.now()).Format("Mon, Jan 2 2006 15:04"))
			err := app.runner(maxRetries).Start(ctx)
			app.logger().Info("auto-send daemon stopped")
			return err
		},
	}
}
