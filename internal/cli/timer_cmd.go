package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/service"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Clock in and out",
	}

	cmd.AddCommand(
		newTimerStartCmd(app),
		newTimerStopCmd(app),
		newTimerStatusCmd(app),
		newTimerDiscardCmd(app),
	)

	return cmd
}

func newTimerStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start [DATE]",
		Short: "Start the timer now, on today or the given day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			date, err := parseDateArg(optionalArg(args), now)
			if err != nil {
				return err
			}

			state, err := app.Days.StartTimer(cmd.Context(), date, now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Timer started at %s for %s\n",
				state.Started, state.Date.Format(domain.DateLayout))
			return nil
		},
	}
}

func newTimerStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and log the session with the default break",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Days.StopTimer(cmd.Context(), app.now())
			if errors.Is(err, service.ErrTimerTooLong) {
				return fmt.Errorf("%w; log the session with 'entry add' and run 'timer discard'", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s-%s, break %s, %s net\n",
				entry.Start, entry.End,
				formatter.FormatMinutes(entry.BreakMinutes),
				accounting.FormatHours(accounting.NetHours(*entry)))
			return nil
		},
	}
}

func newTimerStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the timer is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			status, err := app.Days.TimerStatus(cmd.Context(), now)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimer(status, now))
			return nil
		},
	}
}

func newTimerDiscardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Throw away the running timer without logging it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Days.DiscardTimer(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Timer discarded.")
			return nil
		},
	}
}
