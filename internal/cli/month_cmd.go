package cli

import (
	"fmt"

	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMonthCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show the month calendar with worked and expected hours",
		Long: "Show the month calendar with worked and expected hours.\n" +
			"Only days up to today count toward the totals.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			ym, err := parseMonthArg(optionalArg(args), now)
			if err != nil {
				return err
			}

			summary, err := a.Summary.Month(cmd.Context(), app.MonthSummaryRequest{Month: ym, Now: &now})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonthSummary(summary))
			return nil
		},
	}
}

func newHistoryCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List every month with logged data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.Summary.History(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(entries))
			return nil
		},
	}
}
