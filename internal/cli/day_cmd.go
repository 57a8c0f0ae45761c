package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show or classify a calendar day",
	}

	cmd.AddCommand(
		newDayShowCmd(app),
		newDayTypeCmd(app),
	)

	return cmd
}

func newDayShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [DATE]",
		Short: "Show a day's sessions and balance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(optionalArg(args), app.now())
			if err != nil {
				return err
			}
			return showDay(cmd, app, date)
		},
	}
}

func showDay(cmd *cobra.Command, app *App, date time.Time) error {
	detail, err := app.Days.Detail(cmd.Context(), date)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayDetail(detail, app.now()))
	return nil
}

func newDayTypeCmd(app *App) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "type DATE TYPE",
		Short: "Set a day's type: normal, holiday, holiday-eve, day-off, semi-off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args[0], app.now())
			if err != nil {
				return err
			}
			t, err := domain.ParseDayType(args[1])
			if err != nil {
				return err
			}

			var commentPtr *string
			if cmd.Flags().Changed("comment") {
				commentPtr = &comment
			}

			day, err := app.Days.SetDayType(cmd.Context(), date, t, commentPtr)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n",
				day.Date.Format(domain.DateLayout), formatter.DayTypeBadge(day.Type))
			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Comment stored with the day")

	return cmd
}
