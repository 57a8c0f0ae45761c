package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Log, edit and remove work sessions",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryEditCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryAddCmd(a *App) *cobra.Command {
	var start, end domain.ClockTime
	var breakMin int

	cmd := &cobra.Command{
		Use:   "add [DATE]",
		Short: "Log a session; an end at or before the start runs past midnight",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(optionalArg(args), a.now())
			if err != nil {
				return err
			}

			req := app.NewAddEntryRequest(date, start, end)
			if cmd.Flags().Changed("break") {
				if breakMin < 0 {
					return fmt.Errorf("break must be non-negative")
				}
				req.BreakMinutes = breakMin
			}

			entry, err := a.Days.AddEntry(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s-%s on %s, %s net (%s)\n",
				entry.Start, entry.End, date.Format(domain.DateLayout),
				accounting.FormatHours(accounting.NetHours(*entry)), entry.ID)
			return nil
		},
	}

	cmd.Flags().Var(newClockValue(&start), "start", "Session start (HH:MM)")
	cmd.Flags().Var(newClockValue(&end), "end", "Session end (HH:MM)")
	cmd.Flags().IntVar(&breakMin, "break", 0, "Break in minutes (default from settings)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newEntryEditCmd(a *App) *cobra.Command {
	var start, end domain.ClockTime
	var breakMin int
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a session's start, end or break",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntryID(ctx, a, args[0], dateFlag)
			if err != nil {
				return err
			}

			var upd app.EntryUpdate
			if cmd.Flags().Changed("start") {
				upd.Start = &start
			}
			if cmd.Flags().Changed("end") {
				upd.End = &end
			}
			if cmd.Flags().Changed("break") {
				upd.BreakMinutes = &breakMin
			}
			if upd.Empty() {
				return fmt.Errorf("nothing to change: pass --start, --end or --break")
			}

			entry, err := a.Days.UpdateEntry(ctx, id, upd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s-%s, break %s\n",
				formatter.TruncID(entry.ID), entry.Start, entry.End, formatter.FormatMinutes(entry.BreakMinutes))
			return nil
		},
	}

	cmd.Flags().Var(newClockValue(&start), "start", "New start (HH:MM)")
	cmd.Flags().Var(newClockValue(&end), "end", "New end (HH:MM)")
	cmd.Flags().IntVar(&breakMin, "break", 0, "New break in minutes")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to search when ID is a prefix (default today)")

	return cmd
}

func newEntryRemoveCmd(a *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntryID(ctx, a, args[0], dateFlag)
			if err != nil {
				return err
			}
			if err := a.Days.DeleteEntry(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to search when ID is a prefix (default today)")

	return cmd
}

// resolveEntryID expands an ID prefix, as printed by `day show`, against the
// sessions of one day. Full IDs are used as given.
func resolveEntryID(ctx context.Context, a *App, ref, dateArg string) (string, error) {
	const fullIDLen = 36
	if len(ref) == fullIDLen {
		return ref, nil
	}

	date, err := parseDateArg(dateArg, a.now())
	if err != nil {
		return "", err
	}
	detail, err := a.Days.Detail(ctx, date)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range detail.Entries {
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no session on %s starts with %q", date.Format(domain.DateLayout), ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d sessions on %s; use more characters", ref, len(matches), date.Format(domain.DateLayout))
	}
}
