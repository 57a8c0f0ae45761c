package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change work days and expected hours",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsEditCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var workDays string
	var hours, breakMin, holidayEve, semiOff int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual settings",
		Example: "  workclock settings set --work-days mon,tue,wed,thu,fri --hours 8\n" +
			"  workclock settings set --break 45",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("work-days") && !flags.Changed("hours") && !flags.Changed("break") &&
				!flags.Changed("holiday-eve") && !flags.Changed("semi-off") {
				return errors.New("nothing to change: pass at least one flag")
			}

			if flags.Changed("work-days") {
				if s.WorkDays, err = domain.ParseWeekdayList(workDays); err != nil {
					return err
				}
			}
			if flags.Changed("hours") {
				s.WorkHoursPerDay = hours
			}
			if flags.Changed("break") {
				s.BreakMinutes = breakMin
			}
			if flags.Changed("holiday-eve") {
				s.HolidayEveningHours = holidayEve
			}
			if flags.Changed("semi-off") {
				s.SemiDayOffHours = semiOff
			}

			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&workDays, "work-days", "", "Comma-separated work days, e.g. sun,mon,tue,wed,thu")
	cmd.Flags().IntVar(&hours, "hours", 0, "Expected hours on a work day")
	cmd.Flags().IntVar(&breakMin, "break", 0, "Default break in minutes")
	cmd.Flags().IntVar(&holidayEve, "holiday-eve", 0, "Expected hours on a holiday evening")
	cmd.Flags().IntVar(&semiOff, "semi-off", 0, "Expected hours on a semi day off")

	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("settings edit needs a terminal; use `workclock settings set`")
			}

			ctx := cmd.Context()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			values := newSettingsFormValues(s)
			if err := settingsForm(values).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "No changes saved.")
					return nil
				}
				return err
			}

			updated, err := values.apply(s)
			if err != nil {
				return err
			}
			if err := app.Settings.Update(ctx, updated); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(updated))
			return nil
		},
	}
}

// settingsFormValues holds the form's string-typed fields.
type settingsFormValues struct {
	workDays   []time.Weekday
	hours      string
	breakMin   string
	holidayEve string
	semiOff    string
}

func newSettingsFormValues(s *domain.Settings) *settingsFormValues {
	return &settingsFormValues{
		workDays:   s.SortedWorkDays(),
		hours:      strconv.Itoa(s.WorkHoursPerDay),
		breakMin:   strconv.Itoa(s.BreakMinutes),
		holidayEve: strconv.Itoa(s.HolidayEveningHours),
		semiOff:    strconv.Itoa(s.SemiDayOffHours),
	}
}

func (v *settingsFormValues) apply(s *domain.Settings) (*domain.Settings, error) {
	out := *s
	out.WorkDays = domain.WeekdaySet(v.workDays...)

	fields := []struct {
		raw    string
		target *int
	}{
		{v.hours, &out.WorkHoursPerDay},
		{v.breakMin, &out.BreakMinutes},
		{v.holidayEve, &out.HolidayEveningHours},
		{v.semiOff, &out.SemiDayOffHours},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		n, err := strconv.Atoi(f.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f.raw)
		}
		*f.target = n
	}
	return &out, nil
}

func settingsForm(v *settingsFormValues) *huh.Form {
	selected := domain.WeekdaySet(v.workDays...)
	options := make([]huh.Option[time.Weekday], 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		options = append(options, huh.NewOption(d.String(), d).Selected(selected[d]))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[time.Weekday]().
				Title("Work days").
				Options(options...).
				Value(&v.workDays),
		),
		huh.NewGroup(
			hoursInput("Hours per work day", &v.hours),
			hoursInput("Hours on a holiday evening", &v.holidayEve),
			hoursInput("Hours on a semi day off", &v.semiOff),
			huh.NewInput().
				Title("Default break (minutes)").
				Value(&v.breakMin).
				Validate(validateNonNegativeInt),
		),
	).WithTheme(workclockHuhTheme()).WithShowHelp(false)
}

func hoursInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateHours)
}
