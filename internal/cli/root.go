package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/workclock/internal/mail"
	"github.com/alexanderramin/workclock/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Settings service.SettingsService
	Days     service.DayService
	Summary  service.SummaryService
	Email    service.EmailConfigService
	Reports  service.ReportService

	// Transport is the configured mail transport name, shown by `email show`.
	Transport string
	OAuth     mail.OAuthConfig
	ExportDir string

	RetryDelay time.Duration
	MaxRetries int

	Logger *slog.Logger

	// Now and IsInteractive are replaced in tests.
	Now           func() time.Time
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// NewRootCmd creates the top-level "workclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "workclock",
		Short:         "Track work hours against your expected schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDay(cmd, app, app.now())
		},
	}

	root.AddCommand(
		newDayCmd(app),
		newEntryCmd(app),
		newTimerCmd(app),
		newMonthCmd(app),
		newHistoryCmd(app),
		newSettingsCmd(app),
		newEmailCmd(app),
		newReportCmd(app),
		newAutoSendCmd(app),
	)

	return root
}
