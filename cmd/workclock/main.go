package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/workclock/internal/cli"
	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/alexanderramin/workclock/internal/config"
	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/mail"
	"github.com/alexanderramin/workclock/internal/repository"
	"github.com/alexanderramin/workclock/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("WORKCLOCK_CONFIG"))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	dayRepo := repository.NewSQLiteWorkDayRepo(database)
	entryRepo := repository.NewSQLiteTimeEntryRepo(database)
	timerRepo := repository.NewSQLiteTimerRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	emailRepo := repository.NewSQLiteEmailConfigRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	ctx := context.Background()
	settingsSvc := service.NewSettingsService(settingsRepo)
	if _, err := settingsSvc.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("initialising settings: %w", err)
	}
	emailSvc := service.NewEmailConfigService(emailRepo, uow)

	oauth := mail.OAuthConfig{
		ClientID:     cfg.Gmail.ClientID,
		ClientSecret: cfg.Gmail.ClientSecret,
		RedirectURL:  cfg.Gmail.RedirectURL,
	}

	var mailer mail.Mailer = mail.NoopMailer{}
	switch cfg.Mail.Transport {
	case config.TransportSMTP:
		mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			UseTLS:   cfg.SMTP.TLS,
			From:     cfg.SenderAddress(),
		})
	case config.TransportGmail:
		mailer = mail.NewGmailMailer(oauth.Config(), emailSvc)
	default:
		logger.Debug("mail transport is none; reports will not be delivered")
	}

	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Settings: settingsSvc,
		Days:     service.NewDayService(dayRepo, entryRepo, timerRepo, settingsSvc, uow),
		Summary:  service.NewSummaryService(dayRepo, settingsSvc),
		Email:    emailSvc,
		Reports:  service.NewReportService(dayRepo, settingsSvc, emailSvc, mailer, observer),

		Transport:  cfg.Mail.Transport,
		OAuth:      oauth,
		ExportDir:  cfg.ExportDir,
		RetryDelay: cfg.AutoSend.RetryDelay,
		MaxRetries: cfg.AutoSend.MaxRetries,
		Logger:     logger,
	}

	// Detect interactive terminal for the settings form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
