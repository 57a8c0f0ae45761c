package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/mail"
	"github.com/alexanderramin/workclock/internal/report"
	"github.com/alexanderramin/workclock/internal/repository"
)

const (
	defaultSubject = "Work Hours Report - {month} {year}"
	defaultBody    = "Please find attached the work hours report for {month} {year}."
)

var _ app.ReportUseCase = (*reportService)(nil)

type reportService struct {
	days     repository.WorkDayRepo
	settings SettingsService
	email    EmailConfigService
	mailer   mail.Mailer
	observer UseCaseObserver
}

func NewReportService(
	days repository.WorkDayRepo,
	settings SettingsService,
	email EmailConfigService,
	mailer mail.Mailer,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		days:     days,
		settings: settings,
		email:    email,
		mailer:   mailer,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Export writes the month's report into req.Dir and returns the file path.
// An empty format means xlsx.
func (s *reportService) Export(ctx context.Context, req app.ExportRequest) (path string, err error) {
	fields := map[string]any{"month": req.Month.String(), "format": req.Format}
	defer observe(ctx, s.observer, "export-report", fields, &err)()

	format := report.FormatXLSX
	if req.Format != "" {
		if format, err = report.ParseFormat(req.Format); err != nil {
			return "", err
		}
	}
	path, err = s.writeReport(ctx, req.Month, format, req.Dir, app.ResolveNow(req.Now))
	if err != nil {
		return "", err
	}
	fields["path"] = path
	return path, nil
}

// Send mails the month's xlsx report to every configured recipient. The
// attachment is written to a temporary directory that is removed afterwards.
func (s *reportService) Send(ctx context.Context, req app.SendRequest) (result *app.SendResult, err error) {
	fields := map[string]any{"month": req.Month.String()}
	defer observe(ctx, s.observer, "send-report", fields, &err)()

	return s.send(ctx, req.Month, app.ResolveNow(req.Now), fields)
}

// AutoSend sends the previous month's report on the first day of a month
// when auto-send is enabled, once per month. Anything else is a skip, not
// an error.
func (s *reportService) AutoSend(ctx context.Context, now time.Time) (result *app.AutoSendResult, err error) {
	fields := map[string]any{"date": now.Format(domain.DateLayout)}
	defer observe(ctx, s.observer, "auto-send", fields, &err)()

	cfg, err := s.email.Get(ctx)
	if err != nil {
		return nil, err
	}

	skip := func(reason string) (*app.AutoSendResult, error) {
		fields["skipped"] = reason
		return &app.AutoSendResult{SkipReason: reason}, nil
	}
	switch {
	case !cfg.AutoSendEnabled:
		return skip("auto-send is disabled")
	case now.Day() != 1:
		return skip("not the first day of the month")
	case !cfg.HasRecipients():
		return skip("no recipients configured")
	}

	month := domain.YearMonthOf(now).Prev()
	fields["month"] = month.String()
	if cfg.LastAutoSent == month {
		return skip(month.Title() + " was already sent")
	}
	sent, err := s.send(ctx, month, now, fields)
	if err != nil {
		return nil, err
	}
	// The mail has gone out, so a marking failure must not trigger a retry.
	if markErr := s.email.MarkAutoSent(ctx, month); markErr != nil {
		fields["mark_error"] = markErr.Error()
	}
	return &app.AutoSendResult{Sent: sent}, nil
}

func (s *reportService) send(ctx context.Context, month domain.YearMonth, now time.Time, fields map[string]any) (*app.SendResult, error) {
	cfg, err := s.email.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.HasRecipients() {
		return nil, ErrNoRecipients
	}

	dir, err := os.MkdirTemp("", "workclock-report-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path, err := s.writeReport(ctx, month, report.FormatXLSX, dir, now)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	msg := mail.Message{
		From:    cfg.SenderEmail,
		To:      cfg.Recipients,
		Subject: expandTemplate(cfg.Subject, defaultSubject, month),
		Body:    expandTemplate(cfg.Body, defaultBody, month),
		Attachments: []mail.Attachment{{
			Filename:    filepath.Base(path),
			ContentType: report.FormatXLSX.ContentType(),
			Data:        data,
		}},
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, err
	}

	fields["recipients"] = len(cfg.Recipients)
	return &app.SendResult{
		Month:      month,
		Recipients: cfg.Recipients,
		Attachment: filepath.Base(path),
	}, nil
}

func (s *reportService) writeReport(ctx context.Context, month domain.YearMonth, format report.Format, dir string, now time.Time) (string, error) {
	if month.After(domain.YearMonthOf(now)) {
		return "", fmt.Errorf("%s: %w", month, ErrFutureMonth)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	days, err := s.days.ListForMonth(ctx, month)
	if err != nil {
		return "", err
	}
	writer, err := report.WriterFor(format)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, report.FileName(month, format))
	if err := writeReportFile(path, writer, report.BuildSheet(month, days, *settings, now)); err != nil {
		return "", err
	}
	return path, nil
}

// writeReportFile writes sheet to path. A failed write leaves no file behind.
func writeReportFile(path string, writer report.Writer, sheet report.Sheet) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := writer.Write(f, sheet); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	return nil
}

// expandTemplate falls back to def when tmpl is empty and fills in the
// {month} and {year} placeholders.
func expandTemplate(tmpl, def string, month domain.YearMonth) string {
	if tmpl == "" {
		tmpl = def
	}
	return strings.NewReplacer(
		"{month}", month.Month.String(),
		"{year}", fmt.Sprint(month.Year),
	).Replace(tmpl)
}
