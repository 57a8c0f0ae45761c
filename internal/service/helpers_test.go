package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/mail"
	"github.com/alexanderramin/workclock/internal/repository"
	"github.com/alexanderramin/workclock/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

type testServices struct {
	db       *sql.DB
	days     *repository.SQLiteWorkDayRepo
	settings SettingsService
	day      DayService
	summary  SummaryService
	email    EmailConfigService
	report   ReportService
	mailer   *recordingMailer
	observer *recordingObserver
}

// newTestServices wires every service over one in-memory database with a
// Monday-to-Friday, 8 hour, 30 minute break policy.
func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newTestServicesWithUoW(t, database, testutil.NewTestUoW(database))
}

func newTestServicesWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork) *testServices {
	t.Helper()
	s := &testServices{
		db:       database,
		days:     repository.NewSQLiteWorkDayRepo(database),
		mailer:   &recordingMailer{},
		observer: &recordingObserver{},
	}
	s.settings = NewSettingsService(repository.NewSQLiteSettingsRepo(database))
	require.NoError(t, s.settings.Update(context.Background(), testutil.NewTestSettings()))

	s.day = NewDayService(
		s.days,
		repository.NewSQLiteTimeEntryRepo(database),
		repository.NewSQLiteTimerRepo(database),
		s.settings,
		uow,
	)
	s.summary = NewSummaryService(s.days, s.settings)
	s.email = NewEmailConfigService(repository.NewSQLiteEmailConfigRepo(database), uow)
	s.report = NewReportService(s.days, s.settings, s.email, s.mailer, s.observer)
	return s
}
