package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDay(t *testing.T, repo *SQLiteWorkDayRepo) *domain.WorkDay {
	t.Helper()
	day := testutil.NewTestDay(testutil.Date(2026, time.October, 12))
	require.NoError(t, repo.Upsert(context.Background(), day))
	return day
}

func TestTimeEntryRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	day := seedDay(t, NewSQLiteWorkDayRepo(db))
	repo := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	e := testutil.NewTestEntry(day.ID, "22:30", "02:15", testutil.WithBreak(20))
	require.NoError(t, repo.Create(ctx, e))
	require.NotEmpty(t, e.ID)

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, *e, *got)
}

func TestTimeEntryRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	day := seedDay(t, NewSQLiteWorkDayRepo(db))
	repo := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	e := testutil.NewTestEntry(day.ID, "09:00", "17:00")
	require.NoError(t, repo.Create(ctx, e))

	e.End = domain.MustClock(18, 30)
	e.BreakMinutes = 45
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "18:30", got.End.String())
	assert.Equal(t, 45, got.BreakMinutes)
}

func TestTimeEntryRepo_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimeEntryRepo(db)

	err := repo.Update(context.Background(), &domain.TimeEntry{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimeEntryRepo_ListByWorkDay_OrderedByStart(t *testing.T) {
	db := testutil.NewTestDB(t)
	day := seedDay(t, NewSQLiteWorkDayRepo(db))
	repo := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	for _, span := range [][2]string{{"14:00", "18:00"}, {"07:45", "12:00"}} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(day.ID, span[0], span[1])))
	}

	got, err := repo.ListByWorkDay(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "07:45", got[0].Start.String())
	assert.Equal(t, "14:00", got[1].Start.String())
}

func TestTimeEntryRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	day := seedDay(t, NewSQLiteWorkDayRepo(db))
	repo := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	e := testutil.NewTestEntry(day.ID, "09:00", "10:00")
	require.NoError(t, repo.Create(ctx, e))
	require.NoError(t, repo.Delete(ctx, e.ID))

	_, err := repo.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, e.ID), ErrNotFound)
}

func TestTimeEntryRepo_CreateRequiresDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimeEntryRepo(db)

	err := repo.Create(context.Background(), testutil.NewTestEntry("missing-day", "09:00", "10:00"))
	assert.Error(t, err)
}
