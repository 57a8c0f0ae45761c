package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/repository"
	"github.com/alexanderramin/workclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetReturnsDefaultsBeforeSave(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	svc := NewSettingsService(repo)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *got)

	_, err = repo.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound, "Get must not persist defaults")
}

func TestSettingsService_EnsureDefaultsPersists(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	svc := NewSettingsService(repo)
	ctx := context.Background()

	got, err := svc.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, got.WorkHoursPerDay)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored.IsWorkDay(time.Sunday))
	assert.False(t, stored.IsWorkDay(time.Friday))

	// A second call keeps user changes.
	stored.WorkHoursPerDay = 7
	require.NoError(t, svc.Update(ctx, stored))
	got, err = svc.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, got.WorkHoursPerDay)
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	svc := NewSettingsService(repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	err := svc.Update(ctx, testutil.NewTestSettings(testutil.WithDefaultBreak(-5)))
	assert.ErrorContains(t, err, "break minutes must be non-negative")

	err = svc.Update(ctx, testutil.NewTestSettings(testutil.WithHoursPerDay(25)))
	assert.Error(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *got)
}
