package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return stored, nil
}

func (s *settingsService) Update(ctx context.Context, settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.settings.Upsert(ctx, settings)
}

// EnsureDefaults stores the default settings on first run.
func (s *settingsService) EnsureDefaults(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.settings.Get(ctx)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	defaults := domain.DefaultSettings()
	if err := s.settings.Upsert(ctx, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}
