package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/repository"
	"golang.org/x/oauth2"
)

type emailConfigService struct {
	configs repository.EmailConfigRepo
	uow     db.UnitOfWork
}

func NewEmailConfigService(configs repository.EmailConfigRepo, uow db.UnitOfWork) EmailConfigService {
	return &emailConfigService{configs: configs, uow: uow}
}

// Get returns an empty config before anything has been saved.
func (s *emailConfigService) Get(ctx context.Context) (*domain.EmailConfig, error) {
	return loadEmailConfig(ctx, s.configs)
}

func (s *emailConfigService) AddRecipient(ctx context.Context, addr string) (*domain.EmailConfig, error) {
	parsed, err := mail.ParseAddress(strings.TrimSpace(addr))
	if err != nil {
		return nil, fmt.Errorf("invalid email address %q: %w", addr, err)
	}
	return s.modify(ctx, func(c *domain.EmailConfig) error {
		if !c.AddRecipient(parsed.Address) {
			return fmt.Errorf("%s: %w", parsed.Address, ErrDuplicateRecipient)
		}
		return nil
	})
}

func (s *emailConfigService) RemoveRecipient(ctx context.Context, addr string) (*domain.EmailConfig, error) {
	return s.modify(ctx, func(c *domain.EmailConfig) error {
		if !c.RemoveRecipient(addr) {
			return fmt.Errorf("%s: %w", addr, ErrUnknownRecipient)
		}
		return nil
	})
}

// SetTemplate stores the subject and body; empty strings restore the defaults.
func (s *emailConfigService) SetTemplate(ctx context.Context, subject, body string) error {
	_, err := s.modify(ctx, func(c *domain.EmailConfig) error {
		c.Subject = strings.TrimSpace(subject)
		c.Body = strings.TrimSpace(body)
		return nil
	})
	return err
}

func (s *emailConfigService) SetSender(ctx context.Context, addr string) error {
	if addr != "" {
		parsed, err := mail.ParseAddress(addr)
		if err != nil {
			return fmt.Errorf("invalid email address %q: %w", addr, err)
		}
		addr = parsed.Address
	}
	_, err := s.modify(ctx, func(c *domain.EmailConfig) error {
		c.SenderEmail = addr
		return nil
	})
	return err
}

func (s *emailConfigService) SetAutoSend(ctx context.Context, enabled bool) error {
	_, err := s.modify(ctx, func(c *domain.EmailConfig) error {
		c.AutoSendEnabled = enabled
		return nil
	})
	return err
}

func (s *emailConfigService) MarkAutoSent(ctx context.Context, month domain.YearMonth) error {
	_, err := s.modify(ctx, func(c *domain.EmailConfig) error {
		c.LastAutoSent = month
		return nil
	})
	return err
}

func (s *emailConfigService) SaveTokens(ctx context.Context, accessToken, refreshToken string) error {
	_, err := s.modify(ctx, func(c *domain.EmailConfig) error {
		c.AccessToken = accessToken
		c.RefreshToken = refreshToken
		return nil
	})
	return err
}

// ClearTokens signs out and forgets the sender address learned at sign-in.
func (s *emailConfigService) ClearTokens(ctx context.Context) error {
	_, err := s.modify(ctx, func(c *domain.EmailConfig) error {
		c.AccessToken = ""
		c.RefreshToken = ""
		c.SenderEmail = ""
		return nil
	})
	return err
}

// LoadToken implements mail.TokenStore.
func (s *emailConfigService) LoadToken(ctx context.Context) (*oauth2.Token, error) {
	c, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !c.SignedIn() {
		return nil, nil
	}
	return &oauth2.Token{AccessToken: c.AccessToken, RefreshToken: c.RefreshToken, TokenType: "Bearer"}, nil
}

// SaveToken implements mail.TokenStore.
func (s *emailConfigService) SaveToken(ctx context.Context, tok *oauth2.Token) error {
	return s.SaveTokens(ctx, tok.AccessToken, tok.RefreshToken)
}

func (s *emailConfigService) modify(ctx context.Context, fn func(*domain.EmailConfig) error) (*domain.EmailConfig, error) {
	var updated *domain.EmailConfig
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txConfigs := repository.NewSQLiteEmailConfigRepo(tx)

		c, err := loadEmailConfig(ctx, txConfigs)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		updated = c
		return txConfigs.Upsert(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func loadEmailConfig(ctx context.Context, configs repository.EmailConfigRepo) (*domain.EmailConfig, error) {
	c, err := configs.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.EmailConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading email config: %w", err)
	}
	return c, nil
}
