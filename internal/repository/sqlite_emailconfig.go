package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/domain"
)

// SQLiteEmailConfigRepo implements EmailConfigRepo using a SQLite database.
type SQLiteEmailConfigRepo struct {
	db db.DBTX
}

// NewSQLiteEmailConfigRepo creates a new SQLiteEmailConfigRepo.
func NewSQLiteEmailConfigRepo(conn db.DBTX) *SQLiteEmailConfigRepo {
	return &SQLiteEmailConfigRepo{db: conn}
}

func (r *SQLiteEmailConfigRepo) Get(ctx context.Context) (*domain.EmailConfig, error) {
	query := `SELECT sender_email, recipients, subject, body, auto_send_enabled, access_token, refresh_token,
		last_auto_sent FROM email_config WHERE id = ?`
	var c domain.EmailConfig
	var recipients, lastSent string
	var autoSend int
	err := r.db.QueryRowContext(ctx, query, singletonID).Scan(
		&c.SenderEmail,
		&recipients,
		&c.Subject,
		&c.Body,
		&autoSend,
		&c.AccessToken,
		&c.RefreshToken,
		&lastSent,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("email config: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning email config: %w", err)
	}
	if c.Recipients, err = decodeList(recipients); err != nil {
		return nil, fmt.Errorf("email recipients: %w", err)
	}
	c.AutoSendEnabled = intToBool(autoSend)
	if lastSent != "" {
		if c.LastAutoSent, err = domain.ParseYearMonth(lastSent); err != nil {
			return nil, fmt.Errorf("parsing last auto-send month %q: %w", lastSent, err)
		}
	}
	return &c, nil
}

func (r *SQLiteEmailConfigRepo) Upsert(ctx context.Context, c *domain.EmailConfig) error {
	recipients, err := encodeList(c.Recipients)
	if err != nil {
		return err
	}
	query := `INSERT OR REPLACE INTO email_config (id, sender_email, recipients, subject, body,
		auto_send_enabled, access_token, refresh_token, last_auto_sent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		singletonID,
		c.SenderEmail,
		recipients,
		c.Subject,
		c.Body,
		boolToInt(c.AutoSendEnabled),
		c.AccessToken,
		c.RefreshToken,
		formatMonth(c.LastAutoSent),
	)
	if err != nil {
		return fmt.Errorf("upserting email config: %w", err)
	}
	return nil
}
