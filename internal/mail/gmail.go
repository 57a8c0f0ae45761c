package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// TokenStore persists the OAuth token between runs.
type TokenStore interface {
	// LoadToken returns nil when no token is stored.
	LoadToken(ctx context.Context) (*oauth2.Token, error)
	SaveToken(ctx context.Context, tok *oauth2.Token) error
}

// GmailMailer sends through users.messages.send as the signed-in account.
type GmailMailer struct {
	oauth *oauth2.Config
	store TokenStore
	opts  []option.ClientOption
}

// NewGmailMailer creates a GmailMailer. Extra client options are appended
// after the authenticated HTTP client.
func NewGmailMailer(oauth *oauth2.Config, store TokenStore, opts ...option.ClientOption) *GmailMailer {
	return &GmailMailer{oauth: oauth, store: store, opts: opts}
}

func (m *GmailMailer) Send(ctx context.Context, msg Message) error {
	srv, err := m.service(ctx)
	if err != nil {
		return err
	}
	raw, err := BuildMIME(msg)
	if err != nil {
		return err
	}
	_, err = srv.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sending via gmail: %w", err)
	}
	return nil
}

// SenderAddress returns the email address of the signed-in account.
func (m *GmailMailer) SenderAddress(ctx context.Context) (string, error) {
	srv, err := m.service(ctx)
	if err != nil {
		return "", err
	}
	profile, err := srv.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("reading gmail profile: %w", err)
	}
	return profile.EmailAddress, nil
}

func (m *GmailMailer) service(ctx context.Context) (*gmail.Service, error) {
	tok, err := m.store.LoadToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading gmail token: %w", err)
	}
	if tok == nil || tok.RefreshToken == "" {
		return nil, ErrNotSignedIn
	}

	fresh, err := m.oauth.TokenSource(ctx, tok).Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing gmail token: %w", err)
	}
	if fresh.AccessToken != tok.AccessToken {
		if fresh.RefreshToken == "" {
			fresh.RefreshToken = tok.RefreshToken
		}
		if err := m.store.SaveToken(ctx, fresh); err != nil {
			return nil, fmt.Errorf("saving refreshed token: %w", err)
		}
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(fresh))
	opts := append([]option.ClientOption{option.WithHTTPClient(client)}, m.opts...)
	srv, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gmail service: %w", err)
	}
	return srv, nil
}
