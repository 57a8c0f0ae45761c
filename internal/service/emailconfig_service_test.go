package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestEmailConfigService_GetEmpty(t *testing.T) {
	s := newTestServices(t)

	cfg, err := s.email.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cfg.HasRecipients())
	assert.False(t, cfg.AutoSendEnabled)
}

func TestEmailConfigService_Recipients(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	cfg, err := s.email.AddRecipient(ctx, "Boss <boss@example.com>")
	require.NoError(t, err)
	assert.Equal(t, []string{"boss@example.com"}, cfg.Recipients)

	_, err = s.email.AddRecipient(ctx, "BOSS@example.com")
	assert.ErrorIs(t, err, ErrDuplicateRecipient)

	_, err = s.email.AddRecipient(ctx, "not an address")
	assert.Error(t, err)

	_, err = s.email.AddRecipient(ctx, "hr@example.com")
	require.NoError(t, err)

	cfg, err = s.email.RemoveRecipient(ctx, "Boss@Example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"hr@example.com"}, cfg.Recipients)

	_, err = s.email.RemoveRecipient(ctx, "boss@example.com")
	assert.ErrorIs(t, err, ErrUnknownRecipient)

	stored, err := s.email.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hr@example.com"}, stored.Recipients)
}

func TestEmailConfigService_QuotedRecipientStaysOneAddress(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.email.AddRecipient(ctx, `"a,b"@example.com`)
	require.NoError(t, err)

	cfg, err := s.email.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a,b@example.com"}, cfg.Recipients)
}

func TestEmailConfigService_TemplateSenderAutoSend(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, s.email.SetTemplate(ctx, " Hours {month} ", "See attached."))
	require.NoError(t, s.email.SetSender(ctx, "me@example.com"))
	require.NoError(t, s.email.SetAutoSend(ctx, true))
	assert.Error(t, s.email.SetSender(ctx, "nope"))

	cfg, err := s.email.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hours {month}", cfg.Subject)
	assert.Equal(t, "See attached.", cfg.Body)
	assert.Equal(t, "me@example.com", cfg.SenderEmail)
	assert.True(t, cfg.AutoSendEnabled)
}

func TestEmailConfigService_TokenStore(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	tok, err := s.email.LoadToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, tok)

	require.NoError(t, s.email.SaveToken(ctx, &oauth2.Token{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, s.email.SetSender(ctx, "me@example.com"))

	tok, err = s.email.LoadToken(ctx)
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, "a", tok.AccessToken)
	assert.Equal(t, "r", tok.RefreshToken)

	require.NoError(t, s.email.ClearTokens(ctx))
	cfg, err := s.email.Get(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.SignedIn())
	assert.Empty(t, cfg.SenderEmail)
}
