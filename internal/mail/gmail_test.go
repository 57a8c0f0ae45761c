package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

type memoryStore struct {
	tok   *oauth2.Token
	saved *oauth2.Token
}

func (s *memoryStore) LoadToken(context.Context) (*oauth2.Token, error) { return s.tok, nil }

func (s *memoryStore) SaveToken(_ context.Context, tok *oauth2.Token) error {
	s.saved = tok
	return nil
}

type fakeGoogle struct {
	server *httptest.Server
	raw    string
	auth   string
}

func newFakeGoogle(t *testing.T) *fakeGoogle {
	t.Helper()
	g := &fakeGoogle{}
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/gmail/v1/users/me/messages/send", func(w http.ResponseWriter, r *http.Request) {
		g.auth = r.Header.Get("Authorization")
		var msg gmail.Message
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		g.raw = msg.Raw
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"m1"}`)
	})
	mux.HandleFunc("/gmail/v1/users/me/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"emailAddress":"me@example.com"}`)
	})
	g.server = httptest.NewServer(mux)
	t.Cleanup(g.server.Close)
	return g
}

func (g *fakeGoogle) mailer(store TokenStore) *GmailMailer {
	cfg := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint: oauth2.Endpoint{
			TokenURL:  g.server.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	return NewGmailMailer(cfg, store, option.WithEndpoint(g.server.URL+"/"))
}

func TestGmailMailer_NotSignedIn(t *testing.T) {
	g := newFakeGoogle(t)

	err := g.mailer(&memoryStore{}).Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.EqualError(t, err, "not signed in to Gmail")
}

func TestGmailMailer_SendRefreshesAndSaves(t *testing.T) {
	g := newFakeGoogle(t)
	store := &memoryStore{tok: &oauth2.Token{RefreshToken: "refresh"}}

	require.NoError(t, g.mailer(store).Send(context.Background(), testMessage()))

	assert.Equal(t, "Bearer fresh", g.auth)
	require.NotNil(t, store.saved)
	assert.Equal(t, "fresh", store.saved.AccessToken)
	assert.Equal(t, "refresh", store.saved.RefreshToken)

	raw, err := base64.URLEncoding.DecodeString(g.raw)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Subject: Work Hours Report - October 2026")
	assert.Contains(t, string(raw), `filename="work_hours_2026_10.xlsx"`)
}

func TestGmailMailer_SenderAddress(t *testing.T) {
	g := newFakeGoogle(t)
	store := &memoryStore{tok: &oauth2.Token{RefreshToken: "refresh"}}

	addr, err := g.mailer(store).SenderAddress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", addr)
}

func TestAuthURL_RequestsOfflineAccess(t *testing.T) {
	cfg := OAuthConfig{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://127.0.0.1:8085/callback"}.Config()

	u, err := url.Parse(AuthURL(cfg, "xyz"))
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "xyz", q.Get("state"))
	assert.Equal(t, gmail.GmailSendScope, q.Get("scope"))
}

func TestWaitForCode(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	redirect := fmt.Sprintf("http://127.0.0.1:%d/callback", port)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		for ctx.Err() == nil {
			resp, err := http.Get(redirect + "?state=xyz&code=the-code")
			if err == nil {
				resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
			time.Sleep(20 * time.Millisecond)
		}
	}()

	code, err := WaitForCode(ctx, redirect, "xyz")
	require.NoError(t, err)
	assert.Equal(t, "the-code", code)
}

func TestOAuthConfig_Configured(t *testing.T) {
	assert.False(t, OAuthConfig{}.Configured())
	assert.True(t, OAuthConfig{ClientID: "a", ClientSecret: "b"}.Configured())
	assert.True(t, strings.HasPrefix(OAuthConfig{}.Config().Endpoint.AuthURL, "https://accounts.google.com"))
}
