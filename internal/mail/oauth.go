package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
)

// OAuthConfig identifies the Google OAuth client used to send mail.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Configured reports whether client credentials are present.
func (c OAuthConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Config builds the oauth2 config limited to the send-only Gmail scope.
func (c OAuthConfig) Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  c.RedirectURL,
		Scopes:       []string{gmail.GmailSendScope},
	}
}

// AuthURL returns the consent URL. Offline access with forced approval
// makes Google return a refresh token on every sign-in.
func AuthURL(cfg *oauth2.Config, state string) string {
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for tokens.
func Exchange(ctx context.Context, cfg *oauth2.Config, code string) (*oauth2.Token, error) {
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	if tok.RefreshToken == "" {
		return nil, errors.New("google did not return a refresh token")
	}
	return tok, nil
}

// WaitForCode serves the redirect URL locally and returns the code from the
// first callback whose state matches. It returns when ctx is done.
func WaitForCode(ctx context.Context, redirectURL, state string) (string, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return "", fmt.Errorf("parsing redirect url: %w", err)
	}

	codes := make(chan string, 1)
	errs := make(chan error, 1)

	mux := http.NewServeMux()
	path := u.Path
	if path == "" {
		path = "/"
	}
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "no authorization code received", http.StatusBadRequest)
			select {
			case errs <- fmt.Errorf("authorization failed: %s", q.Get("error")):
			default:
			}
			return
		}
		_, _ = fmt.Fprintln(w, "Signed in. You can close this window.")
		select {
		case codes <- code:
		default:
		}
	})

	ln, err := net.Listen("tcp", u.Host)
	if err != nil {
		return "", fmt.Errorf("listening on %s: %w", u.Host, err)
	}
	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case errs <- fmt.Errorf("callback server: %w", err):
			default:
			}
		}
	}()
	defer server.Close()

	select {
	case code := <-codes:
		return code, nil
	case err := <-errs:
		return "", err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
