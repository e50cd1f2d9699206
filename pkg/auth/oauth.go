package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

const (
	// ClientSecretsFile is the Google API credentials file downloaded from the Cloud Console.
	ClientSecretsFile = "credentials.json"

	// TokenFile holds the access and refresh token obtained by the authorization flow.
	TokenFile = "token.json"

	// LocalhostAuthPort is where the local listener waits for the OAuth redirect.
	LocalhostAuthPort = "6789"

	authTimeout = 5 * time.Minute
)

// Scopes are the permissions requested for reading schedule spreadsheets.
var Scopes = []string{sheets.SpreadsheetsReadonlyScope}

// Flow runs the installed-app OAuth flow and caches its token on disk.
type Flow struct {
	// Dir holds ClientSecretsFile and TokenFile.
	Dir    string
	Logger *zap.Logger
	// Out receives the authorization URL the user has to open.
	Out io.Writer
}

// NewFlow creates a Flow rooted at dir.
func NewFlow(dir string, logger *zap.Logger, out io.Writer) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Flow{Dir: dir, Logger: logger, Out: out}
}

func (f *Flow) tokenPath() string {
	return filepath.Join(f.Dir, TokenFile)
}

// Config creates an oauth2.Config from the client secrets file.
func (f *Flow) Config(scopes []string) (*oauth2.Config, error) {
	clientSecretsFile := filepath.Join(f.Dir, ClientSecretsFile)
	b, err := os.ReadFile(clientSecretsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s: %w", clientSecretsFile, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	config.RedirectURL = f.redirectURL(config.RedirectURL)
	return config, nil
}

// redirectURL forces localhost and out-of-band redirects onto the local listener port.
func (f *Flow) redirectURL(raw string) string {
	if raw == "urn:ietf:wg:oauth:2.0:oob" || raw == "" {
		return fmt.Sprintf("http://localhost:%s/oauth2callback", LocalhostAuthPort)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		f.Logger.Warn("could not parse redirect URL, using it as is", zap.String("redirect_url", raw), zap.Error(err))
		return raw
	}
	if parsed.Hostname() != "localhost" && parsed.Hostname() != "127.0.0.1" {
		f.Logger.Warn("redirect URL is not a localhost callback", zap.String("redirect_url", raw))
		return raw
	}
	if parsed.Port() != LocalhostAuthPort {
		parsed.Host = net.JoinHostPort(parsed.Hostname(), LocalhostAuthPort)
	}
	return parsed.String()
}

// Client returns an authenticated *http.Client, running the browser flow when no token is cached.
func (f *Flow) Client(ctx context.Context, scopes []string) (*http.Client, error) {
	config, err := f.Config(scopes)
	if err != nil {
		return nil, err
	}

	tok, err := tokenFromFile(f.tokenPath())
	if err != nil {
		f.Logger.Info("no cached token, starting web authorization", zap.String("token_file", f.tokenPath()))
		tok, err = f.tokenFromWeb(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("failed to get token from web: %w", err)
		}
		if err := saveToken(f.tokenPath(), tok); err != nil {
			f.Logger.Warn("could not cache token", zap.Error(err))
		}
	}

	// Persist refreshed tokens so the next run does not need to refresh again.
	src := config.TokenSource(ctx, tok)
	current, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}
	if current.AccessToken != tok.AccessToken || current.RefreshToken != tok.RefreshToken {
		if err := saveToken(f.tokenPath(), current); err != nil {
			f.Logger.Warn("could not save refreshed token", zap.Error(err))
		}
	}
	return oauth2.NewClient(ctx, src), nil
}

// Reset removes the cached token so the next Client call re-authorizes.
func (f *Flow) Reset() error {
	err := os.Remove(f.tokenPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not delete token file %s: %w", f.tokenPath(), err)
	}
	return nil
}

// tokenFromWeb runs the authorization code flow, capturing the redirect on a local listener.
func (f *Flow) tokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%s", LocalhostAuthPort))
	if err != nil {
		return nil, fmt.Errorf("failed to start listener on port %s: %w", LocalhostAuthPort, err)
	}
	defer listener.Close()

	state, err := newState()
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Handler:      callbackHandler(state, codeCh, errCh),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}
	defer server.Shutdown(context.Background())

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// AccessTypeOffline is what makes Google return a refresh token.
	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Fprintf(f.Out, "Open the following URL in your browser to authorize cronograma:\n%s\n", authURL)
	f.Logger.Debug("waiting for authorization code", zap.String("redirect_url", config.RedirectURL))

	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	select {
	case code := <-codeCh:
		tok, err := config.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from Google: %w", err)
		}
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, fmt.Errorf("authorization timed out: %w", ctx.Err())
	}
}

// ErrStateMismatch is returned when the redirect carries a state other than the one issued.
var ErrStateMismatch = errors.New("oauth state mismatch")

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// callbackHandler accepts the redirect carrying state and forwards its code, or an error, once.
func callbackHandler(state string, codeCh chan<- string, errCh chan<- error) http.Handler {
	fail := func(err error) {
		select {
		case errCh <- err:
		default:
		}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			fail(ErrStateMismatch)
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "Authorization code not found", http.StatusBadRequest)
			fail(fmt.Errorf("authorization code not found in redirect URL"))
			return
		}
		fmt.Fprintf(w, "Authentication successful! You can close this window.")
		select {
		case codeCh <- code:
		default:
		}
	})
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from file %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token to %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
