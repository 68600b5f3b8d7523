// Package session owns the single in-memory authentication session.
//
// A Manager holds at most one token. Login and RefreshToken replace it,
// Logout clears it, and expiry is judged lazily whenever the session is read.
// A Manager is safe for concurrent use: verification and simulated delays run
// without holding the lock, and each state change is committed as a single
// step. Logins and logouts always commit, last one wins; a refresh commits
// only if the token it started from is still held.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jrsteele09/go-auth-session/autherr"
	"github.com/jrsteele09/go-auth-session/config"
	"github.com/jrsteele09/go-auth-session/internal/utils"
	"github.com/jrsteele09/go-auth-session/logging"
	"github.com/jrsteele09/go-auth-session/token"
	"github.com/jrsteele09/go-auth-session/verifier"
)

type Manager struct {
	cfg       config.Config
	verifier  verifier.Verifier
	logger    logging.Logger
	generator token.AccessTokenGenerator
	nowFunc   func() time.Time

	mu      sync.RWMutex
	current *token.Token
}

// Option configures optional Manager collaborators.
type Option func(*Manager)

// WithVerifier replaces the static credential table built from the config.
func WithVerifier(v verifier.Verifier) Option {
	return func(m *Manager) {
		m.verifier = v
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithAccessTokenGenerator changes how access-token strings are minted.
func WithAccessTokenGenerator(generator token.AccessTokenGenerator) Option {
	return func(m *Manager) {
		m.generator = generator
	}
}

func WithNowFunc(now func() time.Time) Option {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

// New validates cfg and returns a logged out Manager.
func New(cfg config.Config, options ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{cfg: cfg}
	for _, opt := range options {
		opt(m)
	}

	if m.verifier == nil {
		m.verifier = verifier.FromConfig(cfg)
	}
	if m.logger == nil {
		m.logger = logging.Nop()
	}
	if m.generator == nil {
		m.generator = token.RandomGenerator{Length: token.AccessTokenLength}
	}
	if m.nowFunc == nil {
		m.nowFunc = time.Now
	}

	m.log(logging.LevelInfo, fmt.Sprintf("session manager initialised (api key %s, token expiry %s, network delay %s, random errors %t)",
		cfg.MaskedAPIKey(), cfg.GetTokenExpiry(), cfg.GetSimulatedNetworkDelay(), !cfg.DisableRandomErrors))
	return m, nil
}

// Login verifies the credentials and, on success, replaces the current token
// with a newly issued one. On failure the current token is left untouched.
func (m *Manager) Login(ctx context.Context, username, password string) (token.Token, error) {
	if username == "" || password == "" {
		m.log(logging.LevelError, "login rejected: username and password are required")
		return token.Token{}, autherr.Wrapf(autherr.ErrInvalidCredentials, "username and password are required")
	}

	m.log(logging.LevelDebug, fmt.Sprintf("login attempt for %q", username))

	if err := m.verifier.Verify(ctx, username, password); err != nil {
		switch autherr.Kind(err) {
		case autherr.ErrServerError:
			m.log(logging.LevelError, fmt.Sprintf("server error during login for %q: %v", username, err))
		case autherr.ErrInvalidCredentials:
			m.log(logging.LevelError, fmt.Sprintf("invalid credentials for %q", username))
		default:
			m.log(logging.LevelError, fmt.Sprintf("login failed for %q: %v", username, err))
		}
		return token.Token{}, err
	}

	tk, err := m.issue(username, "")
	if err != nil {
		m.log(logging.LevelError, fmt.Sprintf("failed to issue token for %q: %v", username, err))
		return token.Token{}, err
	}
	m.commit(&tk)

	m.log(logging.LevelInfo, fmt.Sprintf("login succeeded for %q (token %s, expires %s)", username, tk.ID, tk.ExpiresAt().Format(time.RFC3339)))
	return tk, nil
}

// Logout clears the current token. Calling it while logged out is a no-op.
func (m *Manager) Logout() {
	m.commit(nil)
	m.log(logging.LevelInfo, "logged out")
}

// IsLoggedIn reports whether an unexpired token is held.
func (m *Manager) IsLoggedIn() bool {
	_, ok := m.CurrentToken()
	return ok
}

// CurrentToken returns the held token if it has not expired.
func (m *Manager) CurrentToken() (token.Token, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil || m.current.IsExpiredAt(m.nowFunc()) {
		return token.Token{}, false
	}
	return *m.current, true
}

// RefreshToken exchanges the held token for a new access token that keeps the
// same refresh token. It fails with autherr.ErrNoTokenAvailable when logged out
// and autherr.ErrTokenExpired when the held token has already expired.
// If the session is logged out or replaced while the refresh is in flight, the
// new token is discarded: ErrNoTokenAvailable after a logout, ErrUnknown when
// another login or refresh committed first.
func (m *Manager) RefreshToken(ctx context.Context) (token.Token, error) {
	m.mu.RLock()
	current := m.current
	m.mu.RUnlock()

	if current == nil {
		return token.Token{}, autherr.ErrNoTokenAvailable
	}
	if current.IsExpiredAt(m.nowFunc()) {
		return token.Token{}, autherr.Wrapf(autherr.ErrTokenExpired, "token %s expired at %s", current.ID, current.ExpiresAt().Format(time.RFC3339))
	}

	m.log(logging.LevelInfo, fmt.Sprintf("refreshing token %s for %q", current.ID, current.Subject))

	if err := utils.Wait(ctx, m.cfg.GetRefreshDelay()); err != nil {
		return token.Token{}, err
	}

	tk, err := m.issue(current.Subject, current.RefreshToken)
	if err != nil {
		m.log(logging.LevelError, fmt.Sprintf("failed to refresh token %s: %v", current.ID, err))
		return token.Token{}, err
	}
	if err := m.commitIf(current, &tk); err != nil {
		m.log(logging.LevelWarning, fmt.Sprintf("refresh of token %s discarded: %v", current.ID, err))
		return token.Token{}, err
	}

	m.log(logging.LevelInfo, fmt.Sprintf("token refreshed for %q (token %s, expires %s)", tk.Subject, tk.ID, tk.ExpiresAt().Format(time.RFC3339)))
	return tk, nil
}

// issue mints a token for subject. An empty refreshToken gets a fresh one.
func (m *Manager) issue(subject, refreshToken string) (token.Token, error) {
	now := m.nowFunc()
	validFor := m.cfg.GetTokenExpiry()

	accessToken, err := m.generator.GenerateAccessToken(subject, now, validFor)
	if err != nil {
		return token.Token{}, autherr.Wrapf(autherr.ErrUnknown, "generate access token: %v", err)
	}
	if refreshToken == "" {
		if refreshToken, err = token.NewRefreshToken(); err != nil {
			return token.Token{}, autherr.Wrapf(autherr.ErrUnknown, "generate refresh token: %v", err)
		}
	}
	return token.New(subject, accessToken, refreshToken, now, validFor), nil
}

func (m *Manager) commit(tk *token.Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = tk
}

// commitIf replaces the slot with tk only while it still holds expected.
func (m *Manager) commitIf(expected, tk *token.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.current == nil:
		return autherr.Wrapf(autherr.ErrNoTokenAvailable, "logged out during refresh")
	case m.current != expected:
		return autherr.Wrapf(autherr.ErrUnknown, "token %s was replaced during refresh", expected.ID)
	}
	m.current = tk
	return nil
}

func (m *Manager) log(level logging.Level, message string) {
	logging.Safe(m.logger, level, message)
}
