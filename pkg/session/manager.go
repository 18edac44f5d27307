package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/entrhq/prospect/pkg/auth"
	"github.com/entrhq/prospect/pkg/driver"
	"github.com/entrhq/prospect/pkg/logging"
)

// Authenticator brings a fresh driver into an authenticated state with a
// raw cookie. *auth.Flow is the production implementation.
type Authenticator interface {
	Authenticate(ctx context.Context, client auth.Client, rawCookie string) error
}

// CredentialCapturer performs an interactive email/password login and
// returns the raw session cookie it produced.
type CredentialCapturer interface {
	CaptureCookie(ctx context.Context, email, password string) (string, error)
}

// Info describes one stored session for listing.
type Info struct {
	Token     string `json:"session_token"`
	HasDriver bool   `json:"has_driver"`
}

// Manager composes the session store, the driver pool, and the
// authentication flow. It is the only component that touches more than one
// of them, so cross-map ordering lives here and nowhere else.
type Manager struct {
	store   *Store
	pool    *driver.Pool
	flow    Authenticator
	probe   driver.Factory
	capture CredentialCapturer
	log     *slog.Logger
}

// NewManager wires a manager from its parts. probe constructs the temporary
// drivers used for validation; capture may be nil when credential-based
// session creation is not offered.
func NewManager(store *Store, pool *driver.Pool, flow Authenticator, probe driver.Factory, capture CredentialCapturer) *Manager {
	return &Manager{
		store:   store,
		pool:    pool,
		flow:    flow,
		probe:   probe,
		capture: capture,
		log:     logging.New("session-manager"),
	}
}

// CreateOrUpdateSession stores a cookie under a session token, generating
// the token when absent. Any pooled driver for the token is evicted before
// the credential is written so the next resolve re-authenticates with the
// new cookie. With validate set, the cookie is first probed on a temporary
// non-pooled driver and the whole operation fails if the probe does.
func (m *Manager) CreateOrUpdateSession(ctx context.Context, cookie, token string, validate bool) (string, bool, error) {
	normalized, err := NormalizeCookie(cookie)
	if err != nil {
		return "", false, err
	}

	validated := false
	if validate {
		if err := m.probeCookie(ctx, normalized.Raw); err != nil {
			return "", false, err
		}
		validated = true
	}

	if token == "" {
		token, err = GenerateToken()
		if err != nil {
			return "", false, err
		}
	}

	// Evict before writing: a driver authenticated under the old cookie
	// must never be observable once the new credential is stored.
	m.pool.Close(token)
	if err := m.store.Put(token, normalized.Stored); err != nil {
		return "", false, err
	}

	m.log.Info("session registered", "token", token, "validated", validated)
	return token, validated, nil
}

// CreateSessionFromCredentials drives the credential-capture collaborator
// to obtain a cookie, then registers it like any other.
func (m *Manager) CreateSessionFromCredentials(ctx context.Context, email, password, token string) (string, error) {
	if m.capture == nil {
		return "", fmt.Errorf("credential capture is not configured")
	}

	rawCookie, err := m.capture.CaptureCookie(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("credential login failed: %w", err)
	}

	token, _, err = m.CreateOrUpdateSession(ctx, rawCookie, token, false)
	return token, err
}

// ResolveDriver returns the live driver for token, creating and
// authenticating one if needed. When authentication fails for a reason
// attributable to the stored cookie, the session record is evicted so a
// later attempt cannot spin on a known-bad credential.
func (m *Manager) ResolveDriver(ctx context.Context, token string) (*driver.Driver, error) {
	stored, err := m.store.Get(token)
	if err != nil {
		return nil, err
	}

	d, err := m.pool.GetOrCreate(ctx, token, RawValue(stored))
	if err != nil {
		if isCredentialFailure(err) {
			if m.store.Remove(token) {
				m.log.Warn("evicted session with failing credential", "token", token)
			}
		}
		return nil, err
	}
	return d, nil
}

// GetSessionCookie returns the stored canonical cookie for token.
func (m *Manager) GetSessionCookie(token string) (string, error) {
	return m.store.Get(token)
}

// CloseSession removes the session record and closes the pooled driver,
// reporting whether either existed.
func (m *Manager) CloseSession(token string) bool {
	removed := m.store.Remove(token)
	closed := m.pool.Close(token)
	if removed || closed {
		m.log.Info("session closed", "token", token)
	}
	return removed || closed
}

// CloseAllSessions clears the store and closes every pooled driver,
// returning the number of session records removed.
func (m *Manager) CloseAllSessions() int {
	count := m.store.RemoveAll()
	m.pool.CloseAll()
	m.log.Info("all sessions closed", "count", count)
	return count
}

// ListSessions returns the stored sessions in insertion order, flagging
// which currently have a live driver.
func (m *Manager) ListSessions() []Info {
	tokens := m.store.List()
	infos := make([]Info, 0, len(tokens))
	for _, token := range tokens {
		_, live := m.pool.Peek(token)
		infos = append(infos, Info{Token: token, HasDriver: live})
	}
	return infos
}

// isCredentialFailure reports whether an authentication error is
// attributable to the stored cookie itself, as opposed to the driver or the
// transport.
func isCredentialFailure(err error) bool {
	var challenge *auth.ChallengeError
	return errors.Is(err, auth.ErrInvalidCookie) ||
		errors.Is(err, auth.ErrRateLimited) ||
		errors.As(err, &challenge)
}

// probeCookie authenticates the cookie on a throwaway driver, torn down
// regardless of outcome.
func (m *Manager) probeCookie(ctx context.Context, rawCookie string) error {
	m.log.Info("validating cookie on temporary driver")

	d, err := m.probe()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := d.Close(); cerr != nil {
			m.log.Warn("error closing validation driver", "error", cerr)
		}
	}()

	if err := m.flow.Authenticate(ctx, d, rawCookie); err != nil {
		return fmt.Errorf("cookie validation failed: %w", err)
	}
	return nil
}
