package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/model"
)

// AuthAPI is the slice of the backend the session manager needs.
type AuthAPI interface {
	Profile(ctx context.Context) (model.Player, error)
	Logout(ctx context.Context) error
}

// Manager is the one piece of cross-screen shared state: the authenticated
// player and login flag. It is mutated only by the auth flows and by
// screens reconciling the notification list; the CLI is single-threaded
// between network calls, so no locking.
type Manager struct {
	auth  AuthAPI
	store *Store
	jar   *Jar
	log   zerolog.Logger

	Player   model.Player
	LoggedIn bool
}

// NewManager wires a session manager.
func NewManager(auth AuthAPI, store *Store, jar *Jar, logger zerolog.Logger) *Manager {
	return &Manager{
		auth:  auth,
		store: store,
		jar:   jar,
		log:   logger.With().Str("module", "session").Str("component", "manager").Logger(),
	}
}

// Boot fetches the profile on startup. A missing or expired session is not
// an error; the manager just reports logged-out.
func (m *Manager) Boot(ctx context.Context) error {
	p, err := m.auth.Profile(ctx)
	if errors.Is(err, api.ErrUnauthorized) {
		m.LoggedIn = false
		return nil
	}
	if err != nil {
		return err
	}
	m.Player = p
	m.LoggedIn = true
	m.log.Debug().Str("player", p.Email).Msg("session restored")
	return nil
}

// SetPlayer installs a freshly authenticated profile (login/signup).
func (m *Manager) SetPlayer(p model.Player) {
	m.Player = p
	m.LoggedIn = true
}

// Refresh re-fetches the profile, e.g. after a mutation that changes
// balances or notifications.
func (m *Manager) Refresh(ctx context.Context) error {
	p, err := m.auth.Profile(ctx)
	if err != nil {
		return err
	}
	m.Player = p
	return nil
}

// Clear is the logout teardown contract: invalidate the server session,
// then wipe the cookie, the cached bundles and the in-memory context. The
// local wipe happens even when the server call fails, so a dead backend
// cannot pin a stale session.
func (m *Manager) Clear(ctx context.Context) error {
	logoutErr := m.auth.Logout(ctx)

	if err := m.jar.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("cookie wipe failed")
	}
	if err := m.store.ClearBundles(); err != nil {
		m.log.Warn().Err(err).Msg("bundle wipe failed")
	}
	m.Player = model.Player{}
	m.LoggedIn = false
	return logoutErr
}
