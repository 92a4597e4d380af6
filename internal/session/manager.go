package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/ecocity/internal/credentials"
	"github.com/dmitrijs2005/ecocity/internal/logging"
	"github.com/google/uuid"
)

// DefaultAvatar is shown when no avatar is configured.
const DefaultAvatar = "avatar.png"

// Manager holds the process-wide session and mediates every change to it.
type Manager struct {
	store  credentials.Store
	logger logging.Logger
	avatar string
	now    func() time.Time

	mu      sync.RWMutex
	current Session
}

// Option customises a Manager.
type Option func(*Manager)

// WithAvatar sets the avatar attached to every new session.
func WithAvatar(avatar string) Option {
	return func(m *Manager) {
		if avatar != "" {
			m.avatar = avatar
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager returns a Manager with nobody logged in.
func NewManager(store credentials.Store, logger logging.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Manager{
		store:  store,
		logger: logger.With("module", "session"),
		avatar: DefaultAvatar,
		now:    time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Register creates an account. It does not log the user in.
func (m *Manager) Register(ctx context.Context, login string, password []byte) error {
	if login == "" || len(password) == 0 {
		return ErrEmptyField
	}
	if !credentials.ValidLogin(login) {
		return ErrInvalidLogin
	}

	ok, err := m.store.Register(ctx, login, password)
	if err != nil {
		m.logger.Error(ctx, "register failed", "login", login, "error", err)
		return fmt.Errorf("register: %w", err)
	}
	if !ok {
		m.logger.Warn(ctx, "login taken", "login", login)
		return ErrLoginTaken
	}
	return nil
}

// Login verifies the credentials and, on success, replaces the current
// session with a fresh one whose counter starts at zero. On any failure the
// previous session is kept as it was.
func (m *Manager) Login(ctx context.Context, login string, password []byte) (Session, error) {
	if len(password) == 0 || !credentials.ValidLogin(login) {
		m.logger.Warn(ctx, "invalid credentials", "login", login)
		return Session{}, ErrInvalidCredentials
	}

	ok, err := m.store.Verify(ctx, login, password)
	if err != nil {
		m.logger.Error(ctx, "login failed", "login", login, "error", err)
		return Session{}, fmt.Errorf("login: %w", err)
	}
	if !ok {
		m.logger.Warn(ctx, "invalid credentials", "login", login)
		return Session{}, ErrInvalidCredentials
	}

	s := Session{
		ID:          uuid.NewString(),
		Login:       login,
		Counter:     0,
		DisplayName: login,
		Avatar:      m.avatar,
		StartedAt:   m.now(),
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.logger.Info(ctx, "logged in", "login", login, "session_id", s.ID)
	return s, nil
}

// Logout resets the session to the anonymous state. Calling it while
// logged out does nothing.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	prev := m.current
	m.current = Session{}
	m.mu.Unlock()

	if prev.Active() {
		m.logger.Info(ctx, "logged out", "login", prev.Login, "session_id", prev.ID)
	}
}

// Current returns a copy of the live session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// AddPoints adds n to the session counter and returns the new total.
func (m *Manager) AddPoints(n int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.current.Active() {
		return 0, ErrNotAuthenticated
	}
	m.current.Counter += n
	return m.current.Counter, nil
}
