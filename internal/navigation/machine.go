package navigation

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/ecocity/internal/logging"
	"github.com/dmitrijs2005/ecocity/internal/session"
)

// Sessions is what the machine needs from the session manager.
type Sessions interface {
	Current() session.Session
	Logout(ctx context.Context)
}

// Machine tracks the current screen.
type Machine struct {
	sessions Sessions
	features []Screen
	logger   logging.Logger

	mu      sync.Mutex
	current Screen
}

// NewMachine returns a machine on the Auth screen offering the given
// feature screens. Non-feature screens in features are ignored.
func NewMachine(sessions Sessions, logger logging.Logger, features ...Screen) *Machine {
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Machine{
		sessions: sessions,
		logger:   logger.With("module", "navigation"),
		current:  Auth,
	}
	for _, f := range features {
		if f.IsFeature() && !m.offers(f) {
			m.features = append(m.features, f)
		}
	}
	return m
}

// Current returns the screen being shown.
func (m *Machine) Current() Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Features returns the feature screens this machine offers.
func (m *Machine) Features() []Screen {
	return append([]Screen(nil), m.features...)
}

// RequestTransition moves to target if the move is legal for the current
// screen and session; otherwise it returns a *TransitionError and the
// screen does not change.
func (m *Machine) RequestTransition(ctx context.Context, target Screen) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.current
	if !m.allowed(from, target) {
		m.logger.Warn(ctx, "transition rejected", "from", from, "to", target)
		return &TransitionError{From: from, To: target}
	}

	if from == Main && target == Auth {
		m.sessions.Logout(ctx)
	}

	m.current = target
	m.logger.Debug(ctx, "screen changed", "from", from, "to", target)
	return nil
}

// Back returns from a feature screen to Main.
func (m *Machine) Back(ctx context.Context) error {
	return m.RequestTransition(ctx, Main)
}

// Logout walks back to Main if needed and then to Auth, ending the
// session. From Auth it is an illegal transition.
func (m *Machine) Logout(ctx context.Context) error {
	if m.Current().IsFeature() {
		if err := m.Back(ctx); err != nil {
			return err
		}
	}
	return m.RequestTransition(ctx, Auth)
}

func (m *Machine) allowed(from, to Screen) bool {
	active := m.sessions.Current().Active()

	switch {
	case from == Auth && to == Main:
		return active
	case from == Main && to.IsFeature():
		return active && m.offers(to)
	case from.IsFeature() && to == Main:
		return true
	case from == Main && to == Auth:
		return true
	}
	return false
}

func (m *Machine) offers(s Screen) bool {
	for _, f := range m.features {
		if f == s {
			return true
		}
	}
	return false
}
