package chat

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dmitrijs2005/ecocity/internal/dbx"
	"github.com/dmitrijs2005/ecocity/internal/logging"
	"github.com/dmitrijs2005/ecocity/internal/session"
	"github.com/google/uuid"
)

// Sessions is the read side of the session manager.
type Sessions interface {
	Current() session.Session
}

// Service posts and lists chat messages on behalf of the current session.
type Service struct {
	db       *sql.DB
	sessions Sessions
	logger   logging.Logger
	limit    int
	now      func() time.Time
}

// NewService builds a Service. limit caps the stored history; zero or
// negative means unbounded.
func NewService(db *sql.DB, sessions Sessions, logger logging.Logger, limit int) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{
		db:       db,
		sessions: sessions,
		logger:   logger.With("module", "chat"),
		limit:    limit,
		now:      time.Now,
	}
}

// Post appends body to the log under the current login and trims old
// history in the same transaction.
func (s *Service) Post(ctx context.Context, body string) (Message, error) {
	cur := s.sessions.Current()
	if !cur.Active() {
		return Message{}, session.ErrNotAuthenticated
	}
	if strings.TrimSpace(body) == "" {
		return Message{}, ErrEmptyMessage
	}

	m := Message{
		ID:        uuid.NewString(),
		Author:    cur.Login,
		Body:      body,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Insert(ctx, m); err != nil {
			return err
		}
		return repo.Trim(ctx, s.limit)
	})
	if err != nil {
		s.logger.Error(ctx, "post failed", "login", cur.Login, "error", err)
		return Message{}, err
	}

	s.logger.Debug(ctx, "message posted", "login", cur.Login, "id", m.ID)
	return m, nil
}

// List returns the stored history, oldest first.
func (s *Service) List(ctx context.Context) ([]Message, error) {
	return NewSQLiteRepository(s.db).List(ctx)
}
