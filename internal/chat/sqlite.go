package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecocity/internal/dbx"
)

// SQLiteRepository implements Repository on top of a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, m Message) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, author, body, created_at) VALUES (?, ?, ?, ?)`,
		m.ID, m.Author, m.Body, m.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author, body, created_at FROM messages ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}
	defer rows.Close()

	var result []Message
	for rows.Next() {
		var (
			m       Message
			created int64
		)
		if err := rows.Scan(&m.ID, &m.Author, &m.Body, &created); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		m.CreatedAt = time.UnixMilli(created).UTC()
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Trim(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM messages
		WHERE seq NOT IN (SELECT seq FROM messages ORDER BY seq DESC LIMIT ?)
	`, keep)
	if err != nil {
		return fmt.Errorf("failed to trim messages: %w", err)
	}
	return nil
}
