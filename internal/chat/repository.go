package chat

import "context"

// Repository stores chat messages in posting order.
type Repository interface {
	Insert(ctx context.Context, m Message) error
	// List returns every stored message, oldest first.
	List(ctx context.Context) ([]Message, error)
	// Trim keeps only the newest keep messages. keep <= 0 keeps everything.
	Trim(ctx context.Context, keep int) error
}
