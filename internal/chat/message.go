package chat

import "time"

// Message is one line of the chat log.
type Message struct {
	ID        string
	Author    string
	Body      string
	CreatedAt time.Time
}

// String renders the message the way the chat screen shows it.
func (m Message) String() string {
	return m.Author + ": " + m.Body
}
