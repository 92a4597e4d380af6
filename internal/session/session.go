// Package session owns the single "current user" of the application.
//
// A Manager is created once at startup and passed to whatever needs to know
// who is logged in. Login, Register, Logout and AddPoints are its only
// mutators; everyone else reads copies via Current.
package session

import (
	"time"
)

// Session is a snapshot of the authenticated actor. The zero value means
// nobody is logged in.
type Session struct {
	ID          string
	Login       string
	Counter     int
	DisplayName string
	Avatar      string
	StartedAt   time.Time
}

// Active reports whether the snapshot belongs to a logged-in user.
func (s Session) Active() bool {
	return s.Login != ""
}
