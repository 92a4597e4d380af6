package session

import "errors"

var (
	// Register failures.
	ErrEmptyField   = errors.New("login and password are required")
	ErrLoginTaken   = errors.New("login already taken")
	ErrInvalidLogin = errors.New("login must not contain ':' or line breaks")

	// Login failure; deliberately says nothing about which field was wrong.
	ErrInvalidCredentials = errors.New("invalid login or password")

	// Accumulator calls without an active session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
