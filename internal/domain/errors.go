package domain

import "errors"

// Sentinel errors services translate into transport-level failures.
var (
	// ErrEmailTaken signals the unique email constraint rejected an insert.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown identity and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTicketNotOpen covers both a missing ticket and an already-closed
	// one. The ambiguity is deliberate: close attempts never reveal
	// whether a given ticket id exists.
	ErrTicketNotOpen = errors.New("ticket not found or already closed")

	// ErrUserNotFound signals a profile lookup for a vanished user row.
	ErrUserNotFound = errors.New("user not found")
)
