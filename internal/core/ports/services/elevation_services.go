package services

import (
	"context"
	"time"
)

// CredentialChecker is the capability check behind the elevation gate: the
// core consumes only its boolean outcome, never the prompt/UI mechanics.
type CredentialChecker interface {
	// Check reports whether the supplied secret matches the stored credential.
	Check(ctx context.Context, secret string) (bool, error)
}

// ElevationSvcFacade manages the till PIN and the session-scoped permission
// to mutate past-dated records.
type ElevationSvcFacade interface {
	// SetupPIN stores the bcrypt hash of a new 4-digit PIN. Refused once a
	// PIN exists.
	SetupPIN(ctx context.Context, pin string) error

	// Unlock verifies the PIN and issues an elevation token bound to the
	// viewed date. Returns the token and its expiry.
	Unlock(ctx context.Context, pin string, dateKey string) (string, time.Time, error)

	// Verify reports whether token grants past editing for dateKey.
	Verify(token string, dateKey string) bool
}
