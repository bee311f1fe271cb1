package sessionstore

import (
	"context"
	"errors"
	"time"
)

// Per-session entry keys. The store holds exactly two string entries per
// session: the bearer token and the serialized user record.
const (
	EntryToken = "token"
	EntryUser  = "user"
)

var ErrEntryNotFound = errors.New("session entry not found")

// ISessionStore is the key/value port the auth session manager persists
// through. Implementations: Redis for deployments, in-memory for tests and
// local development.
type ISessionStore interface {
	SetEntry(ctx context.Context, sessionID, key, value string, expiration time.Duration) error
	GetEntry(ctx context.Context, sessionID, key string) (string, error)
	ClearSession(ctx context.Context, sessionID string) error
}
