package session

import "context"

//go:generate mockgen -source=session.go -destination=mocks/session_mock.go

// Store is the key/value storage of a single browser session.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}

// Manager hands out the Store belonging to a session ID.
type Manager interface {
	Open(sessionID string) Store
}
