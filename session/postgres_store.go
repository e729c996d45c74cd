package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is satisfied by *pgx.Conn and *pgxpool.Pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresManager struct {
	db  DB
	ttl time.Duration
}

func NewPostgresManager(db DB, ttl time.Duration) *PostgresManager {
	return &PostgresManager{db: db, ttl: ttl}
}

func (m *PostgresManager) Open(sessionID string) Store {
	return &postgresStore{db: m.db, ttl: m.ttl, sessionID: sessionID}
}

type postgresStore struct {
	db        DB
	ttl       time.Duration
	sessionID string
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	if len(s.sessionID) == 0 {
		return "", false, ErrEmptySessionID
	}

	sql := `
			SELECT value
			FROM strajk.session_value
			WHERE session_id=$1 AND key=$2 AND updated_at >= $3;
		`

	var value string
	err := s.db.QueryRow(ctx, sql, s.sessionID, key, time.Now().Add(-s.ttl)).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch session value '%v': %w", key, err)
	}

	return value, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	if len(s.sessionID) == 0 {
		return ErrEmptySessionID
	}

	sql := `
			INSERT INTO strajk.session_value(session_id, key, value, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (session_id, key)
			DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at;
		`

	_, err := s.db.Exec(ctx, sql, s.sessionID, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to store session value '%v': %w", key, err)
	}

	return nil
}

func (s *postgresStore) Clear(ctx context.Context) error {
	if len(s.sessionID) == 0 {
		return ErrEmptySessionID
	}

	sql := `
			DELETE FROM strajk.session_value
			WHERE session_id=$1;
		`

	_, err := s.db.Exec(ctx, sql, s.sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear session '%v': %w", s.sessionID, err)
	}

	return nil
}
