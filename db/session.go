/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/session"
	"github.com/jackc/pgx/v5"
)

const (
	defaultSessionTable    = "flamego_sessions"
	defaultSessionLifetime = 7 * 24 * time.Hour
)

// PostgresSessionConfig configures the PostgreSQL session store.
type PostgresSessionConfig struct {
	// Lifetime is how long an untouched session is kept. Default is 7 days.
	Lifetime time.Duration
	// TableName defaults to "flamego_sessions".
	TableName string
	// Encoder and Decoder default to the gob codec of the session package.
	Encoder session.Encoder
	Decoder session.Decoder
}

// PostgresSessionStore implements session.Store on PostgreSQL. Sessions only
// carry flash messages and CSRF tokens; there are no user accounts.
type PostgresSessionStore struct {
	config PostgresSessionConfig
}

// PostgresSessionIniter returns the Initer for the PostgreSQL session store.
func PostgresSessionIniter() session.Initer {
	return func(_ context.Context, args ...interface{}) (session.Store, error) {
		var config PostgresSessionConfig

		if len(args) > 0 {
			cfg, ok := args[0].(PostgresSessionConfig)
			if !ok {
				return nil, errInvalidSessionConfig
			}

			config = cfg
		}

		if config.Lifetime <= 0 {
			config.Lifetime = defaultSessionLifetime
		}

		if config.TableName == "" {
			config.TableName = defaultSessionTable
		}

		if config.Encoder == nil {
			config.Encoder = session.GobEncoder
		}

		if config.Decoder == nil {
			config.Decoder = session.GobDecoder
		}

		return &PostgresSessionStore{config: config}, nil
	}
}

func (s *PostgresSessionStore) table() string {
	return pgx.Identifier{s.config.TableName}.Sanitize()
}

// Exist reports whether an unexpired session with the ID exists.
func (s *PostgresSessionStore) Exist(ctx context.Context, sid string) bool {
	if pool == nil {
		return false
	}

	var exists bool

	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM `+s.table()+` WHERE id = $1 AND expires_at > NOW())`, sid,
	).Scan(&exists)

	return err == nil && exists
}

// Read loads a session, returning a fresh one under the same ID when it is
// missing, expired or undecodable.
func (s *PostgresSessionStore) Read(ctx context.Context, sid string) (session.Session, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	// The session middleware writes the cookie itself.
	idWriter := func(http.ResponseWriter, *http.Request, string) {}

	var data []byte

	err := pool.QueryRow(ctx,
		`SELECT data FROM `+s.table()+` WHERE id = $1 AND expires_at > NOW()`, sid,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && len(data) == 0) {
		return session.NewBaseSession(sid, s.config.Encoder, idWriter), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	values, err := s.config.Decoder(data)
	if err != nil {
		logger.Warn("Discarding undecodable session", "error", err)
		return session.NewBaseSession(sid, s.config.Encoder, idWriter), nil
	}

	return session.NewBaseSessionWithData(sid, s.config.Encoder, idWriter, values), nil
}

// Destroy deletes a session.
func (s *PostgresSessionStore) Destroy(ctx context.Context, sid string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	if _, err := pool.Exec(ctx, `DELETE FROM `+s.table()+` WHERE id = $1`, sid); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// Touch extends the expiry of a session.
func (s *PostgresSessionStore) Touch(ctx context.Context, sid string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	_, err := pool.Exec(ctx,
		`UPDATE `+s.table()+` SET expires_at = $1 WHERE id = $2`,
		time.Now().Add(s.config.Lifetime), sid,
	)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

// Save upserts the session data.
func (s *PostgresSessionStore) Save(ctx context.Context, sess session.Session) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	data, err := sess.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO `+s.table()+` (id, data, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at`,
		sess.ID(), data, time.Now().Add(s.config.Lifetime),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GC removes expired sessions.
func (s *PostgresSessionStore) GC(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	if _, err := pool.Exec(ctx, `DELETE FROM `+s.table()+` WHERE expires_at < NOW()`); err != nil {
		return fmt.Errorf("failed to collect expired sessions: %w", err)
	}

	return nil
}
