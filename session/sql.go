// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLStore keeps sessions in the web_session table of the main database
type SQLStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

func (s *SQLStore) Load(ctx context.Context, id string) (Data, error) {
	var row struct {
		Data      string    `db:"data"`
		ExpiresAt time.Time `db:"expires_at"`
	}
	err := s.db.GetContext(ctx, &row, s.db.Rebind(`
		SELECT data, expires_at FROM web_session WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, fmt.Errorf("failed to load session: %w", err)
	}

	if !s.now().Before(row.ExpiresAt) {
		if err := s.Delete(ctx, id); err != nil {
			return Data{}, err
		}
		return Data{}, ErrNotFound
	}

	var data Data
	if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
		return Data{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return data, nil
}

func (s *SQLStore) Save(ctx context.Context, id string, data Data, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	expiresAt := s.now().Add(ttl).UTC().Truncate(time.Microsecond)
	_, err = s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO web_session (id, data, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at
	`), id, string(payload), expiresAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM web_session WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry and returns how many
func (s *SQLStore) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		DELETE FROM web_session WHERE expires_at <= ?
	`), s.now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
