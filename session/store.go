// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/leadpage/models"
)

var ErrNotFound = errors.New("session not found")

// Data is the server-side state of one session
type Data struct {
	AdminOK bool           `json:"admin_ok,omitempty"`
	Flashes []models.Flash `json:"flashes,omitempty"`
}

// Store persists session data keyed by session ID. Load returns ErrNotFound
// for unknown or expired sessions.
type Store interface {
	Load(ctx context.Context, id string) (Data, error)
	Save(ctx context.Context, id string, data Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
