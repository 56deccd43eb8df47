// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/leadpage/auth"
	"github.com/danielhkuo/leadpage/models"
)

// CookieName is the name of the signed session cookie
const CookieName = "leadpage_session"

type ctxKey struct{}

// Manager ties a Store to signed session cookies
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl}
}

// Session is the per-request view of one session. Data is loaded lazily on
// first access and written back immediately on every change.
type Session struct {
	m      *Manager
	id     string
	data   Data
	loaded bool
}

// Middleware attaches the request's session to its context
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.fromCookie(r)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, s)))
	})
}

// Get returns the session attached by Middleware, or reads the cookie
// directly when the middleware did not run
func (m *Manager) Get(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok && s.m == m {
		return s
	}
	return m.fromCookie(r)
}

// IsAdmin reports whether the request's session was unlocked with the PIN
func (m *Manager) IsAdmin(r *http.Request) bool {
	return m.Get(r).IsAdmin(r.Context())
}

func (m *Manager) fromCookie(r *http.Request) *Session {
	s := &Session{m: m}

	c, err := r.Cookie(CookieName)
	if err != nil {
		return s
	}
	id, err := auth.Verify(c.Value, m.secret)
	if err != nil {
		slog.Warn("rejected session cookie", "error", err, "path", r.URL.Path)
		return s
	}
	s.id = id
	return s
}

func (s *Session) load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	if s.id == "" {
		return
	}

	data, err := s.m.store.Load(ctx, s.id)
	if errors.Is(err, ErrNotFound) {
		return
	}
	if err != nil {
		slog.Error("failed to load session", "error", err)
		return
	}
	s.data = data
}

// IsAdmin reports the PIN flag
func (s *Session) IsAdmin(ctx context.Context) bool {
	s.load(ctx)
	return s.data.AdminOK
}

// SetAdmin sets or clears the PIN flag. Clearing a session that was never
// issued is a no-op.
func (s *Session) SetAdmin(ctx context.Context, w http.ResponseWriter, ok bool) error {
	if !ok && s.id == "" {
		return nil
	}
	s.load(ctx)
	s.data.AdminOK = ok
	return s.save(ctx, w)
}

// AddFlash queues a message for the next rendered page
func (s *Session) AddFlash(ctx context.Context, w http.ResponseWriter, category, message string) error {
	s.load(ctx)
	s.data.Flashes = append(s.data.Flashes, models.Flash{Category: category, Message: message})
	return s.save(ctx, w)
}

// PopFlashes returns and clears the queued messages
func (s *Session) PopFlashes(ctx context.Context, w http.ResponseWriter) []models.Flash {
	s.load(ctx)
	if len(s.data.Flashes) == 0 {
		return nil
	}

	flashes := s.data.Flashes
	s.data.Flashes = nil
	if err := s.save(ctx, w); err != nil {
		slog.Error("failed to clear flashes", "error", err)
	}
	return flashes
}

func (s *Session) save(ctx context.Context, w http.ResponseWriter) error {
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if err := s.m.store.Save(ctx, s.id, s.data, s.m.ttl); err != nil {
		return err
	}

	// Overwrite rather than append when saved twice in one request
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    auth.Sign(s.id, s.m.secret),
		Path:     "/",
		MaxAge:   int(s.m.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	header := w.Header()
	header.Del("Set-Cookie")
	header.Add("Set-Cookie", cookie.String())
	return nil
}
