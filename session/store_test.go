// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/danielhkuo/leadpage/cliparse"
	"github.com/danielhkuo/leadpage/db"
	"github.com/danielhkuo/leadpage/models"
)

func newSQLStore(t *testing.T) *SQLStore {
	t.Helper()

	target, err := cliparse.ResolveDatabase("sqlite:///"+filepath.Join(t.TempDir(), "sessions.db"), "", "")
	if err != nil {
		t.Fatalf("Failed to resolve test database: %v", err)
	}
	conn, err := db.Open(context.Background(), target)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return NewSQLStore(conn)
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	t.Cleanup(mr.Close)

	client, err := NewRedisClient(context.Background(), cliparse.Config{RedisAddr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisClient() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestStores_RoundTrip(t *testing.T) {
	redisStore, _ := newRedisStore(t)

	stores := []struct {
		name  string
		store Store
	}{
		{"memory", NewMemoryStore()},
		{"sql", newSQLStore(t)},
		{"redis", redisStore},
	}

	for _, tc := range stores {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := tc.store.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load(missing) error = %v, want ErrNotFound", err)
			}

			in := Data{
				AdminOK: true,
				Flashes: []models.Flash{{Category: models.FlashSuccess, Message: "Lead excluído."}},
			}
			if err := tc.store.Save(ctx, "s1", in, time.Hour); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			out, err := tc.store.Load(ctx, "s1")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !out.AdminOK || len(out.Flashes) != 1 || out.Flashes[0] != in.Flashes[0] {
				t.Errorf("Load() = %+v, want %+v", out, in)
			}

			// Overwrite
			if err := tc.store.Save(ctx, "s1", Data{}, time.Hour); err != nil {
				t.Fatalf("Save() overwrite error = %v", err)
			}
			out, err = tc.store.Load(ctx, "s1")
			if err != nil {
				t.Fatalf("Load() after overwrite error = %v", err)
			}
			if out.AdminOK || len(out.Flashes) != 0 {
				t.Errorf("Expected cleared data, got %+v", out)
			}

			if err := tc.store.Delete(ctx, "s1"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := tc.store.Load(ctx, "s1"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load() after delete error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	if err := store.Save(ctx, "s", Data{AdminOK: true}, time.Minute); err != nil {
		t.Fatal(err)
	}

	now = now.Add(59 * time.Second)
	if _, err := store.Load(ctx, "s"); err != nil {
		t.Errorf("Expected session alive before TTL, got %v", err)
	}

	now = now.Add(time.Second)
	if _, err := store.Load(ctx, "s"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound at TTL, got %v", err)
	}
}

func TestMemoryStore_CopiesFlashes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := Data{Flashes: []models.Flash{{Category: "error", Message: "a"}}}
	store.Save(ctx, "s", in, time.Hour)
	in.Flashes[0].Message = "mutated"

	out, _ := store.Load(ctx, "s")
	if out.Flashes[0].Message != "a" {
		t.Error("MemoryStore shares flash slice with caller")
	}
}

func TestSQLStore_Expiry(t *testing.T) {
	store := newSQLStore(t)
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	if err := store.Save(ctx, "old", Data{AdminOK: true}, time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, "new", Data{AdminOK: true}, time.Hour); err != nil {
		t.Fatal(err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Load(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected expired session to be gone, got %v", err)
	}

	store.Save(ctx, "stale", Data{}, time.Second)
	now = now.Add(time.Minute)

	n, err := store.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired() error = %v", err)
	}
	if n != 1 {
		t.Errorf("DeleteExpired() = %d, want 1", n)
	}
	if _, err := store.Load(ctx, "new"); err != nil {
		t.Errorf("Expected live session to survive, got %v", err)
	}
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "s", Data{AdminOK: true}, time.Minute); err != nil {
		t.Fatal(err)
	}
	if ttl := mr.TTL(redisKeyPrefix + "s"); ttl != time.Minute {
		t.Errorf("Expected TTL of 1m, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.Load(ctx, "s"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after TTL, got %v", err)
	}
}

func TestRedisStore_CorruptValue(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Set(redisKeyPrefix+"bad", "{not json")

	if _, err := store.Load(context.Background(), "bad"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Expected decode error, got %v", err)
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisClient(context.Background(), cliparse.Config{RedisAddr: addr}); err == nil {
		t.Error("Expected ping failure for closed server")
	}
}
