package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/leadpage/cliparse"
	"github.com/danielhkuo/leadpage/db"
	"github.com/danielhkuo/leadpage/router"
	"github.com/danielhkuo/leadpage/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbConn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "driver", cfg.Database.Driver)

	store, closeStore, err := openSessionStore(ctx, cfg, dbConn)
	if err != nil {
		slog.Error("session store unavailable", "store", cfg.SessionStore, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// Create router
	mux, err := router.NewRouter(dbConn, cfg, store)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "addr", cfg.Addr(), "session_store", cfg.SessionStore)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// openSessionStore builds the configured session backend. The returned func
// releases it.
func openSessionStore(ctx context.Context, cfg cliparse.Config, conn *sqlx.DB) (session.Store, func(), error) {
	switch cfg.SessionStore {
	case cliparse.SessionStoreMemory:
		return session.NewMemoryStore(), func() {}, nil

	case cliparse.SessionStoreRedis:
		client, err := session.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(client), func() { client.Close() }, nil

	default:
		store := session.NewSQLStore(conn)
		// Expired rows only accumulate across restarts; clear them once here
		if n, err := store.DeleteExpired(ctx); err != nil {
			slog.Warn("session cleanup failed", "error", err)
		} else if n > 0 {
			slog.Info("expired sessions removed", "count", n)
		}
		return store, func() {}, nil
	}
}
