// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/leadpage/auth"
	"github.com/danielhkuo/leadpage/cliparse"
	"github.com/danielhkuo/leadpage/handlers"
	"github.com/danielhkuo/leadpage/middleware"
	"github.com/danielhkuo/leadpage/session"
	"github.com/danielhkuo/leadpage/views"
)

func NewRouter(db *sqlx.DB, cfg cliparse.Config, store session.Store) (chi.Router, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	sessions := session.NewManager(store, cfg.SecretKey, cfg.SessionTTL)
	gate := auth.NewGate(cfg, sessions)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(cfg, renderer, sessions)
	contactHandler := handlers.NewContactHandler(db, cfg, renderer, sessions)
	adminHandler := handlers.NewAdminHandler(db, cfg, renderer, sessions)

	r := chi.NewRouter()
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Logging)
	r.Use(sessions.Middleware)

	// Health check
	r.Get("/health", handlers.Health)

	// Public pages
	r.Get("/", pageHandler.Home)
	r.Get("/politica-privacidade", pageHandler.Privacy)
	r.Get("/contato", contactHandler.ShowContact)
	r.Post("/contato", contactHandler.SubmitContact)
	r.Handle("/static/*", views.Static())

	// Admin session
	r.Post("/admin/door", adminHandler.Door)
	r.Get("/admin/logout", adminHandler.Logout)

	// Lead management (admin only)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(gate))
		r.Get("/admin/leads", adminHandler.ListLeads)
		r.Get("/admin/leads.csv", adminHandler.ExportLeads)
		r.Post("/admin/leads/{id}/delete", adminHandler.DeleteLead)
	})

	return r, nil
}
