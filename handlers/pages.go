// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/leadpage/cliparse"
	"github.com/danielhkuo/leadpage/middleware"
	"github.com/danielhkuo/leadpage/models"
	"github.com/danielhkuo/leadpage/session"
	"github.com/danielhkuo/leadpage/views"
)

type PageHandler struct {
	cfg      cliparse.Config
	views    *views.Renderer
	sessions *session.Manager
}

func NewPageHandler(cfg cliparse.Config, v *views.Renderer, sessions *session.Manager) *PageHandler {
	return &PageHandler{cfg: cfg, views: v, sessions: sessions}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, "")
}

// Privacy handles GET /politica-privacidade
func (h *PageHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	data := views.PageData{
		Title:   "Política de Privacidade",
		Flashes: h.sessions.Get(r).PopFlashes(r.Context(), w),
	}
	render(w, h.views, views.PagePrivacy, data)
}

// renderHome renders the landing page, optionally asking the browser to
// scroll to a section
func (h *PageHandler) renderHome(w http.ResponseWriter, r *http.Request, scrollTo string) {
	data := views.PageData{
		Flashes:  h.sessions.Get(r).PopFlashes(r.Context(), w),
		ScrollTo: scrollTo,
		Services: models.Services(),
		Projects: models.Projects(),
	}
	render(w, h.views, views.PageIndex, data)
}

// Health handles GET /health. It never checks dependencies.
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

func render(w http.ResponseWriter, v *views.Renderer, page string, data views.PageData) {
	if err := v.Render(w, http.StatusOK, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
