// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/leadpage/auth"
	"github.com/danielhkuo/leadpage/cliparse"
	"github.com/danielhkuo/leadpage/db"
	"github.com/danielhkuo/leadpage/middleware"
	"github.com/danielhkuo/leadpage/models"
	"github.com/danielhkuo/leadpage/session"
	"github.com/danielhkuo/leadpage/views"
)

// MsgLeadDeleted is flashed after a successful delete
const MsgLeadDeleted = "Lead excluído."

const maxDoorBody = 1 << 10

type AdminHandler struct {
	db        *sqlx.DB
	cfg       cliparse.Config
	views     *views.Renderer
	sessions  *session.Manager
	batchSize int
}

func NewAdminHandler(conn *sqlx.DB, cfg cliparse.Config, v *views.Renderer, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{
		db:        conn,
		cfg:       cfg,
		views:     v,
		sessions:  sessions,
		batchSize: db.DefaultBatchSize,
	}
}

// Door handles POST /admin/door
// A correct PIN unlocks the session. Wrong, missing and malformed PINs all
// get the same 401.
func (h *AdminHandler) Door(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDoorBody)

	var req models.AdminDoorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		req = models.AdminDoorRequest{}
	}

	if !auth.CheckPIN(req.PIN, h.cfg.AdminPIN) {
		slog.Warn("admin door rejected", "remote", middleware.GetClientIP(r))
		middleware.JSONResponse(w, http.StatusUnauthorized, models.AdminDoorResponse{OK: false})
		return
	}

	if err := h.sessions.Get(r).SetAdmin(r.Context(), w, true); err != nil {
		slog.Error("failed to unlock admin session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	slog.Info("admin session unlocked", "remote", middleware.GetClientIP(r))
	middleware.JSONResponse(w, http.StatusOK, models.AdminDoorResponse{OK: true})
}

// Logout handles GET /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Get(r).SetAdmin(r.Context(), w, false); err != nil {
		slog.Error("failed to clear admin session", "error", err)
	}
	middleware.NoStore(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// ListLeads handles GET /admin/leads
func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := db.ListLeads(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to list leads", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.NoStore(w)
	render(w, h.views, views.PageAdminLeads, views.PageData{
		Title:            "Leads",
		Flashes:          h.sessions.Get(r).PopFlashes(r.Context(), w),
		DisableAnalytics: true,
		Leads:            leads,
	})
}

// DeleteLead handles POST /admin/leads/{id}/delete
func (h *AdminHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}

	err = db.DeleteLead(r.Context(), h.db, id)
	if errors.Is(err, db.ErrLeadNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to delete lead", "lead_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("lead deleted", "lead_id", id)

	if err := h.sessions.Get(r).AddFlash(r.Context(), w, models.FlashSuccess, MsgLeadDeleted); err != nil {
		slog.Error("failed to store flash", "error", err)
	}
	http.Redirect(w, r, "/admin/leads", http.StatusFound)
}
