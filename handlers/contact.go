// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/leadpage/cliparse"
	"github.com/danielhkuo/leadpage/db"
	"github.com/danielhkuo/leadpage/middleware"
	"github.com/danielhkuo/leadpage/models"
	"github.com/danielhkuo/leadpage/session"
	"github.com/danielhkuo/leadpage/views"
)

// Flash texts shown after a submission
const (
	MsgContactMissing = "Por favor, preencha nome, e-mail e mensagem."
	MsgContactSaved   = "Recebi sua mensagem! Em breve entro em contato."
)

const maxContactBody = 64 << 10

type ContactHandler struct {
	db       *sqlx.DB
	cfg      cliparse.Config
	pages    *PageHandler
	sessions *session.Manager
	now      func() time.Time
}

func NewContactHandler(conn *sqlx.DB, cfg cliparse.Config, v *views.Renderer, sessions *session.Manager) *ContactHandler {
	return &ContactHandler{
		db:       conn,
		cfg:      cfg,
		pages:    NewPageHandler(cfg, v, sessions),
		sessions: sessions,
		now:      time.Now,
	}
}

// ShowContact handles GET /contato
// Renders the home page scrolled down to the contact section
func (h *ContactHandler) ShowContact(w http.ResponseWriter, r *http.Request) {
	h.pages.renderHome(w, r, "contatos")
}

// SubmitContact handles POST /contato
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	form := readContactForm(r)

	// Bots fill every field; humans never see this one
	if form.Honeypot != "" {
		slog.Info("contact honeypot triggered", "remote", middleware.GetClientIP(r))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	s := h.sessions.Get(r)

	if form.Name == "" || form.Email == "" || form.Message == "" {
		if err := s.AddFlash(r.Context(), w, models.FlashError, MsgContactMissing); err != nil {
			slog.Error("failed to store flash", "error", err)
		}
		http.Redirect(w, r, "/contato", http.StatusFound)
		return
	}

	lead := models.Lead{
		Name:      truncate(form.Name, models.MaxNameLen),
		Email:     truncate(form.Email, models.MaxEmailLen),
		Message:   form.Message,
		CreatedAt: h.now(),
	}
	if form.Phone != "" {
		phone := truncate(form.Phone, models.MaxPhoneLen)
		lead.Phone = &phone
	}

	lead, err := db.InsertLead(r.Context(), h.db, lead)
	if err != nil {
		slog.Error("failed to insert lead", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("lead created", "lead_id", lead.ID)

	if err := s.AddFlash(r.Context(), w, models.FlashSuccess, MsgContactSaved); err != nil {
		slog.Error("failed to store flash", "error", err)
	}
	http.Redirect(w, r, "/contato", http.StatusFound)
}

// readContactForm reads and trims the submitted fields. A body that cannot be
// parsed yields empty fields.
func readContactForm(r *http.Request) models.ContactForm {
	field := func(name string) string {
		return strings.TrimSpace(r.PostFormValue(name))
	}
	return models.ContactForm{
		Name:     field("name"),
		Email:    field("email"),
		Phone:    field("phone"),
		Message:  field("message"),
		Honeypot: field("website"),
	}
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
