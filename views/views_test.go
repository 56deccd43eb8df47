// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/leadpage/models"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestRender_Index(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()

	err := r.Render(w, http.StatusOK, PageIndex, PageData{
		Services: models.Services(),
		Projects: models.Projects(),
		ScrollTo: "contatos",
		Flashes:  []models.Flash{{Category: models.FlashError, Message: "Por favor, preencha nome, e-mail e mensagem."}},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	for _, want := range []string{
		`name="website"`,
		`data-scroll-to="contatos"`,
		"flash-error",
		"Dados &amp; SQL",
		"Portal de Avisos",
		"/static/js/analytics.js",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Unexpected Content-Type %q", ct)
	}
}

func TestRender_AdminLeads(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()

	phone := "1199"
	err := r.Render(w, http.StatusOK, PageAdminLeads, PageData{
		DisableAnalytics: true,
		Leads: []models.Lead{
			{ID: 7, Name: "<b>Ana</b>", Email: "a@x.com", Phone: &phone, Message: "Oi", CreatedAt: time.Now().Add(-3 * time.Minute)},
		},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	if strings.Contains(body, "analytics.js") {
		t.Error("Expected analytics to be disabled")
	}
	if strings.Contains(body, "<b>Ana</b>") {
		t.Error("Expected lead fields to be escaped")
	}
	for _, want := range []string{"/admin/leads/7/delete", "3 minutes ago", "1199", "(1)"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
}

func TestRender_AdminLeadsEmpty(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()

	if err := r.Render(w, http.StatusOK, PageAdminLeads, PageData{DisableAnalytics: true}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(w.Body.String(), "Nenhum lead ainda.") {
		t.Error("Expected empty state")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()

	if err := r.Render(w, http.StatusOK, "missing.html", PageData{}); err == nil {
		t.Error("Expected error for unknown page")
	}
	if w.Body.Len() != 0 {
		t.Error("Expected nothing written for unknown page")
	}
}

func TestStatic(t *testing.T) {
	handler := Static()

	for _, path := range []string{"/static/css/site.css", "/static/js/main.js"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}

	req := httptest.NewRequest("GET", "/static/nope.txt", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing asset, got %d", w.Code)
	}
}
