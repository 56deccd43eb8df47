// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/leadpage/cliparse"
	"github.com/danielhkuo/leadpage/session"
	"github.com/danielhkuo/leadpage/testutil"
	"github.com/danielhkuo/leadpage/views"
)

// testEnv bundles handlers sharing one database and session manager
type testEnv struct {
	db       *sqlx.DB
	cfg      cliparse.Config
	sessions *session.Manager
	pages    *PageHandler
	contact  *ContactHandler
	admin    *AdminHandler
	mux      chi.Router
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	sessions := testutil.NewTestManager(cfg)

	renderer, err := views.New()
	if err != nil {
		t.Fatalf("Failed to load templates: %v", err)
	}

	env := &testEnv{
		db:       conn,
		cfg:      cfg,
		sessions: sessions,
		pages:    NewPageHandler(cfg, renderer, sessions),
		contact:  NewContactHandler(conn, cfg, renderer, sessions),
		admin:    NewAdminHandler(conn, cfg, renderer, sessions),
	}

	// Path parameters need a chi router
	env.mux = chi.NewRouter()
	env.mux.Post("/admin/leads/{id}/delete", env.admin.DeleteLead)

	return env
}

// follow copies the session cookie from a response onto the next request
func follow(t *testing.T, w *httptest.ResponseRecorder, req *http.Request) *http.Request {
	t.Helper()
	c := testutil.SessionCookie(w)
	if c == nil {
		t.Fatal("Expected session cookie on response")
	}
	req.AddCookie(c)
	return req
}

// unlock returns a request-ready admin session cookie
func unlock(t *testing.T, env *testEnv) *http.Cookie {
	t.Helper()
	req := testutil.MakeRequest("POST", "/admin/door", map[string]string{"pin": env.cfg.AdminPIN}, nil)
	w := httptest.NewRecorder()
	env.admin.Door(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	c := testutil.SessionCookie(w)
	if c == nil {
		t.Fatal("Expected session cookie after unlocking")
	}
	return c
}
