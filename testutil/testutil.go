// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/leadpage/cliparse"
	"github.com/danielhkuo/leadpage/db"
	"github.com/danielhkuo/leadpage/models"
	"github.com/danielhkuo/leadpage/session"
)

// Credentials used by GetTestConfig
const (
	TestPIN       = "2468"
	TestBasicUser = "admin"
	TestBasicPass = "changeme"
	TestSecret    = "test-secret"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// The file lives in t.TempDir and the connection is closed on cleanup.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	target, err := cliparse.ResolveDatabase("sqlite:///"+filepath.Join(t.TempDir(), "leads.db"), "", "")
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

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Host:          "127.0.0.1",
		Port:          5000,
		SecretKey:     TestSecret,
		AdminPIN:      TestPIN,
		BasicAuthUser: TestBasicUser,
		BasicAuthPass: TestBasicPass,
		SessionStore:  cliparse.SessionStoreMemory,
		SessionTTL:    time.Hour,
	}
}

// NewTestManager returns a session manager backed by memory
func NewTestManager(cfg cliparse.Config) *session.Manager {
	return session.NewManager(session.NewMemoryStore(), cfg.SecretKey, cfg.SessionTTL)
}

// CreateTestLead inserts a lead and returns it with its ID set
func CreateTestLead(t *testing.T, conn *sqlx.DB, name, email, message string) models.Lead {
	t.Helper()

	lead, err := db.InsertLead(context.Background(), conn, models.Lead{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		t.Fatalf("Failed to create test lead: %v", err)
	}

	return lead
}

// CountTestLeads returns the number of stored leads
func CountTestLeads(t *testing.T, conn *sqlx.DB) int {
	t.Helper()

	n, err := db.CountLeads(context.Background(), conn)
	if err != nil {
		t.Fatalf("Failed to count leads: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a urlencoded form POST
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// SessionCookie returns the session cookie set on the response, if any
func SessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to the given location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusFound)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
