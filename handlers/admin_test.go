// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/leadpage/db"
	"github.com/danielhkuo/leadpage/models"
	"github.com/danielhkuo/leadpage/testutil"
)

func TestDoor(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantOK     bool
	}{
		{"correct pin", `{"pin":"2468"}`, http.StatusOK, true},
		{"pin with whitespace", `{"pin":" 2468 "}`, http.StatusOK, true},
		{"wrong pin", `{"pin":"1234"}`, http.StatusUnauthorized, false},
		{"empty pin", `{"pin":""}`, http.StatusUnauthorized, false},
		{"missing pin", `{}`, http.StatusUnauthorized, false},
		{"malformed json", `{"pin":`, http.StatusUnauthorized, false},
		{"empty body", ``, http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)

			req := httptest.NewRequest("POST", "/admin/door", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			env.admin.Door(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			var resp models.AdminDoorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.OK != tt.wantOK {
				t.Errorf("Expected ok=%v, got %v", tt.wantOK, resp.OK)
			}

			c := testutil.SessionCookie(w)
			if tt.wantOK && c == nil {
				t.Fatal("Expected session cookie on success")
			}
			if !tt.wantOK && c != nil {
				t.Error("Expected no session cookie on failure")
			}
			if tt.wantOK {
				next := httptest.NewRequest("GET", "/admin/leads", nil)
				next.AddCookie(c)
				if !env.sessions.IsAdmin(next) {
					t.Error("Expected unlocked session to be admin")
				}
			}
		})
	}
}

func TestLogout(t *testing.T) {
	env := setupTestEnv(t)
	c := unlock(t, env)

	req := httptest.NewRequest("GET", "/admin/logout", nil)
	req.AddCookie(c)
	w := httptest.NewRecorder()
	env.admin.Logout(w, req)

	testutil.AssertRedirect(t, w, "/")
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Expected Cache-Control no-store, got %q", cc)
	}

	after := httptest.NewRequest("GET", "/admin/leads", nil)
	after.AddCookie(c)
	if env.sessions.IsAdmin(after) {
		t.Error("Expected session to be locked after logout")
	}
}

func TestLogout_WithoutSession(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest("GET", "/admin/logout", nil)
	w := httptest.NewRecorder()
	env.admin.Logout(w, req)

	testutil.AssertRedirect(t, w, "/")
}

func TestListLeads(t *testing.T) {
	env := setupTestEnv(t)
	testutil.CreateTestLead(t, env.db, "Ana", "ana@example.com", "primeira")
	testutil.CreateTestLead(t, env.db, "Bruno <b>", "bruno@example.com", "segunda")

	req := httptest.NewRequest("GET", "/admin/leads", nil)
	w := httptest.NewRecorder()
	env.admin.ListLeads(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Expected Cache-Control no-store, got %q", cc)
	}

	body := w.Body.String()
	if strings.Contains(body, "analytics.js") {
		t.Error("Expected analytics to be disabled on admin pages")
	}
	if !strings.Contains(body, "(2)") {
		t.Error("Expected lead count in heading")
	}
	if !strings.Contains(body, "Bruno &lt;b&gt;") {
		t.Error("Expected lead names to be escaped")
	}
	if strings.Index(body, "Bruno") > strings.Index(body, "Ana") {
		t.Error("Expected newest lead first")
	}
}

func TestListLeads_Empty(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest("GET", "/admin/leads", nil)
	w := httptest.NewRecorder()
	env.admin.ListLeads(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Nenhum lead ainda.") {
		t.Error("Expected empty state")
	}
}

func TestDeleteLead(t *testing.T) {
	env := setupTestEnv(t)
	keep := testutil.CreateTestLead(t, env.db, "Ana", "ana@example.com", "fica")
	gone := testutil.CreateTestLead(t, env.db, "Bruno", "bruno@example.com", "sai")

	c := unlock(t, env)
	req := httptest.NewRequest("POST", "/admin/leads/"+strconv.FormatInt(gone.ID, 10)+"/delete", nil)
	req.AddCookie(c)
	w := httptest.NewRecorder()
	env.mux.ServeHTTP(w, req)

	testutil.AssertRedirect(t, w, "/admin/leads")

	if _, err := db.GetLead(context.Background(), env.db, gone.ID); !errors.Is(err, db.ErrLeadNotFound) {
		t.Errorf("Expected deleted lead to be gone, got %v", err)
	}
	if _, err := db.GetLead(context.Background(), env.db, keep.ID); err != nil {
		t.Errorf("Expected other lead to remain, got %v", err)
	}

	// Confirmation flash on the list
	list := httptest.NewRequest("GET", "/admin/leads", nil)
	list.AddCookie(c)
	w2 := httptest.NewRecorder()
	env.admin.ListLeads(w2, list)
	if !strings.Contains(w2.Body.String(), MsgLeadDeleted) {
		t.Error("Expected delete confirmation flash")
	}
}

func TestDeleteLead_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	lead := testutil.CreateTestLead(t, env.db, "Ana", "ana@example.com", "oi")

	for _, id := range []string{"999", "abc", "0", "-1"} {
		t.Run(id, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin/leads/"+id+"/delete", nil)
			w := httptest.NewRecorder()
			env.mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)
		})
	}

	if n := testutil.CountTestLeads(t, env.db); n != 1 {
		t.Errorf("Expected lead %d to remain, have %d leads", lead.ID, n)
	}
}

func TestDeleteLead_Twice(t *testing.T) {
	env := setupTestEnv(t)
	lead := testutil.CreateTestLead(t, env.db, "Ana", "ana@example.com", "oi")
	path := "/admin/leads/" + strconv.FormatInt(lead.ID, 10) + "/delete"

	w := httptest.NewRecorder()
	env.mux.ServeHTTP(w, httptest.NewRequest("POST", path, nil))
	testutil.AssertStatus(t, w, http.StatusFound)

	w = httptest.NewRecorder()
	env.mux.ServeHTTP(w, httptest.NewRequest("POST", path, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
