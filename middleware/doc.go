// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Use(middleware.Logging)
	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). The wrapped writer unwraps for http.ResponseController, so
streaming handlers can still flush.

# Security Headers

SecurityHeaders adds X-Content-Type-Options, X-Frame-Options and
X-XSS-Protection to every response, including 404s, unless already set.

# Admin Guard

RequireAdmin answers 401 with WWW-Authenticate: Basic realm="Leads" unless
the gate approves the request:

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(gate))
		r.Get("/admin/leads", admin.ListLeads)
	})

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.AdminDoorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// ...
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in access logs and denied-admin warnings.
*/
package middleware
