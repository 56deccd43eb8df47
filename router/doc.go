// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using chi.

# Routes

	GET  /health                    → {"status":"ok"}
	GET  /                          → home page
	GET  /politica-privacidade      → privacy page
	GET  /contato                   → home page at the contact form
	POST /contato                   → contact submission
	GET  /static/*                  → embedded assets
	POST /admin/door                → PIN unlock
	GET  /admin/logout              → clear admin flag

Admin group (session PIN flag or HTTP Basic credentials):

	GET  /admin/leads               → lead list
	GET  /admin/leads.csv           → CSV export
	POST /admin/leads/{id}/delete   → delete one lead

# Middleware

Applied to every route, including 404 and 405 responses:

  - SecurityHeaders: nosniff, SAMEORIGIN, XSS hint
  - Logging: request start and completion
  - sessions.Middleware: per-request session in the context

The admin group adds middleware.RequireAdmin with the auth gate.

# Usage

	r, err := router.NewRouter(conn, cfg, store)
	server := http.Server{Handler: r, Addr: cfg.Addr()}
*/
package router
