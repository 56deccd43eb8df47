// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the site.

# Handler Types

Each handler is a struct with its dependencies injected at construction:

  - PageHandler: home and privacy pages
  - ContactHandler: contact form view and submission
  - AdminHandler: PIN door, logout, lead list, delete and CSV export

	admin := handlers.NewAdminHandler(conn, cfg, renderer, sessions)

Health is a plain function since it has no dependencies.

# Contact Flow

	GET  /contato → ShowContact (home page scrolled to the form)
	POST /contato → SubmitContact

Submissions are trimmed. A filled website field (honeypot) redirects to /
silently. Missing name, email or message flashes an error. Otherwise a lead
is inserted and a success message is flashed. Both cases redirect back to
/contato.

# Admin

	POST /admin/door              → Door ({"pin": "..."} → {"ok": bool})
	GET  /admin/logout            → Logout
	GET  /admin/leads             → ListLeads      (admin)
	POST /admin/leads/{id}/delete → DeleteLead     (admin)
	GET  /admin/leads.csv         → ExportLeads    (admin)

The admin guard lives in the router. Handlers assume it already ran.

# CSV Export

ExportLeads streams leads in batches straight from the database. Every field
is double quoted with inner quotes doubled, and line breaks in messages are
collapsed to spaces.
*/
package handlers
