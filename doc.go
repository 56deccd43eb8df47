// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the leadpage web server.

leadpage serves a small marketing site with a contact form. Submissions are
stored as leads, which an administrator can list, delete and export as CSV.

# Starting the Server

Everything has a development default, so this is enough locally:

	go run .

Or with flags:

	go run . -p 8080 -d "postgres://..." -session-store redis

A .env file in the working directory is read if present (see -env-file).

# Configuration

  - HOST (-host), PORT (-p): listen address (default 127.0.0.1:5000)
  - DATABASE_URL (-d): sqlite:///path.db or postgres://... (default instance/leads.db)
  - SECRET_KEY (-secret): session cookie signing key
  - ADMIN_PIN (-pin): PIN for the hidden admin door
  - BASIC_AUTH_USER, BASIC_AUTH_PASS: alternative admin credentials
  - SESSION_STORE (-session-store): memory, sql or redis (default sql)
  - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB: used by the redis store

# Architecture

  - handlers: pages, contact form and admin handlers
  - router: chi routes and middleware chain
  - middleware: logging, security headers, admin guard, JSON helpers
  - session: server-side sessions (memory, SQL, Redis) behind a signed cookie
  - auth: admin gate, PIN check and cookie signing
  - views: embedded templates and static assets
  - models: request and page types
  - db: connection, schema and lead queries
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
