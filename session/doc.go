// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session provides server-side session state behind a signed cookie.

# Stores

A Store maps session IDs to Data (the admin PIN flag and pending flash
messages):

  - MemoryStore: in process, for development and tests
  - SQLStore: the web_session table of the main database (default)
  - RedisStore: JSON values with a TTL, via go-redis

# Manager

The Manager signs session IDs with the secret key and hands handlers a
lazily loaded Session:

	sessions := session.NewManager(store, cfg.SecretKey, cfg.SessionTTL)
	handler = sessions.Middleware(handler)

	s := sessions.Get(r)
	if err := s.SetAdmin(r.Context(), w, true); err != nil { ... }

The cookie holds only "<uuid>.<hmac>". Tampered or foreign cookies are
ignored and a fresh session is issued on the next write. Every change is saved
immediately, before the response body is written.
*/
package session
