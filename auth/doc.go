// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin authorization gate and signing utilities.

# Admin Gate

A request is admin when either the session was unlocked with the PIN or it
carries matching HTTP Basic credentials:

	gate := auth.NewGate(cfg, sessions)
	if !gate.IsAdmin(r) {
		w.Header().Set("WWW-Authenticate", auth.Challenge())
		// 401
	}

The session side is injected through the AdminSessions interface, which the
session manager implements. Credential comparisons are constant time.

# PIN

	ok := auth.CheckPIN(req.PIN, cfg.AdminPIN)

Blank PINs never match. A wrong PIN and a missing PIN are treated the same.

# Signed Values

Session cookies carry an HMAC-SHA256 signed session ID:

	cookie := auth.Sign(sessionID, cfg.SecretKey)
	id, err := auth.Verify(cookie, cfg.SecretKey)

Verify returns ErrInvalidToken for malformed input and ErrInvalidSignature
when the value was tampered with or signed with another key.
*/
package auth
