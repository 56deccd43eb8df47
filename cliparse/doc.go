// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

The Config is resolved once at startup and passed by value to every
component. Nothing reads the environment at request time.

# CLI Flags

	-host           Bind host
	-p              Server port
	-d              Database URL
	-instance       Instance (data) directory
	-root           Root for relative sqlite paths
	-secret         Session secret key
	-pin            Admin PIN
	-session-store  memory, sql or redis
	-env-file       dotenv file (default .env)

# Environment Variables

Flags fall back to environment variables, which fall back to defaults:

	HOST            → -host (127.0.0.1)
	PORT            → -p (5000)
	DATABASE_URL    → -d (instance/leads.db)
	INSTANCE_PATH   → -instance (<root>/instance)
	APP_ROOT        → -root (working directory)
	SECRET_KEY      → -secret (dev-secret)
	ADMIN_PIN       → -pin (2468)
	SESSION_STORE   → -session-store (sql)
	BASIC_AUTH_USER   (admin)
	BASIC_AUTH_PASS   (changeme)
	SESSION_TTL       (720h)
	REDIS_ADDR, REDIS_PASSWORD, REDIS_DB

Values from the dotenv file never override variables already set.

# Database URLs

ResolveDatabase normalizes DATABASE_URL:

	sqlite:///data/leads.db      → <root>/data/leads.db
	sqlite:////var/lib/leads.db  → /var/lib/leads.db
	postgres://user:pw@host/db   → unchanged, lib/pq driver
	(empty)                      → <instance>/leads.db

Directories are created before the first connection. Unknown schemes return
ErrUnsupportedDatabase.
*/
package cliparse
