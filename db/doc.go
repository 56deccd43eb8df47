// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the connection pool, schema creation and lead queries.

# Connecting

Open takes the target resolved by cliparse and pings it:

	conn, err := db.Open(ctx, cfg.Database)

sqlite targets use modernc.org/sqlite (no cgo), postgres targets use lib/pq.
Queries are written with ? placeholders and passed through sqlx Rebind.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - lead: contact form submissions
  - web_session: server-side session state for the sql session store

# Lead Queries

	lead, err := db.InsertLead(ctx, conn, models.Lead{...})
	leads, err := db.ListLeads(ctx, conn)
	err := db.DeleteLead(ctx, conn, id)  // ErrLeadNotFound if absent

Leads are always ordered created_at DESC, id DESC.

# Streaming

StreamLeads returns a lazy sequence that pulls fixed-size pages with keyset
pagination, so exports never hold the whole table in memory:

	for lead, err := range db.StreamLeads(ctx, conn, db.DefaultBatchSize) {
		if err != nil {
			return err
		}
		// ...
	}
*/
package db
