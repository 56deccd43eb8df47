// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/leadpage/models"
)

// DefaultBatchSize is how many leads StreamLeads pulls per query
const DefaultBatchSize = 500

var ErrLeadNotFound = errors.New("lead not found")

const leadColumns = `id, name, email, phone, message, created_at`

// InsertLead stores a new lead and returns it with its assigned ID.
// A zero CreatedAt is set to the current time.
func InsertLead(ctx context.Context, conn *sqlx.DB, lead models.Lead) (models.Lead, error) {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	// Microseconds survive every backend, which keeps keyset cursors exact
	lead.CreatedAt = lead.CreatedAt.UTC().Truncate(time.Microsecond)

	err := conn.QueryRowxContext(ctx, conn.Rebind(`
		INSERT INTO lead (name, email, phone, message, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), lead.Name, lead.Email, lead.Phone, lead.Message, lead.CreatedAt).Scan(&lead.ID)
	if err != nil {
		return models.Lead{}, fmt.Errorf("failed to insert lead: %w", err)
	}

	return lead, nil
}

// ListLeads returns every lead, most recent first.
func ListLeads(ctx context.Context, conn *sqlx.DB) ([]models.Lead, error) {
	leads := []models.Lead{}
	err := conn.SelectContext(ctx, &leads, `
		SELECT `+leadColumns+`
		FROM lead
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// GetLead fetches one lead by ID.
func GetLead(ctx context.Context, conn *sqlx.DB, id int64) (models.Lead, error) {
	var lead models.Lead
	err := conn.GetContext(ctx, &lead, conn.Rebind(`
		SELECT `+leadColumns+`
		FROM lead
		WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Lead{}, ErrLeadNotFound
	}
	if err != nil {
		return models.Lead{}, fmt.Errorf("failed to get lead %d: %w", id, err)
	}
	return lead, nil
}

// DeleteLead removes one lead. Returns ErrLeadNotFound when no row matched.
func DeleteLead(ctx context.Context, conn *sqlx.DB, id int64) error {
	res, err := conn.ExecContext(ctx, conn.Rebind(`DELETE FROM lead WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete lead %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete lead %d: %w", id, err)
	}
	if n == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// CountLeads returns the number of stored leads.
func CountLeads(ctx context.Context, conn *sqlx.DB) (int, error) {
	var n int
	if err := conn.GetContext(ctx, &n, `SELECT COUNT(*) FROM lead`); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return n, nil
}

// StreamLeads yields every lead, most recent first, fetching batchSize rows
// per query. Pages are keyed on (created_at, id) so rows inserted or deleted
// while streaming never shift the cursor. A query error is yielded once and
// ends the sequence.
func StreamLeads(ctx context.Context, conn *sqlx.DB, batchSize int) iter.Seq2[models.Lead, error] {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return func(yield func(models.Lead, error) bool) {
		var after *models.Lead
		for {
			batch, err := leadPage(ctx, conn, after, batchSize)
			if err != nil {
				yield(models.Lead{}, err)
				return
			}

			for _, lead := range batch {
				if !yield(lead, nil) {
					return
				}
			}

			if len(batch) < batchSize {
				return
			}
			after = &batch[len(batch)-1]
		}
	}
}

func leadPage(ctx context.Context, conn *sqlx.DB, after *models.Lead, limit int) ([]models.Lead, error) {
	batch := make([]models.Lead, 0, limit)

	var err error
	if after == nil {
		err = conn.SelectContext(ctx, &batch, conn.Rebind(`
			SELECT `+leadColumns+`
			FROM lead
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		`), limit)
	} else {
		err = conn.SelectContext(ctx, &batch, conn.Rebind(`
			SELECT `+leadColumns+`
			FROM lead
			WHERE created_at < ? OR (created_at = ? AND id < ?)
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		`), after.CreatedAt, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leads page: %w", err)
	}

	return batch, nil
}
