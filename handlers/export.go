// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bufio"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/leadpage/db"
	"github.com/danielhkuo/leadpage/middleware"
	"github.com/danielhkuo/leadpage/models"
)

// CSVHeader is the first line of every export
const CSVHeader = "id,criado_em,nome,email,telefone,mensagem\n"

// ExportLeads handles GET /admin/leads.csv
// Rows are streamed as they come out of the database, flushing once per batch.
func (h *AdminHandler) ExportLeads(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=leads.csv")
	middleware.NoStore(w)
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	out := bufio.NewWriter(w)

	if _, err := out.WriteString(CSVHeader); err != nil {
		return
	}

	rows := 0
	for lead, err := range db.StreamLeads(r.Context(), h.db, h.batchSize) {
		if err != nil {
			// Headers are gone already; all we can do is stop
			slog.Error("lead export aborted", "rows", rows, "error", err)
			break
		}

		if _, err := out.WriteString(csvRow(lead)); err != nil {
			slog.Warn("lead export client went away", "rows", rows, "error", err)
			return
		}
		rows++

		if rows%h.batchSize == 0 {
			if err := out.Flush(); err != nil {
				return
			}
			rc.Flush()
		}
	}

	if err := out.Flush(); err != nil {
		return
	}
	slog.Info("leads exported", "rows", rows)
}

// csvRow formats one lead with every field quoted
func csvRow(lead models.Lead) string {
	message := strings.ReplaceAll(lead.Message, "\r\n", " ")
	message = strings.ReplaceAll(message, "\n", " ")
	message = strings.TrimSpace(message)

	fields := []string{
		strconv.FormatInt(lead.ID, 10),
		isoTimestamp(lead.CreatedAt),
		lead.Name,
		lead.Email,
		lead.PhoneOrEmpty(),
		message,
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	return b.String()
}

// isoTimestamp renders a UTC timestamp without offset, with microseconds
// only when present
func isoTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}
