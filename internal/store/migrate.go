package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// tables is the full schema. Statements are idempotent so migrate can
// run on every Open.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS lesson_progress (
		day              INTEGER PRIMARY KEY,
		status           TEXT NOT NULL,
		score            INTEGER NOT NULL DEFAULT 0,
		twists_completed INTEGER NOT NULL DEFAULT 0,
		passed_at        TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS llm_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp     TIMESTAMP NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL DEFAULT 1,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp  TIMESTAMP NOT NULL,
		session_id TEXT NOT NULL,
		action     TEXT NOT NULL,
		day        INTEGER NOT NULL DEFAULT 0,
		topic      TEXT NOT NULL DEFAULT '',
		score      INTEGER NOT NULL DEFAULT 0,
		total      INTEGER NOT NULL DEFAULT 0,
		percent    REAL NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS llm_events_purpose ON llm_events (purpose)`,
	`CREATE INDEX IF NOT EXISTS session_events_action ON session_events (action)`,
}

// migrate creates any missing tables and indexes.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range tables {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}
