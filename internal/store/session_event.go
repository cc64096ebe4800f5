package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var sessionEventColumns = []string{
	"id", "timestamp", "session_id", "action",
	"day", "topic", "score", "total", "percent",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("session_events").
		Columns(sessionEventColumns[1:]...).
		Values(
			time.Now().UTC(),
			data.SessionID,
			data.Action,
			data.Day,
			data.Topic,
			data.Score,
			data.Total,
			data.Percent,
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(sessionEventColumns...).
		From(entsql.Table("session_events")).
		OrderBy(entsql.Desc("id"))
	if !opts.From.IsZero() {
		sel = sel.Where(entsql.GTE("timestamp", opts.From))
	}
	if !opts.To.IsZero() {
		sel = sel.Where(entsql.LTE("timestamp", opts.To))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var e SessionEvent
		err := rows.Scan(
			&e.ID,
			&e.Timestamp,
			&e.SessionID,
			&e.Action,
			&e.Day,
			&e.Topic,
			&e.Score,
			&e.Total,
			&e.Percent,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
