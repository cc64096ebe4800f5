package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type progressRepo struct {
	drv *entsql.Driver
}

func (r *progressRepo) Load(ctx context.Context) ([]LessonProgressData, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("day", "status", "score", "twists_completed", "passed_at").
		From(entsql.Table("lesson_progress")).
		OrderBy(entsql.Asc("day")).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("load lesson progress: %w", err)
	}
	defer rows.Close()

	var out []LessonProgressData
	for rows.Next() {
		var d LessonProgressData
		if err := rows.Scan(&d.Day, &d.Status, &d.Score, &d.TwistsCompleted, &d.PassedAt); err != nil {
			return nil, fmt.Errorf("scan lesson progress: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Save rewrites the whole table in one transaction. Progress is a few
// dozen rows at most, so replace-all is simpler than diffing.
func (r *progressRepo) Save(ctx context.Context, data []LessonProgressData) error {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Delete("lesson_progress").
		Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear lesson progress: %w", err)
	}

	if len(data) > 0 {
		insert := entsql.Dialect(dialect.SQLite).
			Insert("lesson_progress").
			Columns("day", "status", "score", "twists_completed", "passed_at")
		for _, d := range data {
			insert = insert.Values(d.Day, d.Status, d.Score, d.TwistsCompleted, d.PassedAt)
		}
		query, args = insert.Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			tx.Rollback()
			return fmt.Errorf("save lesson progress: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
