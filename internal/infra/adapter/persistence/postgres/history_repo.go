// Package postgres provides PostgreSQL implementations of the repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"financespace/internal/domain/entity"
	"financespace/internal/observability/metrics"
	"financespace/internal/repository"
)

type HistoryRepo struct{ db *sql.DB }

func NewHistoryRepo(db *sql.DB) repository.HistoryRepository {
	return &HistoryRepo{db: db}
}

func (repo *HistoryRepo) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("append_history", time.Since(start)) }()

	const query = `
INSERT INTO conversations (id, user_id, query, response, type, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := repo.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Query, entry.Response, string(entry.Type), entry.Timestamp)
	if err != nil {
		return fmt.Errorf("Append: %w", err)
	}
	return nil
}

// ListRecent returns at most limit entries ordered by created_at DESC.
// The id tiebreak keeps pages stable when two entries share a timestamp.
func (repo *HistoryRepo) ListRecent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("list_history", time.Since(start)) }()

	const query = `
SELECT id, user_id, query, response, type, created_at
FROM conversations
ORDER BY created_at DESC, id DESC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListRecent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*entity.HistoryEntry, 0, limit)
	for rows.Next() {
		var e entity.HistoryEntry
		var typ string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Query, &e.Response, &typ, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("ListRecent: Scan: %w", err)
		}
		e.Type = entity.InteractionType(typ)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
