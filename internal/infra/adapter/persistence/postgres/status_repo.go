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

type StatusRepo struct{ db *sql.DB }

func NewStatusRepo(db *sql.DB) repository.StatusRepository {
	return &StatusRepo{db: db}
}

func (repo *StatusRepo) Create(ctx context.Context, check *entity.StatusCheck) error {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("create_status", time.Since(start)) }()

	const query = `
INSERT INTO status_checks (id, client_name, created_at)
VALUES ($1, $2, $3)`
	if _, err := repo.db.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *StatusRepo) List(ctx context.Context, limit int) ([]*entity.StatusCheck, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("list_status", time.Since(start)) }()

	const query = `
SELECT id, client_name, created_at
FROM status_checks
ORDER BY created_at ASC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	checks := make([]*entity.StatusCheck, 0)
	for rows.Next() {
		var c entity.StatusCheck
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		checks = append(checks, &c)
	}
	return checks, rows.Err()
}
