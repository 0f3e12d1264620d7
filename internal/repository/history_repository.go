// Package repository declares the persistence contracts used by the use cases.
package repository

import (
	"context"

	"financespace/internal/domain/entity"
)

// HistoryRepository stores completed interactions.
// Appends from concurrent requests may interleave; ordering on read is by timestamp only.
type HistoryRepository interface {
	Append(ctx context.Context, entry *entity.HistoryEntry) error
	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error)
}

// StatusRepository stores liveness records.
type StatusRepository interface {
	Create(ctx context.Context, check *entity.StatusCheck) error
	// List returns at most limit records in insertion order.
	List(ctx context.Context, limit int) ([]*entity.StatusCheck, error)
}
