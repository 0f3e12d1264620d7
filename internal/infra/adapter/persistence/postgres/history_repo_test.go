package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"financespace/internal/domain/entity"
	pg "financespace/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── helpers ─────────────────────────── */

func historyRows(entries ...*entity.HistoryEntry) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "query", "response", "type", "created_at"})
	for _, e := range entries {
		rows.AddRow(e.ID, e.UserID, e.Query, e.Response, string(e.Type), e.Timestamp)
	}
	return rows
}

/* ─────────────────────────── 1. Append ─────────────────────────── */

func TestHistoryRepo_Append(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	entry := &entity.HistoryEntry{
		ID: "a1", UserID: "default", Query: "what is BTC",
		Response: "Bitcoin is...", Type: entity.InteractionGeneral, Timestamp: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO conversations")).
		WithArgs("a1", "default", "what is BTC", "Bitcoin is...", "general", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewHistoryRepo(db)
	if err := repo.Append(context.Background(), entry); err != nil {
		t.Fatalf("Append err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryRepo_Append_Error(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("INSERT INTO conversations").
		WillReturnError(errors.New("connection reset"))

	repo := pg.NewHistoryRepo(db)
	err := repo.Append(context.Background(), entity.NewHistoryEntry("q", "r", entity.InteractionSearch))
	if err == nil {
		t.Fatal("expected error")
	}
}

/* ─────────────────────────── 2. ListRecent ─────────────────────────── */

func TestHistoryRepo_ListRecent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	newer := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	want := []*entity.HistoryEntry{
		{ID: "b", UserID: "default", Query: "q2", Response: "r2", Type: entity.InteractionCombined, Timestamp: newer},
		{ID: "a", UserID: "default", Query: "q1", Response: "r1", Type: entity.InteractionSearch, Timestamp: older},
	}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WithArgs(2).
		WillReturnRows(historyRows(want...))

	repo := pg.NewHistoryRepo(db)
	got, err := repo.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListRecent err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryRepo_ListRecent_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM conversations").
		WithArgs(10).
		WillReturnRows(historyRows())

	repo := pg.NewHistoryRepo(db)
	got, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent err=%v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestHistoryRepo_ListRecent_QueryError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM conversations").WillReturnError(errors.New("boom"))

	repo := pg.NewHistoryRepo(db)
	if _, err := repo.ListRecent(context.Background(), 10); err == nil {
		t.Fatal("expected error")
	}
}
