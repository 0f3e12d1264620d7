package db

import (
	"database/sql"
)

// MigrateUp creates the history and status tables. It is idempotent.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS conversations (
    id         UUID PRIMARY KEY,
    user_id    TEXT NOT NULL DEFAULT 'default',
    query      TEXT NOT NULL,
    response   TEXT NOT NULL,
    type       VARCHAR(16) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS status_checks (
    id          UUID PRIMARY KEY,
    client_name TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY created_at DESC for GET /api/history
		`CREATE INDEX IF NOT EXISTS idx_conversations_created_at ON conversations(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_status_checks_created_at ON status_checks(created_at)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// type values are a closed set; ignore the error when the constraint already exists
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_conversation_type'
    ) THEN
        ALTER TABLE conversations ADD CONSTRAINT chk_conversation_type
        CHECK (type IN ('general', 'search', 'combined'));
    END IF;
END $$;
`)

	return nil
}
