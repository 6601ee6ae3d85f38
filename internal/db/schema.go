package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Each entity kind owns a single slot in
// the collections table holding the serialized array of its records; binary
// attachment content is never written here, only attachment metadata embedded
// in the records themselves.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
