package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists saved brackets in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the bracket database at path, creating the file and schema
// as needed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open bracket db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", p, err)
		}
	}

	const ddl = `
CREATE TABLE IF NOT EXISTS brackets (
	id         TEXT PRIMARY KEY,
	owner      TEXT NOT NULL,
	name       TEXT NOT NULL,
	token      TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create brackets table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save inserts or replaces a record by ID.
func (s *SQLiteStore) Save(ctx context.Context, b SavedBracket) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO brackets (id, owner, name, token, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	owner = excluded.owner,
	name = excluded.name,
	token = excluded.token,
	updated_at = excluded.updated_at`,
		b.ID, b.Owner, b.Name, b.Token, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save bracket %s: %w", b.ID, err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (SavedBracket, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, owner, name, token, created_at, updated_at
FROM brackets WHERE id = ?`, id)

	var b SavedBracket
	err := row.Scan(&b.ID, &b.Owner, &b.Name, &b.Token, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedBracket{}, ErrNotFound
	}
	if err != nil {
		return SavedBracket{}, fmt.Errorf("get bracket %s: %w", id, err)
	}
	return b, nil
}

// List returns all records ordered by creation time, ties broken by ID.
func (s *SQLiteStore) List(ctx context.Context) ([]SavedBracket, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, owner, name, token, created_at, updated_at
FROM brackets ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list brackets: %w", err)
	}
	defer rows.Close()

	result := make([]SavedBracket, 0)
	for rows.Next() {
		var b SavedBracket
		if err := rows.Scan(&b.ID, &b.Owner, &b.Name, &b.Token, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bracket row: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bracket rows: %w", err)
	}
	return result, nil
}

// Delete removes a record by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM brackets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete bracket %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bracket %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
