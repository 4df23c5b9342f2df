package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the local/dev backend, used when no DATABASE_URL is configured.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens or creates the database file at path.
func NewSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteMemory opens an in-memory database for testing.
func NewSQLiteMemory() (*SQLite, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS inquiries (
			id TEXT PRIMARY KEY,
			service_type TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			organization TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			form_data TEXT NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("migrate inquiries: %w", err)
	}
	return nil
}

// Insert appends one inquiry record.
func (s *SQLite) Insert(ctx context.Context, inq *Inquiry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inquiries (id, service_type, name, email, organization, score, form_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.ServiceType, inq.Name, inq.Email, inq.Organization,
		inq.Score, string(inq.FormData), inq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// Recent returns the newest inquiries, newest first.
func (s *SQLite) Recent(ctx context.Context, limit int) ([]Inquiry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, service_type, name, email, organization, score, form_data, created_at
		FROM inquiries ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []Inquiry
	for rows.Next() {
		var inq Inquiry
		var formData string
		if err := rows.Scan(&inq.ID, &inq.ServiceType, &inq.Name, &inq.Email,
			&inq.Organization, &inq.Score, &formData, &inq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inq.FormData = []byte(formData)
		out = append(out, inq)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
