package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Postgres is the hosted-database backend.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres connects to the database at dsn and ensures the inquiries
// table exists.
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS inquiries (
			id TEXT PRIMARY KEY,
			service_type TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			organization TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			form_data JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate inquiries: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Insert appends one inquiry record.
func (p *Postgres) Insert(ctx context.Context, inq *Inquiry) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO inquiries (id, service_type, name, email, organization, score, form_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		inq.ID, inq.ServiceType, inq.Name, inq.Email, inq.Organization,
		inq.Score, inq.FormData, inq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// Recent returns the newest inquiries, newest first.
func (p *Postgres) Recent(ctx context.Context, limit int) ([]Inquiry, error) {
	var out []Inquiry
	err := p.db.SelectContext(ctx, &out, `
		SELECT id, service_type, name, email, organization, score, form_data, created_at
		FROM inquiries ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return out, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
