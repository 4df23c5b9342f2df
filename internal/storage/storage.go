// Package storage persists inquiry submissions. The table is append-only:
// no update or delete path is exposed. Two backends sit behind one
// interface: Postgres for the hosted database, SQLite for local use.
package storage

import (
	"context"
	"encoding/json"
	"time"
)

// Inquiry is one stored inquiry submission.
type Inquiry struct {
	ID           string          `db:"id" json:"id"`
	ServiceType  string          `db:"service_type" json:"serviceType"`
	Name         string          `db:"name" json:"name"`
	Email        string          `db:"email" json:"email"`
	Organization string          `db:"organization" json:"organization,omitempty"`
	Score        int             `db:"score" json:"score"`
	FormData     json.RawMessage `db:"form_data" json:"formData"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}

// InquiryStore appends and lists inquiry records.
type InquiryStore interface {
	Insert(ctx context.Context, inq *Inquiry) error
	Recent(ctx context.Context, limit int) ([]Inquiry, error)
	Close() error
}
