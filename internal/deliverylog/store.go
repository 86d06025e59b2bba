// Package deliverylog keeps an operational record of outbound email
// attempts. It stores recipients and outcomes only, never quote content.
package deliverylog

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Kind tells the internal notification from the customer copy.
type Kind string

const (
	KindInternal Kind = "internal"
	KindCustomer Kind = "customer"
)

// Status is the outcome of a send attempt.
type Status string

const (
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Delivery is one email attempt.
type Delivery struct {
	ID           int64     `json:"id"`
	SubmissionID string    `json:"submissionId"`
	Kind         Kind      `json:"kind"`
	Recipient    string    `json:"recipient"`
	Subject      string    `json:"subject"`
	Status       Status    `json:"status"`
	ProviderID   string    `json:"providerId,omitempty"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store persists deliveries in the email_deliveries table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps a migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Record inserts d, stamping CreatedAt when it is zero, and returns its id.
func (s *Store) Record(ctx context.Context, d Delivery) (int64, error) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = s.now()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO email_deliveries (
			submission_id, kind, recipient, subject, status, provider_id, error, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, d.SubmissionID, string(d.Kind), d.Recipient, d.Subject, string(d.Status), d.ProviderID, d.Error,
		d.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("insert email delivery: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read email delivery id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit deliveries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Delivery, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.query(ctx, `
		SELECT id, submission_id, kind, recipient, subject, status, provider_id, error, created_at
		FROM email_deliveries
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
}

// ForSubmission returns the deliveries of one submission in send order.
func (s *Store) ForSubmission(ctx context.Context, submissionID string) ([]Delivery, error) {
	return s.query(ctx, `
		SELECT id, submission_id, kind, recipient, subject, status, provider_id, error, created_at
		FROM email_deliveries
		WHERE submission_id = ?
		ORDER BY id
	`, submissionID)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Delivery, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query email deliveries: %w", err)
	}
	defer rows.Close()

	out := make([]Delivery, 0)
	for rows.Next() {
		var d Delivery
		var kind, status, createdAt string
		if err := rows.Scan(&d.ID, &d.SubmissionID, &kind, &d.Recipient, &d.Subject, &status, &d.ProviderID, &d.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scan email delivery: %w", err)
		}
		d.Kind, d.Status = Kind(kind), Status(status)
		if d.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse delivery time %q: %w", createdAt, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate email deliveries: %w", err)
	}
	return out, nil
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
