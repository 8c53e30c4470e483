package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

type SQLiteQuoteRequestRepo struct {
	db *sql.DB
}

func NewSQLiteQuoteRequestRepo(db *sql.DB) *SQLiteQuoteRequestRepo {
	return &SQLiteQuoteRequestRepo{db: db}
}

func (r *SQLiteQuoteRequestRepo) Create(ctx context.Context, req *domain.QuoteRequest) error {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return fmt.Errorf("serializing request items: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quote_requests (id, name, phone, email, message, items, upfront, monthly, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.Contact.Name, req.Contact.Phone, req.Contact.Email, req.Contact.Message,
		string(items), req.Totals.Upfront, req.Totals.Monthly,
		req.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("creating quote request: %w", err)
	}
	return nil
}

func (r *SQLiteQuoteRequestRepo) GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, email, message, items, upfront, monthly, created_at
		FROM quote_requests WHERE id = ?`, id)

	req, err := scanQuoteRequest(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting quote request %s: %w", id, err)
	}
	return req, nil
}

func (r *SQLiteQuoteRequestRepo) ListRecent(ctx context.Context, limit int) ([]*domain.QuoteRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, phone, email, message, items, upfront, monthly, created_at
		FROM quote_requests ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing quote requests: %w", err)
	}
	defer rows.Close()

	var out []*domain.QuoteRequest
	for rows.Next() {
		req, err := scanQuoteRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quote request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuoteRequest(row rowScanner) (*domain.QuoteRequest, error) {
	var req domain.QuoteRequest
	var items, createdAt string
	if err := row.Scan(&req.ID, &req.Contact.Name, &req.Contact.Phone, &req.Contact.Email,
		&req.Contact.Message, &items, &req.Totals.Upfront, &req.Totals.Monthly, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &req.Items); err != nil {
		return nil, fmt.Errorf("parsing request items: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		req.CreatedAt = t
	}
	return &req, nil
}
