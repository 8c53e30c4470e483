package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

type SQLiteQuoteStateRepo struct {
	db *sql.DB
}

func NewSQLiteQuoteStateRepo(db *sql.DB) *SQLiteQuoteStateRepo {
	return &SQLiteQuoteStateRepo{db: db}
}

// Load reads the persisted selection. Any failure — missing row, read
// error, corrupt JSON — yields an empty selection: stale state must
// never block the builder from starting.
func (r *SQLiteQuoteStateRepo) Load(ctx context.Context) []domain.QuoteLineItem {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv_state WHERE key = ?`, QuoteStateKey).Scan(&raw)
	if err != nil {
		return []domain.QuoteLineItem{}
	}

	var items []domain.QuoteLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []domain.QuoteLineItem{}
	}
	if items == nil {
		items = []domain.QuoteLineItem{}
	}
	return items
}

// Save overwrites the whole selection blob.
func (r *SQLiteQuoteStateRepo) Save(ctx context.Context, items []domain.QuoteLineItem) error {
	if items == nil {
		// nil would serialize as JSON null instead of an empty array
		items = []domain.QuoteLineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializing quote state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO kv_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		QuoteStateKey, string(raw), nowUTC())
	if err != nil {
		return fmt.Errorf("saving quote state: %w", err)
	}
	return nil
}
