package repository

import (
	"context"
	"errors"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// QuoteStateKey is the fixed kv_state slot holding the current quote
// selection. The key is part of the persisted format; keep it stable.
const QuoteStateKey = "jxing_quote_items"

// QuoteStateRepo persists the full quote selection as one blob.
// Load never fails: a missing or unreadable slot yields an empty
// selection so the builder always starts usable.
type QuoteStateRepo interface {
	Load(ctx context.Context) []domain.QuoteLineItem
	Save(ctx context.Context, items []domain.QuoteLineItem) error
}

// QuoteRequestRepo is the local log of submitted quote requests.
type QuoteRequestRepo interface {
	Create(ctx context.Context, r *domain.QuoteRequest) error
	GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.QuoteRequest, error)
}
