package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// LineItem options
type LineItemOption func(*domain.QuoteLineItem)

func WithPriceType(pt string) LineItemOption {
	return func(i *domain.QuoteLineItem) {
		i.PriceType = pt
	}
}

func WithNotes(n string) LineItemOption {
	return func(i *domain.QuoteLineItem) {
		i.Notes = n
	}
}

// NewTestLineItem builds a line item with a valid composite id.
func NewTestLineItem(categoryID, subID, price string, opts ...LineItemOption) domain.QuoteLineItem {
	item := domain.QuoteLineItem{
		ID:         domain.LineItemID(categoryID, subID),
		CategoryID: categoryID,
		SubID:      subID,
		Title:      subID,
		Price:      price,
		PriceType:  "One-time",
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// Request options
type RequestOption func(*domain.QuoteRequest)

func WithRequestItems(items ...domain.QuoteLineItem) RequestOption {
	return func(r *domain.QuoteRequest) {
		r.Items = items
		r.Totals = domain.Totals{}
		for _, it := range items {
			r.Totals.Add(it)
		}
	}
}

func WithCreatedAt(t time.Time) RequestOption {
	return func(r *domain.QuoteRequest) {
		r.CreatedAt = t
	}
}

// NewTestRequest builds a quote request with valid contact details.
func NewTestRequest(name string, opts ...RequestOption) *domain.QuoteRequest {
	r := &domain.QuoteRequest{
		ID: uuid.New().String(),
		Contact: domain.ContactDetails{
			Name:  name,
			Phone: "+60123456789",
			Email: "test@example.com",
		},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
