package testutil

import (
	"context"
	"errors"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// ErrSaveFailed is returned by FailingQuoteStateRepo.Save.
var ErrSaveFailed = errors.New("simulated save failure")

// FailingQuoteStateRepo loads an empty selection and fails every save.
// Used to verify that persistence errors surface to callers.
type FailingQuoteStateRepo struct{}

func (FailingQuoteStateRepo) Load(ctx context.Context) []domain.QuoteLineItem {
	return []domain.QuoteLineItem{}
}

func (FailingQuoteStateRepo) Save(ctx context.Context, items []domain.QuoteLineItem) error {
	return ErrSaveFailed
}
