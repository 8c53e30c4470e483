package quote

import "github.com/jxt-gindran/jxingwebsite/internal/domain"

// ComputeTotals folds the selection into upfront and monthly buckets.
// Every item lands in exactly one bucket; unparseable prices count as
// zero but the item still contributes to the line count.
func ComputeTotals(items []domain.QuoteLineItem) domain.Totals {
	var totals domain.Totals
	for _, item := range items {
		totals.Add(item)
	}
	return totals
}
