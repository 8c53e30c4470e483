package domain

import "strings"

// QuoteLineItem is one selected offering in the build-your-plan cart.
// The JSON field names are part of the persisted state format and must
// stay stable across releases.
type QuoteLineItem struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	SubID      string `json:"subId"`
	Title      string `json:"title"`
	Price      string `json:"price"`
	PriceType  string `json:"priceType"`
	Notes      string `json:"notes,omitempty"`
}

// LineItemID builds the composite identity of a selection. Category and
// sub-service ids contain hyphens themselves, so the separator must be
// something that cannot appear in either part.
func LineItemID(categoryID, subID string) string {
	return categoryID + "::" + subID
}

// NewLineItem builds the line item for selecting sub within category.
func NewLineItem(category *ServiceCategory, sub SubService) QuoteLineItem {
	return QuoteLineItem{
		ID:         LineItemID(category.ID, sub.ID),
		CategoryID: category.ID,
		SubID:      sub.ID,
		Title:      sub.Title,
		Price:      sub.Price,
		PriceType:  sub.PriceType,
	}
}

// recurringKeywords mark a price type as a recurring charge. "mo" also
// matches words like "promo"; that substring behavior is the established
// contract for the price list and is kept as-is.
var recurringKeywords = []string{"month", "mo", "subscription", "retainer"}

// RecurringPriceType reports whether a price type string describes a
// recurring (monthly-bucket) charge rather than an upfront one.
func RecurringPriceType(priceType string) bool {
	lower := strings.ToLower(priceType)
	for _, kw := range recurringKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ParseAmount converts a display price like "3,888" to its integer value.
// Comma separators are stripped; parsing stops at the first non-digit, and
// anything unparseable counts as zero so a malformed price never blocks
// the rest of the quote.
func ParseAmount(price string) int {
	cleaned := strings.ReplaceAll(price, ",", "")
	n := 0
	ok := false
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		ok = true
	}
	if !ok {
		return 0
	}
	return n
}

// Totals is the two-bucket summary of a quote: one-off charges and
// recurring monthly charges, kept separate because they are not addable.
type Totals struct {
	Upfront int
	Monthly int
}

// Add folds one line item into the totals.
func (t *Totals) Add(item QuoteLineItem) {
	amount := ParseAmount(item.Price)
	if RecurringPriceType(item.PriceType) {
		t.Monthly += amount
	} else {
		t.Upfront += amount
	}
}
