package formatter

import (
	"strconv"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// GroupDigits renders an amount with comma thousand separators, matching
// the price list's display format ("3,888").
func GroupDigits(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if amount < 0 {
		neg = true
		s = s[1:]
	}
	if len(s) > 3 {
		var out []byte
		lead := len(s) % 3
		if lead > 0 {
			out = append(out, s[:lead]...)
		}
		for i := lead; i < len(s); i += 3 {
			if len(out) > 0 {
				out = append(out, ',')
			}
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}

// Ringgit renders an amount as a ringgit price string.
func Ringgit(amount int) string {
	return "RM " + GroupDigits(amount)
}

// PriceTag renders a display price with its billing label, e.g.
// "RM 1,288 / Per Platform/Mo".
func PriceTag(price, priceType string) string {
	tag := StyleRobin.Render("RM "+price) + " " + Dim("/ "+priceType)
	return tag
}

// TotalsSummary renders the two-bucket totals line shown in headers and
// summaries, keeping upfront and monthly visually separate.
func TotalsSummary(t domain.Totals) string {
	return StyleRobin.Render(Ringgit(t.Upfront)) + Dim(" upfront") +
		Dim("  ·  ") +
		StyleAzure.Render(Ringgit(t.Monthly)) + Dim(" /month")
}
