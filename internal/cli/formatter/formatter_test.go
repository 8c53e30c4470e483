package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "0"},
		{988, "988"},
		{1500, "1,500"},
		{43888, "43,888"},
		{1234567, "1,234,567"},
		{-1500, "-1,500"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GroupDigits(tc.amount), "amount=%d", tc.amount)
	}
}

func TestRinggit(t *testing.T) {
	assert.Equal(t, "RM 3,888", Ringgit(3888))
}

func TestTotalsSummary_ContainsBothBuckets(t *testing.T) {
	out := TotalsSummary(domain.Totals{Upfront: 988, Monthly: 1500})
	assert.Contains(t, out, "988")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "upfront")
	assert.Contains(t, out, "/month")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"SERVICE", "PRICE"},
		[][]string{
			{"Corporate Website", "988"},
			{"SEO Plus", "1,308"},
		},
	)
	assert.Contains(t, out, "SERVICE")
	assert.Contains(t, out, "Corporate Website")
	assert.Contains(t, out, "1,308")
	assert.Contains(t, out, "─")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", PadRight("abc", 5))
	assert.Equal(t, "abcd…", PadRight("abcdefgh", 5))
}
