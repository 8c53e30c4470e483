package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

func TestDefault_IsValid(t *testing.T) {
	cats := Default()
	require.Len(t, cats, 6)
	assert.Empty(t, Validate(cats))
}

func TestDefault_KnownEntries(t *testing.T) {
	cats := Default()

	web, ok := FindCategory(cats, "website-solutions")
	require.True(t, ok)
	corp, ok := web.FindSubService("corporate-website")
	require.True(t, ok)
	assert.Equal(t, "988", corp.Price)
	assert.Equal(t, "One-time", corp.PriceType)

	auto, ok := FindCategory(cats, "automation-workflow")
	require.True(t, ok)
	retainer, ok := auto.FindSubService("automation-retainer")
	require.True(t, ok)
	assert.Equal(t, "1,500", retainer.Price)
	assert.Equal(t, "Monthly", retainer.PriceType)
}

func TestFindCategory_Unknown(t *testing.T) {
	_, ok := FindCategory(Default(), "time-travel")
	assert.False(t, ok)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cats := []domain.ServiceCategory{
		{
			ID: "dup",
			SubServices: []domain.SubService{
				{ID: "a", Title: "A", Price: "100", PriceType: "One-time"},
				{ID: "a", Title: "A again", Price: "200", PriceType: "One-time"},
			},
		},
		{ID: "dup", Title: "Dup", SubServices: []domain.SubService{{Title: "No ID"}}},
	}
	errs := Validate(cats)
	require.NotEmpty(t, errs)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := ""
	for _, m := range msgs {
		joined += m + "\n"
	}
	assert.Contains(t, joined, "categories[0].title is required")
	assert.Contains(t, joined, `duplicate id "a"`)
	assert.Contains(t, joined, `duplicate id "dup"`)
	assert.Contains(t, joined, "categories[1].subServices[0].id is required")
	assert.Contains(t, joined, "categories[1].subServices[0].price is required")
}

func TestValidate_Empty(t *testing.T) {
	errs := Validate(nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no categories")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
		"categories": [
			{
				"id": "consulting",
				"title": "Consulting",
				"subServices": [
					{"id": "audit", "title": "Audit", "price": "1,200", "priceType": "One-time"}
				]
			}
		]
	}`)
	cats, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "consulting", cats[0].ID)
	assert.Equal(t, "1,200", cats[0].SubServices[0].Price)
}

func TestLoad_BadJSON(t *testing.T) {
	path := writeFile(t, "bad.json", `{not json`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog file")
}

func TestLoad_InvalidCatalog(t *testing.T) {
	path := writeFile(t, "invalid.json", `{"categories": [{"id": "", "title": ""}]}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLocalized_OverlaysAndFallsBack(t *testing.T) {
	cats := []domain.ServiceCategory{
		{
			ID:          "growth-seo",
			Title:       "Growth-Driven SEO",
			Description: "English description",
			Tags:        []string{"SEO Setup"},
			SubServices: []domain.SubService{
				{
					ID: "seo-plus", Title: "SEO Plus (Monthly)", Tagline: "Consistent traffic growth.",
					Price: "1,308", PriceType: "Monthly",
					Benefits: []string{"Rising Rankings"},
				},
			},
		},
	}
	bundle := Bundle{
		"zh": {
			"data.services.growth-seo.title":                          "增长型SEO",
			"data.services.growth-seo.subServices.seo-plus.title":     "SEO进阶（月付）",
			"data.services.growth-seo.subServices.seo-plus.tagline":   "持续流量增长。",
			"data.services.growth-seo.subServices.seo-plus.benefits.0": "排名提升",
		},
	}

	out := Localized(cats, bundle, "zh")
	require.Len(t, out, 1)
	assert.Equal(t, "增长型SEO", out[0].Title)
	assert.Equal(t, "English description", out[0].Description, "untranslated field falls back")
	sub := out[0].SubServices[0]
	assert.Equal(t, "SEO进阶（月付）", sub.Title)
	assert.Equal(t, "持续流量增长。", sub.Tagline)
	assert.Equal(t, "排名提升", sub.Benefits[0])
	assert.Equal(t, "1,308", sub.Price, "prices are never translated")
	assert.Equal(t, "Monthly", sub.PriceType, "missing priceType key falls back")
}

func TestLocalized_UnknownLanguage(t *testing.T) {
	cats := Default()
	out := Localized(cats, Bundle{}, "fr")
	require.Len(t, out, len(cats))
	assert.Equal(t, cats[0].Title, out[0].Title)
}

func TestLocalized_DoesNotMutateInput(t *testing.T) {
	cats := []domain.ServiceCategory{
		{ID: "c", Title: "Original", SubServices: []domain.SubService{{ID: "s", Title: "Sub"}}},
	}
	bundle := Bundle{"zh": {
		"data.services.c.title":               "翻译",
		"data.services.c.subServices.s.title": "子项",
	}}
	_ = Localized(cats, bundle, "zh")
	assert.Equal(t, "Original", cats[0].Title)
	assert.Equal(t, "Sub", cats[0].SubServices[0].Title)
}

func TestLoadBundle(t *testing.T) {
	path := writeFile(t, "bundle.json", `{"zh": {"data.services.c.title": "翻译"}}`)
	b, err := LoadBundle(path)
	require.NoError(t, err)
	assert.Equal(t, "翻译", b["zh"]["data.services.c.title"])
}

func TestLoadBundle_BadJSON(t *testing.T) {
	path := writeFile(t, "bundle.json", `[1,2`)
	_, err := LoadBundle(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing translation bundle")
}
