package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// Bundle holds translation overlays keyed by language, each a flat map of
// dotted key paths (e.g. "data.services.growth-seo.title") to translated
// text. Missing keys fall back to the built-in English text per field.
type Bundle map[string]map[string]string

// LoadBundle reads a translation bundle JSON file.
func LoadBundle(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing translation bundle: %w", err)
	}
	return b, nil
}

// Localized returns a deep copy of the catalog with every translatable
// field overlaid from the bundle for the given language. Prices are never
// translated. An unknown language returns an untranslated copy.
func Localized(categories []domain.ServiceCategory, bundle Bundle, lang string) []domain.ServiceCategory {
	table := bundle[lang]
	tr := func(key, fallback string) string {
		if v, ok := table[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	out := make([]domain.ServiceCategory, len(categories))
	for i, cat := range categories {
		base := "data.services." + cat.ID
		copied := cat
		copied.Title = tr(base+".title", cat.Title)
		copied.Description = tr(base+".description", cat.Description)
		copied.Tags = make([]string, len(cat.Tags))
		for j, tag := range cat.Tags {
			copied.Tags[j] = tr(fmt.Sprintf("%s.tags.%d", base, j), tag)
		}
		copied.SubServices = make([]domain.SubService, len(cat.SubServices))
		for j, sub := range cat.SubServices {
			subBase := fmt.Sprintf("%s.subServices.%s", base, sub.ID)
			s := sub
			s.Title = tr(subBase+".title", sub.Title)
			s.Tagline = tr(subBase+".tagline", sub.Tagline)
			s.Description = tr(subBase+".description", sub.Description)
			s.PriceType = tr(subBase+".priceType", sub.PriceType)
			s.Terms = tr(subBase+".terms", sub.Terms)
			s.Benefits = make([]string, len(sub.Benefits))
			for k, b := range sub.Benefits {
				s.Benefits[k] = tr(fmt.Sprintf("%s.benefits.%d", subBase, k), b)
			}
			s.Deliverables = make([]string, len(sub.Deliverables))
			for k, d := range sub.Deliverables {
				s.Deliverables[k] = tr(fmt.Sprintf("%s.deliverables.%d", subBase, k), d)
			}
			copied.SubServices[j] = s
		}
		out[i] = copied
	}
	return out
}
