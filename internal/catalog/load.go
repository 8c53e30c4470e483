package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// catalogFile is the top-level JSON structure for an external catalog.
type catalogFile struct {
	Categories []domain.ServiceCategory `json:"categories"`
}

// Load reads and parses a catalog JSON file, then validates it. All
// validation errors are reported together so the file can be fixed in
// one pass.
func Load(path string) ([]domain.ServiceCategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if errs := Validate(file.Categories); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, errors.Join(errs...))
	}
	return file.Categories, nil
}

// Validate checks the catalog for structural errors. Returns a slice of
// all validation errors found.
func Validate(categories []domain.ServiceCategory) []error {
	var errs []error

	if len(categories) == 0 {
		errs = append(errs, fmt.Errorf("catalog has no categories"))
	}

	catIDs := make(map[string]bool)
	for i, cat := range categories {
		prefix := fmt.Sprintf("categories[%d]", i)

		if cat.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if catIDs[cat.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, cat.ID))
		} else {
			catIDs[cat.ID] = true
		}

		if cat.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if len(cat.SubServices) == 0 {
			errs = append(errs, fmt.Errorf("%s has no sub-services", prefix))
		}

		subIDs := make(map[string]bool)
		for j, sub := range cat.SubServices {
			subPrefix := fmt.Sprintf("%s.subServices[%d]", prefix, j)

			if sub.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", subPrefix))
			} else if subIDs[sub.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", subPrefix, sub.ID))
			} else {
				subIDs[sub.ID] = true
			}

			if sub.Title == "" {
				errs = append(errs, fmt.Errorf("%s.title is required", subPrefix))
			}
			if sub.Price == "" {
				errs = append(errs, fmt.Errorf("%s.price is required", subPrefix))
			}
			if sub.PriceType == "" {
				errs = append(errs, fmt.Errorf("%s.priceType is required", subPrefix))
			}
		}
	}

	return errs
}
