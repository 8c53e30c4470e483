package domain

// SubService is a single purchasable offering inside a service category,
// e.g. "Corporate Website" under "Website Solutions".
type SubService struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Tagline      string   `json:"tagline,omitempty"`
	Description  string   `json:"description,omitempty"`
	Price        string   `json:"price"`
	PriceType    string   `json:"priceType"`
	Benefits     []string `json:"benefits,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
	Terms        string   `json:"terms,omitempty"`
}

// ServiceCategory groups related sub-services on the price list.
type ServiceCategory struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	SubServices []SubService `json:"subServices"`
}

// FindSubService returns the sub-service with the given id, or false when
// the category does not carry it.
func (c *ServiceCategory) FindSubService(subID string) (SubService, bool) {
	for _, s := range c.SubServices {
		if s.ID == subID {
			return s, true
		}
	}
	return SubService{}, false
}
