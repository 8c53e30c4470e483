package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContactDetails is what the requester fills in before sending a quote.
type ContactDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// Validate checks the required contact fields. Message is optional.
func (c *ContactDetails) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("email %q is not a valid address", c.Email)
	}
	return nil
}

// QuoteRequest is a submitted quote: the contact details plus the plan
// snapshot taken when the request flow started.
type QuoteRequest struct {
	ID        string          `json:"id"`
	Contact   ContactDetails  `json:"contact"`
	Items     []QuoteLineItem `json:"items"`
	Totals    Totals          `json:"totals"`
	CreatedAt time.Time       `json:"createdAt"`
}
