package domain

import "fmt"

// Candidate is a venue eligible for selection or scheduling.
type Candidate struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Rating       float64           `json:"rating"` // 0-5
	ReviewCount  int               `json:"review_count"`
	Price        PriceBand         `json:"price"`
	Categories   []string          `json:"categories"`
	Coord        Coordinates       `json:"coord"`
	Hours        OperatingHours    `json:"hours,omitempty"`
	Transactions []TransactionType `json:"transactions,omitempty"`
}

// Validate enforces the candidate invariants: rating range, known price
// band, and coordinates on the globe.
func (c *Candidate) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("candidate has no id")
	}
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("candidate %s: rating %.2f out of range [0, 5]", c.ID, c.Rating)
	}
	if c.Price != "" && !ValidPriceBands[string(c.Price)] {
		return fmt.Errorf("candidate %s: unknown price band %q", c.ID, c.Price)
	}
	if err := c.Coord.Validate(); err != nil {
		return fmt.Errorf("candidate %s: %w", c.ID, err)
	}
	return nil
}

// HasCategory reports whether the candidate carries the given category tag.
func (c *Candidate) HasCategory(tag string) bool {
	for _, cat := range c.Categories {
		if cat == tag {
			return true
		}
	}
	return false
}

// Supports reports whether the candidate supports a transaction type.
func (c *Candidate) Supports(t TransactionType) bool {
	for _, tt := range c.Transactions {
		if tt == t {
			return true
		}
	}
	return false
}
