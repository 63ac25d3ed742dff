package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCandidate() Candidate {
	return Candidate{
		ID:          "c-1",
		Name:        "Trattoria Roma",
		Rating:      4.5,
		ReviewCount: 324,
		Price:       PriceModerate,
		Categories:  []string{"italian", "pasta"},
		Coord:       Coordinates{Lat: 40.73, Lon: -73.99},
	}
}

func TestCandidateValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Candidate)
		wantErr bool
	}{
		{"valid", func(c *Candidate) {}, false},
		{"empty price band allowed", func(c *Candidate) { c.Price = "" }, false},
		{"missing id", func(c *Candidate) { c.ID = "" }, true},
		{"rating too high", func(c *Candidate) { c.Rating = 5.1 }, true},
		{"rating negative", func(c *Candidate) { c.Rating = -0.1 }, true},
		{"unknown price band", func(c *Candidate) { c.Price = "$$$$$" }, true},
		{"latitude out of range", func(c *Candidate) { c.Coord.Lat = 91 }, true},
		{"longitude out of range", func(c *Candidate) { c.Coord.Lon = -181 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCandidateHasCategory(t *testing.T) {
	c := validCandidate()
	assert.True(t, c.HasCategory("italian"))
	assert.False(t, c.HasCategory("greek"))
}

func TestPriceBandOrdinal(t *testing.T) {
	assert.Equal(t, 1, PriceBudget.Ordinal())
	assert.Equal(t, 4, PriceLuxury.Ordinal())
	assert.Equal(t, 0, PriceFree.Ordinal())
	assert.Equal(t, 0, PriceUnknown.Ordinal())
	assert.Equal(t, 0, PriceBand("").Ordinal())
}

func TestDistanceMiles(t *testing.T) {
	// Empire State Building to Times Square, roughly 0.7 miles.
	a := Coordinates{Lat: 40.7484, Lon: -73.9857}
	b := Coordinates{Lat: 40.7580, Lon: -73.9855}
	d := DistanceMiles(a, b)
	assert.InDelta(t, 0.66, d, 0.1)

	assert.Zero(t, DistanceMiles(a, a))
}
