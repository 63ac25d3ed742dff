package collab

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// SearchRequest narrows a venue search. Zero-valued fields are omitted from
// the query; the service applies its own defaults.
type SearchRequest struct {
	Query      string              `json:"query,omitempty"`
	Location   *domain.Coordinates `json:"location,omitempty"`
	RadiusMi   float64             `json:"radius_mi,omitempty"`
	Categories []string            `json:"categories,omitempty"`
	Price      domain.PriceBand    `json:"price,omitempty"`
	Limit      int                 `json:"limit,omitempty"`
}

// VenueClient talks to the venue collaborator: candidate discovery and
// destination geocoding.
type VenueClient interface {
	Search(ctx context.Context, req SearchRequest) ([]domain.Candidate, error)
	Geocode(ctx context.Context, query string) (*domain.Place, error)
	Available(ctx context.Context) bool
}

type venueClient struct {
	core httpCore
}

func NewVenueClient(cfg Config, observer Observer) VenueClient {
	return &venueClient{core: newHTTPCore(cfg, "venues", cfg.VenueEndpoint, observer)}
}

type searchResponse struct {
	Venues []domain.Candidate `json:"venues"`
}

func (c *venueClient) Search(ctx context.Context, req SearchRequest) ([]domain.Candidate, error) {
	var resp searchResponse
	if err := c.core.postJSON(ctx, "search", "/v1/venues/search", req, &resp); err != nil {
		return nil, fmt.Errorf("venue search: %w", err)
	}

	// Malformed entries are dropped rather than failing the whole search.
	out := resp.Venues[:0]
	for _, v := range resp.Venues {
		if v.Validate() == nil {
			out = append(out, v)
		}
	}
	return out, nil
}

type geocodeRequest struct {
	Query string `json:"query"`
}

func (c *venueClient) Geocode(ctx context.Context, query string) (*domain.Place, error) {
	var place domain.Place
	if err := c.core.postJSON(ctx, "geocode", "/v1/geocode", geocodeRequest{Query: query}, &place); err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", query, err)
	}
	if err := place.Coord.Validate(); err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", query, err)
	}
	return &place, nil
}

func (c *venueClient) Available(ctx context.Context) bool {
	return c.core.available(ctx, "/v1/health")
}
