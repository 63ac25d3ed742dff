package collab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// BookingRequest asks the booking collaborator to hold a slot at a venue.
type BookingRequest struct {
	VenueID     string                 `json:"venue_id"`
	Date        string                 `json:"date"` // YYYY-MM-DD
	Window      domain.TimeWindow      `json:"window"`
	PartySize   int                    `json:"party_size"`
	Transaction domain.TransactionType `json:"transaction"`
	Notes       string                 `json:"notes,omitempty"`
}

// Confirmation is a successful booking receipt.
type Confirmation struct {
	ConfirmationID string    `json:"confirmation_id"`
	VenueID        string    `json:"venue_id"`
	Status         string    `json:"status"`
	BookedAt       time.Time `json:"booked_at"`
}

type BookingClient interface {
	Book(ctx context.Context, req BookingRequest) (*Confirmation, error)
	Available(ctx context.Context) bool
}

type bookingClient struct {
	core httpCore
}

func NewBookingClient(cfg Config, observer Observer) BookingClient {
	return &bookingClient{core: newHTTPCore(cfg, "booking", cfg.BookingEndpoint, observer)}
}

// declinePayload is the body the booking service sends with a 4xx decline.
type declinePayload struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

func (c *bookingClient) Book(ctx context.Context, req BookingRequest) (*Confirmation, error) {
	var conf Confirmation
	err := c.core.postJSON(ctx, "book", "/v1/bookings", req, &conf)
	if err == nil {
		return &conf, nil
	}

	// Declines come back as 409/422 with a structured payload; surface
	// them as a typed error so callers can branch on retryability.
	var terminal *statusError
	if errors.As(err, &terminal) &&
		(terminal.Code == http.StatusConflict || terminal.Code == http.StatusUnprocessableEntity) {
		var decline declinePayload
		if jsonErr := json.Unmarshal(terminal.Body, &decline); jsonErr == nil && decline.Code != "" {
			return nil, &BookingDeclinedError{
				Code:      decline.Code,
				Message:   decline.Message,
				Retryable: decline.Retryable,
			}
		}
	}
	return nil, fmt.Errorf("booking: %w", err)
}

func (c *bookingClient) Available(ctx context.Context) bool {
	return c.core.available(ctx, "/v1/health")
}
