package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexanderramin/wayfare/internal/collab"
	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/planner"
	"github.com/alexanderramin/wayfare/internal/repository"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// writeError translates the typed errors the services raise onto HTTP
// statuses. Anything unrecognized is a 500 with a generic body so internals
// never leak to clients.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		notFound   *repository.NotFoundError
		badRequest *planner.InvalidRequestError
		badMod     *planner.InvalidModificationError
		noCand     *decision.NoCandidatesError
		noSuitable *decision.NoSuitableOptionsError
		declined   *collab.BookingDeclinedError
	)
	switch {
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: err.Error()})
	case errors.As(err, &badRequest):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Message: err.Error()})
	case errors.As(err, &badMod):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_modification", Message: err.Error()})
	case errors.As(err, &noCand):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "no_candidates", Message: err.Error()})
	case errors.As(err, &noSuitable):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   "no_suitable_options",
			Message: err.Error(),
			Details: map[string]any{
				"best":      noSuitable.Best,
				"breakdown": noSuitable.Breakdown,
				"floor":     noSuitable.Floor,
			},
		})
	case errors.As(err, &declined):
		writeJSON(w, http.StatusConflict, errorBody{
			Error:   "booking_declined",
			Message: err.Error(),
			Details: map[string]any{"code": declined.Code, "retryable": declined.Retryable},
		})
	case errors.Is(err, collab.ErrUnavailable):
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "collaborator_unavailable", Message: err.Error()})
	default:
		s.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal", Message: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
