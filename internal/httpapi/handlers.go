package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/alexanderramin/wayfare/internal/planner"
	"github.com/alexanderramin/wayfare/internal/service"
)

const dateLayout = "2006-01-02"

type decideRequest struct {
	Query      string                      `json:"query,omitempty"`
	Profile    domain.PreferenceProfile    `json:"profile,omitempty"`
	Location   *domain.Coordinates         `json:"location,omitempty"`
	Context    *domain.ConversationContext `json:"context,omitempty"`
	Candidates []domain.Candidate          `json:"candidates,omitempty"`
}

type decideResponse struct {
	Decision *decision.Decision       `json:"decision"`
	Profile  domain.PreferenceProfile `json:"profile"`
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_json", Message: err.Error()})
		return
	}

	resp, err := s.decisions.Decide(r.Context(), service.DecideRequest{
		Query:      req.Query,
		Profile:    req.Profile,
		Location:   req.Location,
		Context:    req.Context,
		Candidates: req.Candidates,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, decideResponse{Decision: resp.Decision, Profile: resp.Profile})
}

// planRequest takes calendar dates as plain strings; everything else maps
// straight onto the domain request.
type planRequest struct {
	Destination string                   `json:"destination"`
	StartDate   string                   `json:"start_date"`
	EndDate     string                   `json:"end_date"`
	GroupSize   int                      `json:"group_size"`
	Budget      float64                  `json:"budget"`
	Currency    string                   `json:"currency,omitempty"`
	Coord       *domain.Coordinates      `json:"coord,omitempty"`
	Preferences domain.PreferenceProfile `json:"preferences,omitempty"`
}

func (req planRequest) toDomain() (domain.TripRequest, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("end_date: %w", err)
	}
	return domain.TripRequest{
		Destination: req.Destination,
		Coord:       req.Coord,
		StartDate:   start,
		EndDate:     end,
		GroupSize:   req.GroupSize,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Preferences: req.Preferences,
	}, nil
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_json", Message: err.Error()})
		return
	}
	trip, err := req.toDomain()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Message: err.Error()})
		return
	}

	it, err := s.trips.Plan(r.Context(), trip)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.trips.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"itineraries": list, "total": len(list)})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	it, err := s.trips.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleModify(w http.ResponseWriter, r *http.Request) {
	var mod planner.Modification
	if err := json.NewDecoder(r.Body).Decode(&mod); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_json", Message: err.Error()})
		return
	}

	it, err := s.trips.Modify(r.Context(), mux.Vars(r)["id"], mod)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	result, err := s.trips.Optimize(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type bookItemRequest struct {
	DayIndex  int    `json:"day_index"`
	ItemIndex int    `json:"item_index"`
	Notes     string `json:"notes,omitempty"`
}

func (s *Server) handleBookItem(w http.ResponseWriter, r *http.Request) {
	var req bookItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_json", Message: err.Error()})
		return
	}

	conf, err := s.bookings.BookItem(r.Context(), service.BookItemRequest{
		ItineraryID: mux.Vars(r)["id"],
		DayIndex:    req.DayIndex,
		ItemIndex:   req.ItemIndex,
		Notes:       req.Notes,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conf)
}
