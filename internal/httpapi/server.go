// Package httpapi exposes the decision and trip services over a JSON REST
// surface. Handlers stay thin: decode, call the service, map typed errors
// onto status codes.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/alexanderramin/wayfare/internal/service"
)

type Server struct {
	decisions service.DecisionService
	trips     service.TripService
	bookings  service.BookingService
	logger    *slog.Logger
}

func NewServer(
	decisions service.DecisionService,
	trips service.TripService,
	bookings service.BookingService,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{decisions: decisions, trips: trips, bookings: bookings, logger: logger}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/decide", s.handleDecide).Methods(http.MethodPost)

	r.HandleFunc("/api/itineraries", s.handlePlan).Methods(http.MethodPost)
	r.HandleFunc("/api/itineraries", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/api/itineraries/{id}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/api/itineraries/{id}", s.handleDelete).Methods(http.MethodDelete)
	r.HandleFunc("/api/itineraries/{id}/modify", s.handleModify).Methods(http.MethodPost)
	r.HandleFunc("/api/itineraries/{id}/optimize", s.handleOptimize).Methods(http.MethodGet)
	r.HandleFunc("/api/itineraries/{id}/bookings", s.handleBookItem).Methods(http.MethodPost)

	return r
}

// NewHTTPServer wraps the router in a server with sane timeouts. Shutdown is
// the caller's job.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
