package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gamebay/retail-ops/internal/reservation/domain"
	"github.com/gamebay/retail-ops/internal/reservation/usecase/command"
	"github.com/gamebay/retail-ops/internal/reservation/usecase/query"
	"github.com/gamebay/retail-ops/pkg/auth"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// ReservationHandler handles HTTP requests for venue bookings using CQRS pattern
type ReservationHandler struct {
	createHandler *command.CreateReservationHandler
	reviewHandler *command.ReviewReservationHandler
	listHandler   *query.ListReservationsHandler
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(
	createHandler *command.CreateReservationHandler,
	reviewHandler *command.ReviewReservationHandler,
	listHandler *query.ListReservationsHandler,
) *ReservationHandler {
	return &ReservationHandler{
		createHandler: createHandler,
		reviewHandler: reviewHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *ReservationHandler) RegisterRoutes(router *mux.Router) {
	// Booking submission is public, review is staff-only
	router.HandleFunc("/api/reservations", h.Create).Methods("POST")
	router.HandleFunc("/api/reservations", adminOnly(h.List)).Methods("GET")
	router.HandleFunc("/api/reservations/{id}/confirm", adminOnly(h.Confirm)).Methods("PATCH")
	router.HandleFunc("/api/reservations/{id}/decline", adminOnly(h.Decline)).Methods("PATCH")
}

// Create handles POST /api/reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DateTime string `json:"date_time"`
		Duration string `json:"duration"`
		Persons  int    `json:"persons"`
		Console  string `json:"console"`
		Notes    string `json:"notes"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.createHandler.Handle(r.Context(), command.CreateReservationCommand{
		DateTime: req.DateTime,
		Duration: req.Duration,
		Persons:  req.Persons,
		Console:  req.Console,
		Notes:    req.Notes,
		Email:    req.Email,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create reservation")
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Reservation created successfully",
		Data:    res,
	})
}

// List handles GET /api/reservations
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	reservations, err := h.listHandler.Handle(query.ListReservationsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list reservations")
		respondError(w, http.StatusInternalServerError, "Failed to list reservations")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    reservations,
	})
}

// Confirm handles PATCH /api/reservations/{id}/confirm
func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, true, "Reservation confirmed")
}

// Decline handles PATCH /api/reservations/{id}/decline
func (h *ReservationHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, false, "Reservation declined")
}

func (h *ReservationHandler) review(w http.ResponseWriter, r *http.Request, confirm bool, message string) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	if err := h.reviewHandler.Handle(command.ReviewReservationCommand{ID: uint(id), Confirm: confirm}); err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// adminOnly guards staff endpoints with the shared JWT claims.
func adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.Header.Get("Authorization"), " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}
		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if claims.Role != "admin" {
			respondError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}
}

func (h *ReservationHandler) respondCommandError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	respondJSON(w, status, Response{
		Success: false,
		Error:   err.Error(),
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
