package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gamebay/retail-ops/internal/buyback/domain"
	"github.com/gamebay/retail-ops/internal/buyback/usecase/command"
	"github.com/gamebay/retail-ops/internal/buyback/usecase/query"
	"github.com/gamebay/retail-ops/pkg/auth"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// BuybackHandler handles HTTP requests for trade-in intake using CQRS pattern
type BuybackHandler struct {
	createHandler *command.CreateBuybackHandler
	statusHandler *command.UpdateStatusHandler
	listHandler   *query.ListBuybacksHandler
}

// NewBuybackHandler creates a new buyback handler
func NewBuybackHandler(
	createHandler *command.CreateBuybackHandler,
	statusHandler *command.UpdateStatusHandler,
	listHandler *query.ListBuybacksHandler,
) *BuybackHandler {
	return &BuybackHandler{
		createHandler: createHandler,
		statusHandler: statusHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *BuybackHandler) RegisterRoutes(router *mux.Router) {
	// All buyback routes are staff-only
	router.HandleFunc("/api/buybacks", adminOnly(h.Create)).Methods("POST")
	router.HandleFunc("/api/buybacks", adminOnly(h.List)).Methods("GET")
	router.HandleFunc("/api/buybacks/{id}/status", adminOnly(h.UpdateStatus)).Methods("PATCH")
}

// Create handles POST /api/buybacks
func (h *BuybackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName   string                  `json:"first_name"`
		LastName    string                  `json:"last_name"`
		Nationality string                  `json:"nationality"`
		Residence   string                  `json:"residence"`
		DateOfBirth string                  `json:"date_of_birth"`
		PhoneNumber string                  `json:"phone_number"`
		Products    []domain.BuybackProduct `json:"products"`
		PDFPath     string                  `json:"pdf_path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	buyback, err := h.createHandler.Handle(r.Context(), command.CreateBuybackCommand{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nationality: req.Nationality,
		Residence:   req.Residence,
		DateOfBirth: req.DateOfBirth,
		PhoneNumber: req.PhoneNumber,
		Products:    req.Products,
		PDFPath:     req.PDFPath,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create buyback")
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Buyback recorded successfully",
		Data:    buyback,
	})
}

// List handles GET /api/buybacks
func (h *BuybackHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	buybacks, err := h.listHandler.Handle(query.ListBuybacksQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list buybacks")
		respondError(w, http.StatusInternalServerError, "Failed to list buybacks")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    buybacks,
	})
}

// UpdateStatus handles PATCH /api/buybacks/{id}/status
func (h *BuybackHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid buyback ID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.statusHandler.Handle(command.UpdateStatusCommand{ID: uint(id), Status: req.Status}); err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Buyback status updated",
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

func (h *BuybackHandler) respondCommandError(w http.ResponseWriter, err error) {
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
