package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gamebay/retail-ops/internal/category/domain"
	"github.com/gamebay/retail-ops/internal/category/usecase"
	"github.com/gamebay/retail-ops/pkg/auth"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// LookupHandler handles HTTP requests for categories and consoles
type LookupHandler struct {
	lookups *usecase.LookupHandler
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookups *usecase.LookupHandler) *LookupHandler {
	return &LookupHandler{lookups: lookups}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *LookupHandler) RegisterRoutes(router *mux.Router) {
	// Lists are public, mutation is staff-only
	router.HandleFunc("/api/categories", h.ListCategories).Methods("GET")
	router.HandleFunc("/api/categories", adminOnly(h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories/{id}", adminOnly(h.DeleteCategory)).Methods("DELETE")
	router.HandleFunc("/api/consoles", h.ListConsoles).Methods("GET")
	router.HandleFunc("/api/consoles", adminOnly(h.CreateConsole)).Methods("POST")
	router.HandleFunc("/api/consoles/{id}", adminOnly(h.DeleteConsole)).Methods("DELETE")
}

// ListCategories handles GET /api/categories
func (h *LookupHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.lookups.ListCategories()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondError(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// CreateCategory handles POST /api/categories
func (h *LookupHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string   `json:"name"`
		SubCategories []string `json:"sub_categories"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.lookups.CreateCategory(req.Name, req.SubCategories)
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *LookupHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	if err := h.lookups.DeleteCategory(uint(id)); err != nil {
		h.respondCommandError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Category deleted successfully"})
}

// ListConsoles handles GET /api/consoles
func (h *LookupHandler) ListConsoles(w http.ResponseWriter, r *http.Request) {
	consoles, err := h.lookups.ListConsoles()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list consoles")
		respondError(w, http.StatusInternalServerError, "Failed to list consoles")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: consoles})
}

// CreateConsole handles POST /api/consoles
func (h *LookupHandler) CreateConsole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Platform string `json:"platform"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	console, err := h.lookups.CreateConsole(req.Name, req.Platform)
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Console created successfully",
		Data:    console,
	})
}

// DeleteConsole handles DELETE /api/consoles/{id}
func (h *LookupHandler) DeleteConsole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid console ID")
		return
	}
	if err := h.lookups.DeleteConsole(uint(id)); err != nil {
		h.respondCommandError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Console deleted successfully"})
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

func (h *LookupHandler) respondCommandError(w http.ResponseWriter, err error) {
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
