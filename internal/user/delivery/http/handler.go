package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gamebay/retail-ops/internal/user/domain"
	"github.com/gamebay/retail-ops/internal/user/usecase/command"
	"github.com/gamebay/retail-ops/internal/user/usecase/query"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// UserHandler handles HTTP requests for accounts and carts using CQRS pattern
type UserHandler struct {
	// Command handlers
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	cartHandler     *command.CartHandler

	// Query handlers
	getHandler  *query.GetUserHandler
	listHandler *query.ListUsersHandler
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	cartHandler *command.CartHandler,
	getHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
) *UserHandler {
	return &UserHandler{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
		cartHandler:     cartHandler,
		getHandler:      getHandler,
		listHandler:     listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/users/register", h.Register).Methods("POST")
	router.HandleFunc("/api/users/login", h.Login).Methods("POST")

	// Authenticated routes
	router.HandleFunc("/api/users/me", AuthMiddleware(h.GetMe)).Methods("GET")
	router.HandleFunc("/api/cart", AuthMiddleware(h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", AuthMiddleware(h.AddToCart)).Methods("POST")
	router.HandleFunc("/api/cart", AuthMiddleware(h.UpdateCart)).Methods("PUT")
	router.HandleFunc("/api/cart", AuthMiddleware(h.ClearCart)).Methods("DELETE")

	// Admin routes
	router.HandleFunc("/api/users", AdminMiddleware(h.ListUsers)).Methods("GET")
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.registerHandler.Handle(command.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to register user")
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.loginHandler.Handle(command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("email", req.Email).Msg("Login failed")
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

// GetMe handles GET /api/users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	user, err := h.getHandler.Handle(query.GetUserQuery{ID: uid})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    user,
	})
}

// GetCart handles GET /api/cart
func (h *UserHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	user, err := h.getHandler.Handle(query.GetUserQuery{ID: uid})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	cart := user.CartData
	if cart == nil {
		cart = domain.CartData{}
	}
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    cart,
	})
}

// AddToCart handles POST /api/cart
func (h *UserHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	var req struct {
		ItemID    string `json:"item_id"`
		Condition string `json:"condition"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartHandler.HandleAdd(command.AddToCartCommand{
		UserID:    uid,
		ItemID:    req.ItemID,
		Condition: req.Condition,
	})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cart,
	})
}

// UpdateCart handles PUT /api/cart
func (h *UserHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	var req struct {
		ItemID    string `json:"item_id"`
		Condition string `json:"condition"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartHandler.HandleUpdate(command.UpdateCartCommand{
		UserID:    uid,
		ItemID:    req.ItemID,
		Condition: req.Condition,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart updated",
		Data:    cart,
	})
}

// ClearCart handles DELETE /api/cart
func (h *UserHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	if err := h.cartHandler.HandleClear(uid); err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, err := h.listHandler.Handle(query.ListUsersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list users")
		respondError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    users,
	})
}

// respondCommandError maps usecase errors to HTTP status codes.
func (h *UserHandler) respondCommandError(w http.ResponseWriter, err error) {
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

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
