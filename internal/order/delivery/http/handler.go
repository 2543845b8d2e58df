package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gamebay/retail-ops/internal/order/domain"
	"github.com/gamebay/retail-ops/internal/order/usecase/command"
	"github.com/gamebay/retail-ops/internal/order/usecase/query"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	placeHandler  *command.PlaceOrderHandler
	statusHandler *command.UpdateStatusHandler
	deleteHandler *command.DeleteOrderHandler

	// Query handlers
	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	placeHandler *command.PlaceOrderHandler,
	statusHandler *command.UpdateStatusHandler,
	deleteHandler *command.DeleteOrderHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
) *OrderHandler {
	return &OrderHandler{
		placeHandler:  placeHandler,
		statusHandler: statusHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Customer routes (authentication required)
	router.HandleFunc("/api/orders", AuthMiddleware(h.PlaceOrder)).Methods("POST")
	router.HandleFunc("/api/orders/my", AuthMiddleware(h.ListMyOrders)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/orders", AdminMiddleware(h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", AdminMiddleware(h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders/{id}/status", AdminMiddleware(h.UpdateStatus)).Methods("PATCH")
	router.HandleFunc("/api/orders/{id}", AdminMiddleware(h.DeleteOrder)).Methods("DELETE")
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	var req struct {
		Items []struct {
			ProductID uint    `json:"product_id"`
			Name      string  `json:"name"`
			Condition string  `json:"condition"`
			Price     float64 `json:"price"`
			Quantity  int     `json:"quantity"`
			Image     string  `json:"image"`
		} `json:"items"`
		Address       map[string]string `json:"address"`
		PaymentMethod string            `json:"payment_method"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.PlaceOrderCommand{
		UserID:        uid,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Condition: item.Condition,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	order, err := h.placeHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to place order")
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// ListMyOrders handles GET /api/orders/my
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{UserID: uid, Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list user orders")
		respondError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{ID: id})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.statusHandler.Handle(r.Context(), command.UpdateStatusCommand{OrderID: id, Status: req.Status}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update order status")
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated successfully",
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteOrderCommand{OrderID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete order")
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// respondCommandError maps usecase errors to HTTP status codes.
func (h *OrderHandler) respondCommandError(w http.ResponseWriter, err error) {
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

// pathID parses the {id} path variable.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
