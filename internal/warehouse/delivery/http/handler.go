package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
	"github.com/gamebay/retail-ops/internal/warehouse/usecase/command"
	"github.com/gamebay/retail-ops/internal/warehouse/usecase/query"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// WarehouseHandler handles HTTP requests for the warehouse subsystem using
// the CQRS pattern.
type WarehouseHandler struct {
	// Command handlers
	createHandler      *command.CreateWarehouseHandler
	updateHandler      *command.UpdateWarehouseHandler
	reconcileHandler   *command.ReconcileBucketHandler
	adjustHandler      *command.AdjustQuantityHandler
	removeUnitHandler  *command.RemoveUnitHandler
	setIdentityHandler *command.SetUnitIdentityHandler

	// Query handlers
	getHandler       *query.GetWarehouseHandler
	listHandler      *query.ListWarehouseHandler
	listUnitsHandler *query.ListUnitsHandler
}

// NewWarehouseHandler creates a new warehouse handler
func NewWarehouseHandler(
	createHandler *command.CreateWarehouseHandler,
	updateHandler *command.UpdateWarehouseHandler,
	reconcileHandler *command.ReconcileBucketHandler,
	adjustHandler *command.AdjustQuantityHandler,
	removeUnitHandler *command.RemoveUnitHandler,
	setIdentityHandler *command.SetUnitIdentityHandler,
	getHandler *query.GetWarehouseHandler,
	listHandler *query.ListWarehouseHandler,
	listUnitsHandler *query.ListUnitsHandler,
) *WarehouseHandler {
	return &WarehouseHandler{
		createHandler:      createHandler,
		updateHandler:      updateHandler,
		reconcileHandler:   reconcileHandler,
		adjustHandler:      adjustHandler,
		removeUnitHandler:  removeUnitHandler,
		setIdentityHandler: setIdentityHandler,
		getHandler:         getHandler,
		listHandler:        listHandler,
		listUnitsHandler:   listUnitsHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	respondJSON(w, status, Response{Success: false, Error: err.Error()})
}

type countersRequest struct {
	ProductID       uint               `json:"product_id"`
	QuantityInStock command.Quantities `json:"quantity_in_stock"`
	QuantityInStore command.Quantities `json:"quantity_in_store"`
	Price           command.Prices     `json:"price"`
	Documents       []string           `json:"documents"`
}

// CreateWarehouse handles POST /api/warehouse
func (h *WarehouseHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req countersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	warehouse, err := h.createHandler.Handle(command.CreateWarehouseCommand{
		ProductID:       req.ProductID,
		QuantityInStock: req.QuantityInStock,
		QuantityInStore: req.QuantityInStore,
		Price:           req.Price,
		Documents:       req.Documents,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create warehouse entry")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Warehouse entry added successfully",
		Data:    warehouse,
	})
}

// UpdateWarehouse handles PUT /api/warehouse/products/{product_id}
func (h *WarehouseHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req countersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	warehouse, err := h.updateHandler.Handle(r.Context(), command.UpdateWarehouseCommand{
		ProductID:       productID,
		QuantityInStock: req.QuantityInStock,
		QuantityInStore: req.QuantityInStore,
		Price:           req.Price,
		Documents:       req.Documents,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", productID).Msg("Failed to update warehouse entry")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Warehouse details updated successfully",
		Data:    warehouse,
	})
}

// Reconcile handles POST /api/warehouse/reconcile
func (h *WarehouseHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID   uint    `json:"product_id"`
		WarehouseID uint    `json:"warehouse_id"`
		Condition   string  `json:"condition"`
		Location    string  `json:"location"`
		TargetCount int     `json:"target_count"`
		UnitPrice   float64 `json:"unit_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	condition, err := domain.ParseCondition(req.Condition)
	if err != nil {
		respondError(w, err)
		return
	}
	location, err := domain.ParseLocation(req.Location)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.reconcileHandler.Handle(r.Context(), command.ReconcileBucketCommand{
		Key: domain.BucketKey{
			ProductID:   req.ProductID,
			WarehouseID: req.WarehouseID,
			Condition:   condition,
			Location:    location,
		},
		TargetCount: req.TargetCount,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Reconciliation failed")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Bucket reconciled",
		Data:    result,
	})
}

// AdjustQuantity handles PATCH /api/warehouse/products/{product_id}/quantity
func (h *WarehouseHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Condition string `json:"condition"`
		Location  string `json:"location"`
		Amount    int    `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	condition, err := domain.ParseCondition(req.Condition)
	if err != nil {
		respondError(w, err)
		return
	}
	location, err := domain.ParseLocation(req.Location)
	if err != nil {
		respondError(w, err)
		return
	}

	warehouse, err := h.adjustHandler.Handle(r.Context(), command.AdjustQuantityCommand{
		ProductID: productID,
		Condition: condition,
		Location:  location,
		Delta:     req.Amount,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", productID).Msg("Failed to adjust quantity")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated successfully",
		Data:    warehouse,
	})
}

// GetWarehouse handles GET /api/warehouse/{id}
func (h *WarehouseHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid warehouse ID"})
		return
	}

	warehouse, err := h.getHandler.Handle(query.GetWarehouseQuery{ID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: warehouse})
}

// ListWarehouse handles GET /api/warehouse
func (h *WarehouseHandler) ListWarehouse(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	grouped, err := h.listHandler.HandleGrouped(query.ListWarehouseQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list warehouse entries")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: grouped})
}

// ListUnits handles GET /api/warehouse/units
func (h *WarehouseHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	productID, _ := strconv.ParseUint(r.URL.Query().Get("product_id"), 10, 32)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	units, err := h.listUnitsHandler.Handle(query.ListUnitsQuery{
		ProductID: uint(productID),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list warehouse units")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: units})
}

// SetUnitIdentity handles PATCH /api/warehouse/units/{id}
func (h *WarehouseHandler) SetUnitIdentity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid unit ID"})
		return
	}

	var req struct {
		EANCode      string `json:"ean_code"`
		SerialNumber string `json:"serial_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	unit, err := h.setIdentityHandler.Handle(r.Context(), command.SetUnitIdentityCommand{
		UnitID:       id,
		EANCode:      req.EANCode,
		SerialNumber: req.SerialNumber,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("unit_id", id).Msg("Failed to update unit identity")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Warehouse unit updated",
		Data:    unit,
	})
}

// RemoveUnit handles DELETE /api/warehouse/units/{id}
func (h *WarehouseHandler) RemoveUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid unit ID"})
		return
	}

	productID, err := strconv.ParseUint(r.URL.Query().Get("product_id"), 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	err = h.removeUnitHandler.Handle(r.Context(), command.RemoveUnitCommand{
		UnitID:    id,
		ProductID: uint(productID),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("unit_id", id).Msg("Failed to remove unit")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Warehouse unit removed",
	})
}

func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	return uint(id), err
}

// RegisterRoutes registers all warehouse routes
func (h *WarehouseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/warehouse", h.ListWarehouse).Methods("GET")
	router.HandleFunc("/api/warehouse", h.CreateWarehouse).Methods("POST")
	router.HandleFunc("/api/warehouse/reconcile", h.Reconcile).Methods("POST")
	router.HandleFunc("/api/warehouse/units", h.ListUnits).Methods("GET")
	router.HandleFunc("/api/warehouse/units/{id}", h.SetUnitIdentity).Methods("PATCH")
	router.HandleFunc("/api/warehouse/units/{id}", h.RemoveUnit).Methods("DELETE")
	router.HandleFunc("/api/warehouse/products/{product_id}", h.UpdateWarehouse).Methods("PUT")
	router.HandleFunc("/api/warehouse/products/{product_id}/quantity", h.AdjustQuantity).Methods("PATCH")
	router.HandleFunc("/api/warehouse/{id}", h.GetWarehouse).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *WarehouseHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{Success: false, Error: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, Response{Success: true, Message: "warehouse service healthy"})
	}).Methods("GET")
}
