package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gamebay/retail-ops/internal/product/domain"
	"github.com/gamebay/retail-ops/internal/product/usecase/command"
	"github.com/gamebay/retail-ops/internal/product/usecase/query"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// ProductHandler handles HTTP requests for the catalog using CQRS pattern
type ProductHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler
	setEANHandler *command.SetEANHandler

	// Query handlers
	getHandler    *query.GetProductHandler
	getEANHandler *query.GetByEANHandler
	listHandler   *query.ListProductsHandler
	statsHandler  *query.GetStatsHandler

	repo           domain.ProductRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	setEANHandler *command.SetEANHandler,
	getHandler *query.GetProductHandler,
	getEANHandler *query.GetByEANHandler,
	listHandler *query.ListProductsHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.ProductRepository,
) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalProducts)

	return &ProductHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		setEANHandler:  setEANHandler,
		getHandler:     getHandler,
		getEANHandler:  getEANHandler,
		listHandler:    listHandler,
		statsHandler:   statsHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		totalProducts:  totalProducts,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/ean/{ean}", h.metricsMiddleware("/api/products/ean/{ean}", h.GetProductByEAN)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")

	// Admin routes (admin role required)
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/ean", h.metricsMiddleware("/api/products/{id}/ean", AdminMiddleware(h.SetEAN))).Methods("PATCH")
}

// seedRequest mirrors the quantityInStock / quantityInStore request shape.
type seedRequest struct {
	QuantityInStock *struct {
		New  int `json:"new"`
		Used int `json:"used"`
	} `json:"quantity_in_stock"`
	QuantityInStore *struct {
		New  int `json:"new"`
		Used int `json:"used"`
	} `json:"quantity_in_store"`
	PriceNew  float64 `json:"price_new"`
	PriceUsed float64 `json:"price_used"`
}

func (s *seedRequest) toSeed() *domain.InventorySeed {
	if s.QuantityInStock == nil && s.QuantityInStore == nil {
		return nil
	}
	seed := &domain.InventorySeed{PriceNew: s.PriceNew, PriceUsed: s.PriceUsed}
	if s.QuantityInStock != nil {
		seed.StockNew = s.QuantityInStock.New
		seed.StockUsed = s.QuantityInStock.Used
	}
	if s.QuantityInStore != nil {
		seed.StoreNew = s.QuantityInStore.New
		seed.StoreUsed = s.QuantityInStore.Used
	}
	return seed
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Description2 string   `json:"description2"`
		Category     string   `json:"category"`
		SubCategory  string   `json:"sub_category"`
		Price        float64  `json:"price"`
		Bestseller   bool     `json:"bestseller"`
		EANCode      string   `json:"ean_code"`
		SerialNumber string   `json:"serial_number"`
		YoutubeLink  string   `json:"youtube_link"`
		Class        string   `json:"class"`
		Images       []string `json:"images"`
		IsActive     bool     `json:"is_active"`
		Warehouse    *seedRequest `json:"warehouse"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Name:         req.Name,
		Description:  req.Description,
		Description2: req.Description2,
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		Price:        req.Price,
		Bestseller:   req.Bestseller,
		EANCode:      req.EANCode,
		SerialNumber: req.SerialNumber,
		YoutubeLink:  req.YoutubeLink,
		Class:        req.Class,
		Images:       req.Images,
		IsActive:     req.IsActive,
	}
	if req.Warehouse != nil {
		cmd.Seed = req.Warehouse.toSeed()
	}

	product, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		h.respondCommandError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListProductsQuery{
		Limit:    limit,
		Offset:   offset,
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    count,
			"limit":    q.Limit,
			"offset":   offset,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	details, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    details,
	})
}

// GetProductByEAN handles GET /api/products/ean/{ean}
func (h *ProductHandler) GetProductByEAN(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.getEANHandler.Handle(r.Context(), query.GetByEANQuery{EANCode: vars["ean"]})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		Description2 *string  `json:"description2"`
		Category     *string  `json:"category"`
		SubCategory  *string  `json:"sub_category"`
		Price        *float64 `json:"price"`
		Bestseller   *bool    `json:"bestseller"`
		EANCode      *string  `json:"ean_code"`
		SerialNumber *string  `json:"serial_number"`
		YoutubeLink  *string  `json:"youtube_link"`
		Class        *string  `json:"class"`
		Images       []string `json:"images"`
		IsActive     *bool    `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Description2: req.Description2,
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		Price:        req.Price,
		Bestseller:   req.Bestseller,
		EANCode:      req.EANCode,
		SerialNumber: req.SerialNumber,
		YoutubeLink:  req.YoutubeLink,
		Class:        req.Class,
		Images:       req.Images,
		IsActive:     req.IsActive,
	}

	product, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update product")
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// SetEAN handles PATCH /api/products/{id}/ean
func (h *ProductHandler) SetEAN(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		EANCode string `json:"ean_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	product, err := h.setEANHandler.Handle(r.Context(), command.SetEANCommand{ProductID: id, EANCode: req.EANCode})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to set EAN code")
		h.respondCommandError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "EAN code updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete product")
		h.respondCommandError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// GetStats handles GET /api/products/stats
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

func (h *ProductHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// respondCommandError maps usecase errors to HTTP status codes.
func (h *ProductHandler) respondCommandError(w http.ResponseWriter, err error) {
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
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}

// updateProductsMetric updates the total products gauge
func (h *ProductHandler) updateProductsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalProducts.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
