package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/gamebay/retail-ops/internal/buyback"
	buybackdomain "github.com/gamebay/retail-ops/internal/buyback/domain"
	"github.com/gamebay/retail-ops/internal/category"
	categorydomain "github.com/gamebay/retail-ops/internal/category/domain"
	"github.com/gamebay/retail-ops/internal/order"
	orderdomain "github.com/gamebay/retail-ops/internal/order/domain"
	"github.com/gamebay/retail-ops/internal/product"
	productdomain "github.com/gamebay/retail-ops/internal/product/domain"
	productrepository "github.com/gamebay/retail-ops/internal/product/repository"
	"github.com/gamebay/retail-ops/internal/reservation"
	reservationdomain "github.com/gamebay/retail-ops/internal/reservation/domain"
	"github.com/gamebay/retail-ops/internal/user"
	userdomain "github.com/gamebay/retail-ops/internal/user/domain"
	userrepository "github.com/gamebay/retail-ops/internal/user/repository"
	"github.com/gamebay/retail-ops/internal/warehouse"
	warehousedomain "github.com/gamebay/retail-ops/internal/warehouse/domain"
	warehousecommand "github.com/gamebay/retail-ops/internal/warehouse/usecase/command"
	"github.com/gamebay/retail-ops/kafka"
	"github.com/gamebay/retail-ops/pkg/database"
	"github.com/gamebay/retail-ops/pkg/logger"
	"github.com/gamebay/retail-ops/pkg/middleware"
	"github.com/gamebay/retail-ops/pkg/tracing"
)

var ordersPlacedEvents = promauto.NewCounter(prometheus.CounterOpts{
	Name: "retail_order_placed_events_total",
	Help: "Total number of order.placed events consumed",
})

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "retail-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting retail service")

	// Initialize tracing
	if _, err := tracing.InitTracer(serviceName); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "retaildb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&warehousedomain.Warehouse{},
		&warehousedomain.WarehouseUnit{},
		&productdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&userdomain.User{},
		&buybackdomain.Buyback{},
		&reservationdomain.Reservation{},
		&categorydomain.Category{},
		&categorydomain.Console{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka is optional: the service degrades to synchronous-only behavior
	// when no brokers are reachable.
	var publisher *kafka.Publisher
	brokers := strings.Split(getEnv("KAFKA_BROKERS", ""), ",")
	if brokers[0] != "" {
		publisher, err = kafka.NewPublisher(brokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Strs("brokers", brokers).
				Msg("Kafka unavailable, order events will not be published")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if publisher != nil {
		startOrderEventConsumer(ctx, brokers)
	}

	// The warehouse core and the catalog are wired through narrow interfaces
	// in both directions: the warehouse validates products through the
	// catalog adapter, and the catalog drives counters through the bridge.
	catalog := productrepository.NewCatalogAdapter(db)

	warehouseRepo := warehouse.ProvideWarehouseRepository(db)
	unitRepo := warehouse.ProvideUnitRepository(db)
	reconcile := warehousecommand.NewReconcileBucketHandler(unitRepo)
	bridge := warehouse.NewInventoryBridge(
		warehouseRepo,
		unitRepo,
		warehousecommand.NewUpdateWarehouseHandler(warehouseRepo, catalog, reconcile),
		warehousecommand.NewAdjustQuantityHandler(warehouseRepo),
	)

	warehouseHandler, err := warehouse.InitializeHTTPHandler(db, catalog)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize warehouse handler")
	}
	productHandler, err := product.InitializeHTTPHandler(db, bridge)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize product handler")
	}
	orderHandler, err := order.InitializeHTTPHandler(db, bridge, userrepository.NewGormUserRepository(db), publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}
	userHandler, err := user.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}
	buybackHandler, err := buyback.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize buyback handler")
	}
	reservationHandler, err := reservation.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize reservation handler")
	}
	lookupHandler, err := category.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize lookup handler")
	}

	// Setup router
	router := mux.NewRouter()

	warehouseHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	buybackHandler.RegisterRoutes(router)
	reservationHandler.RegisterRoutes(router)
	lookupHandler.RegisterRoutes(router)

	// Health check and Prometheus metrics endpoints
	warehouseHandler.RegisterHealthCheck(router, sqlDB)
	router.Handle("/metrics", promhttp.Handler())

	router.Use(middleware.TracingMiddleware)
	router.Use(middleware.LoggingMiddleware)

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	cancel()
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}

// startOrderEventConsumer subscribes to order.placed and keeps the sales
// counter metric current. Unit retirement driven by the same event lives in
// the warehouse API, so a failed handler only loses a metric increment.
func startOrderEventConsumer(ctx context.Context, brokers []string) {
	consumer, err := kafka.NewConsumer(brokers, "retail-service", []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable")
		return
	}

	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, event kafka.OrderPlacedEvent) error {
		ordersPlacedEvents.Inc()
		logger.Info(ctx).
			Uint("order_id", event.OrderID).
			Str("order_number", event.OrderNumber).
			Float64("amount", event.Amount).
			Msg("Order placed event consumed")
		return nil
	})

	go func() {
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
