package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gamebay/retail-ops/api-gateway/config"
	"github.com/gamebay/retail-ops/api-gateway/health"
	"github.com/gamebay/retail-ops/api-gateway/middleware"
	"github.com/gamebay/retail-ops/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	Description  string
	RequireAuth  bool
	RequireAdmin bool
}

// Routes holds all route definitions. Most admin handlers re-check roles
// downstream; the warehouse service trusts the gateway to gate access.
var Routes = []RouteDefinition{
	// Public storefront routes
	{
		Prefix:      "/api/products",
		Description: "Product catalog (mutations are admin-only downstream)",
	},
	{
		Prefix:      "/api/categories",
		Description: "Navigation categories",
	},
	{
		Prefix:      "/api/consoles",
		Description: "Bookable gaming stations",
	},
	{
		Prefix:      "/api/reservations",
		Description: "Venue bookings (review is admin-only downstream)",
	},
	{
		Prefix:      "/api/users",
		Description: "Accounts (register, login, profile)",
	},

	// Authenticated routes
	{
		Prefix:      "/api/cart",
		Description: "Shopping cart",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/orders",
		Description: "Order placement and history",
		RequireAuth: true,
	},

	// Staff routes
	{
		Prefix:       "/api/warehouse",
		Description:  "Inventory counters and unit records",
		RequireAuth:  true,
		RequireAdmin: true,
	},
	{
		Prefix:       "/api/buybacks",
		Description:  "Trade-in intake",
		RequireAuth:  true,
		RequireAdmin: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks backend replicas)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Load balancer and circuit breaker stats
	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"load_balancer":    reverseProxy.LoadBalancer().GetStats(),
			"circuit_breakers": cbManager.GetAllStats(),
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Retail API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a route prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c)
	}

	var middlewares []fiber.Handler
	if route.RequireAdmin {
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
