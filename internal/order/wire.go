//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/order/delivery/http"
	"github.com/gamebay/retail-ops/internal/order/domain"
	"github.com/gamebay/retail-ops/internal/order/repository"
	"github.com/gamebay/retail-ops/internal/order/usecase/command"
	"github.com/gamebay/retail-ops/internal/order/usecase/query"
	"github.com/gamebay/retail-ops/kafka"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

var CommandSet = wire.NewSet(
	command.NewPlaceOrderHandler,
	command.NewUpdateStatusHandler,
	command.NewDeleteOrderHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetOrderHandler,
	query.NewListOrdersHandler,
)

// InitializeHTTPHandler initializes the order HTTP handler with all
// dependencies. Stock deduction, cart clearing and event publishing are
// supplied by the caller.
func InitializeHTTPHandler(db *gorm.DB, stock domain.StockAdjuster, carts domain.CartClearer, publisher *kafka.Publisher) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewOrderHandler,
	)
	return nil, nil
}
