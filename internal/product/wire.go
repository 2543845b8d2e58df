//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/product/delivery/http"
	"github.com/gamebay/retail-ops/internal/product/domain"
	"github.com/gamebay/retail-ops/internal/product/repository"
	"github.com/gamebay/retail-ops/internal/product/usecase/command"
	"github.com/gamebay/retail-ops/internal/product/usecase/query"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var CommandSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewSetEANHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewGetByEANHandler,
	query.NewListProductsHandler,
	query.NewGetStatsHandler,
)

// InitializeHTTPHandler initializes the product HTTP handler with all
// dependencies. The inventory bridge is supplied by the caller so the catalog
// stays decoupled from the warehouse implementation.
func InitializeHTTPHandler(db *gorm.DB, inventory domain.Inventory) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewProductHandler,
	)
	return nil, nil
}
