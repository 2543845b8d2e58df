//go:build wireinject
// +build wireinject

package warehouse

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/warehouse/delivery/http"
	"github.com/gamebay/retail-ops/internal/warehouse/domain"
	"github.com/gamebay/retail-ops/internal/warehouse/repository"
	"github.com/gamebay/retail-ops/internal/warehouse/usecase/command"
	"github.com/gamebay/retail-ops/internal/warehouse/usecase/query"
)

// ProvideWarehouseRepository provides the aggregate counter repository
func ProvideWarehouseRepository(db *gorm.DB) domain.WarehouseRepository {
	return repository.NewGormWarehouseRepositoryWithTracing(db)
}

// ProvideUnitRepository provides the unit record repository
func ProvideUnitRepository(db *gorm.DB) domain.UnitRepository {
	return repository.NewGormUnitRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideWarehouseRepository,
	ProvideUnitRepository,
)

var CommandSet = wire.NewSet(
	command.NewCreateWarehouseHandler,
	command.NewReconcileBucketHandler,
	command.NewUpdateWarehouseHandler,
	command.NewAdjustQuantityHandler,
	command.NewRemoveUnitHandler,
	command.NewSetUnitIdentityHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetWarehouseHandler,
	query.NewListWarehouseHandler,
	query.NewListUnitsHandler,
)

// InitializeHTTPHandler initializes the warehouse HTTP handler with all
// dependencies. The product catalog is supplied by the caller so the
// warehouse core stays decoupled from the catalog implementation.
func InitializeHTTPHandler(db *gorm.DB, catalog domain.ProductCatalog) (*http.WarehouseHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewWarehouseHandler,
	)
	return nil, nil
}
