//go:build wireinject
// +build wireinject

package buyback

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/buyback/delivery/http"
	"github.com/gamebay/retail-ops/internal/buyback/domain"
	"github.com/gamebay/retail-ops/internal/buyback/repository"
	"github.com/gamebay/retail-ops/internal/buyback/usecase/command"
	"github.com/gamebay/retail-ops/internal/buyback/usecase/query"
)

// ProvideBuybackRepository provides the buyback repository
func ProvideBuybackRepository(db *gorm.DB) domain.BuybackRepository {
	return repository.NewGormBuybackRepository(db)
}

// InitializeHTTPHandler initializes the buyback HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.BuybackHandler, error) {
	wire.Build(
		ProvideBuybackRepository,
		command.NewCreateBuybackHandler,
		command.NewUpdateStatusHandler,
		query.NewListBuybacksHandler,
		http.NewBuybackHandler,
	)
	return nil, nil
}
