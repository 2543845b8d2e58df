//go:build wireinject
// +build wireinject

package category

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/category/delivery/http"
	"github.com/gamebay/retail-ops/internal/category/domain"
	"github.com/gamebay/retail-ops/internal/category/repository"
	"github.com/gamebay/retail-ops/internal/category/usecase"
)

// ProvideLookupRepository provides the lookup repository
func ProvideLookupRepository(db *gorm.DB) domain.LookupRepository {
	return repository.NewGormLookupRepository(db)
}

// InitializeHTTPHandler initializes the lookup HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.LookupHandler, error) {
	wire.Build(
		ProvideLookupRepository,
		usecase.NewLookupHandler,
		http.NewLookupHandler,
	)
	return nil, nil
}
