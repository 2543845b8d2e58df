//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/user/delivery/http"
	"github.com/gamebay/retail-ops/internal/user/domain"
	"github.com/gamebay/retail-ops/internal/user/repository"
	"github.com/gamebay/retail-ops/internal/user/usecase/command"
	"github.com/gamebay/retail-ops/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var CommandSet = wire.NewSet(
	command.NewRegisterUserHandler,
	command.NewLoginUserHandler,
	command.NewCartHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetUserHandler,
	query.NewListUsersHandler,
)

// InitializeHTTPHandler initializes the user HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewUserHandler,
	)
	return nil, nil
}
