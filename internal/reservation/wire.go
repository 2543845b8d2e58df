//go:build wireinject
// +build wireinject

package reservation

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/reservation/delivery/http"
	"github.com/gamebay/retail-ops/internal/reservation/domain"
	"github.com/gamebay/retail-ops/internal/reservation/repository"
	"github.com/gamebay/retail-ops/internal/reservation/usecase/command"
	"github.com/gamebay/retail-ops/internal/reservation/usecase/query"
)

// ProvideReservationRepository provides the reservation repository
func ProvideReservationRepository(db *gorm.DB) domain.ReservationRepository {
	return repository.NewGormReservationRepository(db)
}

// InitializeHTTPHandler initializes the reservation HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.ReservationHandler, error) {
	wire.Build(
		ProvideReservationRepository,
		command.NewCreateReservationHandler,
		command.NewReviewReservationHandler,
		query.NewListReservationsHandler,
		http.NewReservationHandler,
	)
	return nil, nil
}
