package wire

import (
	"labour-market/internal/adaptor"
	"labour-market/internal/data/entity"
	"labour-market/internal/data/repository"
	"labour-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Customers place bookings
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleCustomer, log))

		r.Post("/book/{labourerId}", bookingHandler.Create)
	})

	// Labourers answer them; status is a path literal
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleLabourer, log))

		r.Get("/update_booking/{bookingId}/{status:accepted|rejected}", bookingHandler.UpdateStatus)
	})
}
