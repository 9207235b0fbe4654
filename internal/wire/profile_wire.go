package wire

import (
	"labour-market/internal/adaptor"
	"labour-market/internal/data/entity"
	"labour-market/internal/data/repository"
	"labour-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Dashboard: any authenticated user, content depends on role
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/dashboard", handler.Dashboard.Dashboard)
	})

	// Profile: labourers manage their own listing
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleLabourer, log))

		r.Get("/profile", handler.Profile.Show)
		r.Post("/profile", handler.Profile.Update)
	})

	// Search: customers browse labourers
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleCustomer, log))

		r.Get("/search", handler.Profile.Search)
	})
}
