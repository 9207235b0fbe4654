package wire

import (
	"labour-market/internal/adaptor"
	"labour-market/internal/data/repository"
	"labour-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireChat(
	r chi.Router,
	chatHandler *adaptor.ChatHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// JSON endpoint: auth failures answer 401 instead of redirecting
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSessionAPI(repo.Session, repo.User, log))

		r.Post("/chat", chatHandler.Chat)
	})
}
