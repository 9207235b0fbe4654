package wire

import (
	"labour-market/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	log *zap.Logger,
) {
	// All public: the auth routes establish the session rather than need one
	r.Get("/signup", authHandler.ShowSignup)
	r.Post("/signup", authHandler.Signup)
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)

	// Logout clears whatever session the cookie names; safe without auth
	r.Get("/logout", authHandler.Logout)
}
