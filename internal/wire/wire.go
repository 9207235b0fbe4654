package wire

import (
	"net/http"

	"labour-market/internal/adaptor"
	"labour-market/internal/data/repository"
	"labour-market/internal/usecase"
	"labour-market/pkg/assistant"
	"labour-market/pkg/mailer"
	"labour-market/pkg/middleware"
	"labour-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes. The mail and
// assistant collaborators are passed in so tests can substitute fakes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	ai assistant.Client,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, mail, ai, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Public landing page
	r.Get("/", handler.Home.Index)

	wireAuth(r, handler.Auth, logger)
	wireProfile(r, handler, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireChat(r, handler.Chat, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
