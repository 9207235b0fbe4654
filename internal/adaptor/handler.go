package adaptor

import (
	"labour-market/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Home      *HomeHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Profile   *ProfileHandler
	Booking   *BookingHandler
	Chat      *ChatHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Home:      NewHomeHandler(log),
		Auth:      NewAuthHandler(service.Auth, log),
		Dashboard: NewDashboardHandler(service.Profile, service.Booking, log),
		Profile:   NewProfileHandler(service.Profile, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Chat:      NewChatHandler(service.Chat, log),
	}
}
