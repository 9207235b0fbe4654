package usecase

import (
	"labour-market/internal/data/repository"
	"labour-market/pkg/assistant"
	"labour-market/pkg/mailer"
	"labour-market/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Profile ProfileService
	Booking BookingService
	Chat    ChatService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	ai assistant.Client,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Profile: NewProfileService(repo.Profile, log),
		Booking: NewBookingService(repo, mail, log),
		Chat:    NewChatService(ai, log),
	}
}
