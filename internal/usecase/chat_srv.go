package usecase

import (
	"context"
	"fmt"
	"strings"

	"labour-market/pkg/assistant"

	"go.uber.org/zap"
)

// chatSystemPrompt frames every relayed question for the completion service.
const chatSystemPrompt = "You are a helpful assistant for a labour-hire marketplace. " +
	"Customers use the site to find and book labourers such as plumbers, electricians and gardeners. " +
	"Help them describe the work they need, pick the right trade, and understand how bookings work. " +
	"Keep answers short and practical."

type ChatService interface {
	Ask(ctx context.Context, message string) (string, error)
}

type chatService struct {
	client assistant.Client
	log    *zap.Logger
}

func NewChatService(client assistant.Client, log *zap.Logger) ChatService {
	return &chatService{
		client: client,
		log:    log.With(zap.String("service", "chat")),
	}
}

func (s *chatService) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is required")
	}

	reply, err := s.client.Complete(ctx, chatSystemPrompt, message)
	if err != nil {
		s.log.Error("Assistant call failed", zap.Error(err))
		return "", fmt.Errorf("assistant unavailable")
	}

	return reply, nil
}
