package usecase_test

import (
	"context"
	"errors"
	"testing"

	"labour-market/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChatService_Ask(t *testing.T) {
	t.Run("Should relay the reply from the completion service", func(t *testing.T) {
		client := &fakeAssistant{reply: "Try searching for a plumber."}
		service := usecase.NewChatService(client, zap.NewNop())

		reply, err := service.Ask(context.Background(), "Who fixes leaking taps?")
		require.NoError(t, err)
		assert.Equal(t, "Try searching for a plumber.", reply)
		require.Len(t, client.asked, 1)
		assert.Equal(t, "Who fixes leaking taps?", client.asked[0])
	})

	t.Run("Should reject an empty message without calling upstream", func(t *testing.T) {
		client := &fakeAssistant{reply: "unused"}
		service := usecase.NewChatService(client, zap.NewNop())

		_, err := service.Ask(context.Background(), "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
		assert.Empty(t, client.asked)
	})

	t.Run("Should surface upstream failure as a generic error", func(t *testing.T) {
		client := &fakeAssistant{err: errors.New("connection refused")}
		service := usecase.NewChatService(client, zap.NewNop())

		_, err := service.Ask(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "assistant unavailable")
		assert.NotContains(t, err.Error(), "connection refused")
	})
}
