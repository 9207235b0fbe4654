package assistant

import (
	"context"
	"fmt"

	"labour-market/pkg/utils"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Client is the completion-service boundary used by the chat endpoint.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type openAIClient struct {
	api   *openai.Client
	model string
	log   *zap.Logger
}

func NewOpenAIClient(config utils.AssistantConfig, log *zap.Logger) Client {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &openAIClient{
		api:   openai.NewClientWithConfig(clientConfig),
		model: config.Model,
		log:   log.With(zap.String("component", "assistant")),
	}
}

func (c *openAIClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		c.log.Error("Chat completion failed", zap.Error(err))
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
