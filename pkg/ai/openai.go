package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

const maxTokens = 4096

// OpenAIClient answers agent calls with a chat model. Each target id maps to a
// system prompt; the model's reply is returned as the envelope's result slot.
type OpenAIClient struct {
	*openai.Client
	Model   string
	prompts map[string]string
}

// NewOpenAIClient creates a chat-model agent transport
func NewOpenAIClient(cfg *config.OpenAIConfig, timeout time.Duration, prompts map[string]string) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	return &OpenAIClient{
		Client:  openai.NewClientWithConfig(clientCfg),
		Model:   cfg.Model,
		prompts: prompts,
	}
}

// Send runs one chat completion. API errors are reported failures; anything
// that kept the request from completing is returned as an error.
func (c *OpenAIClient) Send(ctx context.Context, message string, targetID string) (*entities.AgentResult, error) {
	model := c.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	systemPrompt, ok := c.prompts[targetID]
	if !ok {
		systemPrompt = GenericPrompt
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return &entities.AgentResult{Success: false, Error: apiErr.Message}, nil
		}
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return &entities.AgentResult{Success: false, Error: "empty response from model"}, nil
	}

	return &entities.AgentResult{
		Success: true,
		Response: map[string]any{
			"status": "success",
			"result": resp.Choices[0].Message.Content,
		},
	}, nil
}
