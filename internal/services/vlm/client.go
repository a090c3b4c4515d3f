package vlm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"feedwatch-go/internal/config"
)

// Client asks an OpenAI-compatible vision model yes/no questions about JPEG
// frames. One short text completion per call; no streaming.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	apiCfg := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		apiCfg.BaseURL = cfg.OpenAIBaseURL
	}

	log.Info().
		Str("model", cfg.VLMModel).
		Int("max_tokens", cfg.VLMMaxTokens).
		Bool("custom_base_url", cfg.OpenAIBaseURL != "").
		Msg("Vision model client initialized")

	return &Client{
		api:       openai.NewClientWithConfig(apiCfg),
		model:     cfg.VLMModel,
		maxTokens: cfg.VLMMaxTokens,
	}, nil
}

// EvaluateImage sends one frame plus the filter prompt and returns the
// model's trimmed text answer. Temperature is pinned to 0 so True/False
// prompts answer deterministically. The caller bounds the call via ctx.
func (c *Client) EvaluateImage(ctx context.Context, frame []byte, prompt string) (string, error) {
	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frame)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: dataURI,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("vision model call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision model returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
