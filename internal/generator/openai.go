package generator

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIGenerator uses the OpenAI chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIGenerator creates an OpenAI-backed generator.
func NewOpenAIGenerator(apiKey, model string, logger *zap.Logger) *OpenAIGenerator {
	client := openai.NewClient(apiKey)

	if model == "" {
		model = openai.GPT4TurboPreview
	}

	return &OpenAIGenerator{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Generate submits the prompt as a single chat completion.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an expert technical writer that produces README files for software repositories.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", &Error{Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Cause: errors.New("no response from model")}
	}

	g.logger.Info("generated content",
		zap.String("model", g.model),
		zap.Int("prompt_chars", len(prompt)),
	)

	return resp.Choices[0].Message.Content, nil
}
