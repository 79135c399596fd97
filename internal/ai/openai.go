package ai

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// OpenAIProvider interprets steps through the OpenAI chat API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a provider using the OPENAI_API_KEY
// environment variable.
func NewOpenAIProvider(model string) (*OpenAIProvider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable required")
	}

	if model == "" {
		model = "gpt-4o"
	}

	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// InterpretStep implements Provider.
func (p *OpenAIProvider) InterpretStep(ctx context.Context, step string, snapshot *m.Snapshot) (m.Action, error) {
	userPrompt, err := buildUserPrompt(step, snapshot)
	if err != nil {
		return m.Action{}, err
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens: 512,
	})
	if err != nil {
		return m.Action{}, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return m.Action{}, fmt.Errorf("empty response from OpenAI")
	}

	return parseActionJSON(resp.Choices[0].Message.Content)
}
