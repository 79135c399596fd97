package ai

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// ClaudeProvider interprets steps through the Anthropic messages API.
type ClaudeProvider struct {
	client *anthropic.Client
	model  string
}

// NewClaudeProvider creates a provider using the ANTHROPIC_API_KEY
// environment variable.
func NewClaudeProvider(model string) (*ClaudeProvider, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}

	return &ClaudeProvider{
		client: &client,
		model:  model,
	}, nil
}

// InterpretStep implements Provider.
func (p *ClaudeProvider) InterpretStep(ctx context.Context, step string, snapshot *m.Snapshot) (m.Action, error) {
	userPrompt, err := buildUserPrompt(step, snapshot)
	if err != nil {
		return m.Action{}, err
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 512,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return m.Action{}, fmt.Errorf("Claude API error: %w", err)
	}

	var responseText string

	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return m.Action{}, fmt.Errorf("empty response from Claude")
	}

	return parseActionJSON(responseText)
}
