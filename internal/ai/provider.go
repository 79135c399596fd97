// Package ai interprets natural-language test steps against a generated
// snapshot, first with a deterministic pattern matcher and then, for
// anything the patterns cannot place, with an LLM provider.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// Provider turns one natural-language step into an executable action.
type Provider interface {
	InterpretStep(ctx context.Context, step string, snapshot *m.Snapshot) (m.Action, error)
}

// NewProvider creates an AI provider by name.
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "openai", "gpt":
		return NewOpenAIProvider(model)
	case "claude", "anthropic":
		return NewClaudeProvider(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: openai, claude)", name)
	}
}

// Interpret resolves a step with the pattern matcher when possible and
// falls back to the provider otherwise. The provider may be nil, in
// which case unmatched steps are an error.
func Interpret(ctx context.Context, provider Provider, step string, snapshot *m.Snapshot) (m.Action, error) {
	if action, ok := MatchStep(step, snapshot); ok {
		return action, nil
	}

	if provider == nil {
		return m.Action{}, fmt.Errorf("no pattern matched step %q and no AI provider configured", step)
	}

	return provider.InterpretStep(ctx, step, snapshot)
}

// parseActionJSON extracts the first JSON object from an LLM response
// and decodes it strictly into an action.
func parseActionJSON(response string) (m.Action, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")

	if start < 0 || end <= start {
		return m.Action{}, fmt.Errorf("no JSON object in response: %q", response)
	}

	var action m.Action

	decoder := json.NewDecoder(strings.NewReader(response[start : end+1]))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&action); err != nil {
		return m.Action{}, fmt.Errorf("failed to parse action JSON: %w", err)
	}

	if !action.Valid() {
		return m.Action{}, fmt.Errorf("unknown action type %q", action.Type)
	}

	return action, nil
}
