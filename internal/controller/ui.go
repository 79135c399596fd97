// Package controller provides output adapters for displaying generation
// and drift detection results.
package controller

import (
	"context"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// GenerationResult summarizes one generated page object for display.
type GenerationResult struct {
	Page       string
	URL        string
	Path       string
	Elements   int
	Screenshot string
}

// UI defines the interface for displaying results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayGeneration(ctx context.Context, results []GenerationResult) error
	DisplayChangeReport(ctx context.Context, report m.ChangeReport, mode string) error
	DisplaySourceDiff(ctx context.Context, name, before, after string) error
	DisplayAction(ctx context.Context, step string, action m.Action) error
}
