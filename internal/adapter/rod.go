package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// RodExtractor drives a Chromium instance over CDP through go-rod. It
// runs the same in-page extraction snippet as the Playwright driver, so
// the two produce identical descriptors for the same page.
type RodExtractor struct {
	headless bool

	browser *rod.Browser
	page    *rod.Page
}

// NewRodExtractor creates an extractor; the browser launches lazily on
// the first Extract call.
func NewRodExtractor(headless bool) *RodExtractor {
	return &RodExtractor{headless: headless}
}

func (e *RodExtractor) start() error {
	if e.browser != nil {
		return nil
	}

	path, _ := launcher.LookPath()

	controlURL, err := launcher.New().Bin(path).Headless(e.headless).Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	e.browser = browser

	return nil
}

// Extract navigates to url, waits for the page to settle and runs the
// shared extraction snippet.
func (e *RodExtractor) Extract(ctx context.Context, url string) (*m.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.start(); err != nil {
		return nil, err
	}

	page, err := e.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", url, err)
	}

	if e.page != nil {
		e.page.Close()
	}

	e.page = page

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}

	// Settle network traffic, bounded so persistent connections cannot
	// hang the run.
	page.Timeout(5 * time.Second).WaitRequestIdle(500*time.Millisecond, nil, nil, nil)()

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to read page info: %w", err)
	}

	result, err := page.Eval(extractElementsJS)
	if err != nil {
		return nil, fmt.Errorf("failed to extract elements from %s: %w", url, err)
	}

	descriptors, err := decodeElements(result.Value.Val())
	if err != nil {
		return nil, err
	}

	slog.Debug("extracted elements", "driver", "rod", "url", url, "categories", len(descriptors))

	return &m.Page{URL: url, Title: info.Title, Descriptors: descriptors}, nil
}

// Screenshot captures the currently loaded page to path.
func (e *RodExtractor) Screenshot(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.page == nil {
		return fmt.Errorf("no page loaded: call Extract first")
	}

	data, err := e.page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write screenshot %s: %w", path, err)
	}

	return nil
}

// Close shuts the browser down.
func (e *RodExtractor) Close() error {
	if e.page != nil {
		e.page.Close()
		e.page = nil
	}

	if e.browser != nil {
		if err := e.browser.Close(); err != nil {
			return fmt.Errorf("failed to close browser: %w", err)
		}

		e.browser = nil
	}

	return nil
}
