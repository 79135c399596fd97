package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playwright-community/playwright-go"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// PlaywrightExtractor drives a Chromium instance through playwright-go.
type PlaywrightExtractor struct {
	headless bool

	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

// NewPlaywrightExtractor creates an extractor; the browser launches
// lazily on the first Extract call.
func NewPlaywrightExtractor(headless bool) *PlaywrightExtractor {
	return &PlaywrightExtractor{headless: headless}
}

func (e *PlaywrightExtractor) start() error {
	if e.page != nil {
		return nil
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(e.headless),
	})
	if err != nil {
		pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{Width: 1280, Height: 720},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return fmt.Errorf("failed to create page: %w", err)
	}

	e.pw = pw
	e.browser = browser
	e.page = page

	return nil
}

// Extract navigates to url, waits for the network to settle and runs
// the shared in-page extraction snippet.
func (e *PlaywrightExtractor) Extract(ctx context.Context, url string) (*m.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.start(); err != nil {
		return nil, err
	}

	if _, err := e.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	title, err := e.page.Title()
	if err != nil {
		return nil, fmt.Errorf("failed to read page title: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := e.page.Evaluate(extractElementsJS)
	if err != nil {
		return nil, fmt.Errorf("failed to extract elements from %s: %w", url, err)
	}

	descriptors, err := decodeElements(raw)
	if err != nil {
		return nil, err
	}

	slog.Debug("extracted elements", "driver", "playwright", "url", url, "categories", len(descriptors))

	return &m.Page{URL: url, Title: title, Descriptors: descriptors}, nil
}

// Screenshot captures the currently loaded page to path.
func (e *PlaywrightExtractor) Screenshot(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.page == nil {
		return fmt.Errorf("no page loaded: call Extract first")
	}

	if _, err := e.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	return nil
}

// Close shuts the browser and the playwright driver down.
func (e *PlaywrightExtractor) Close() error {
	if e.browser != nil {
		if err := e.browser.Close(); err != nil {
			return fmt.Errorf("failed to close browser: %w", err)
		}
	}

	if e.pw != nil {
		if err := e.pw.Stop(); err != nil {
			return fmt.Errorf("failed to stop playwright: %w", err)
		}
	}

	e.page = nil
	e.browser = nil
	e.pw = nil

	return nil
}
