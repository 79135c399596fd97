// Package adapter implements the I/O boundaries of the generator:
// browser-based element extraction, snapshot persistence and artifact
// writing.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// Extractor enumerates the interactive elements of a page and returns
// one descriptor per element, grouped by semantic category. Extract
// leaves the page loaded so a subsequent Screenshot captures the same
// state. Driver failures are wrapped and reported to the caller, never
// retried here.
type Extractor interface {
	Extract(ctx context.Context, url string) (*m.Page, error)
	Screenshot(ctx context.Context, path string) error
	Close() error
}

// extractElementsJS runs inside the page and returns the raw attribute
// set for every visible interactive element, with null for attributes
// absent from markup. Both drivers evaluate the same snippet so their
// descriptor output is identical.
const extractElementsJS = `() => {
	const queries = [
		['button', 'button, input[type="button"], input[type="submit"], [role="button"]'],
		['input', 'input:not([type="button"]):not([type="submit"]):not([type="checkbox"]):not([type="radio"]):not([type="hidden"])'],
		['link', 'a[href]'],
		['select', 'select'],
		['checkbox', 'input[type="checkbox"]'],
		['radio', 'input[type="radio"]'],
		['textarea', 'textarea'],
		['heading', 'h1, h2, h3, h4, h5, h6'],
		['other', 'summary, [role="tab"], [role="menuitem"], [role="switch"], [role="slider"]'],
	];

	const attr = (el, name) => el.hasAttribute(name) ? el.getAttribute(name) : null;

	const labelFor = (el) => {
		if (el.labels && el.labels.length > 0) {
			return el.labels[0].textContent.trim();
		}
		const wrapping = el.closest ? el.closest('label') : null;
		return wrapping ? wrapping.textContent.trim() : null;
	};

	const seen = new Set();
	const out = [];

	for (const [category, selector] of queries) {
		for (const el of document.querySelectorAll(selector)) {
			if (seen.has(el)) continue;
			seen.add(el);

			if (el.offsetParent === null) continue;

			const text = (el.innerText || el.textContent || '').trim();

			out.push({
				category,
				tag: el.tagName.toLowerCase(),
				role: attr(el, 'role'),
				label: labelFor(el),
				text: text === '' ? null : text.slice(0, 200),
				placeholder: attr(el, 'placeholder'),
				name: attr(el, 'name'),
				id: attr(el, 'id'),
				class: attr(el, 'class'),
				type: attr(el, 'type'),
				ariaLabel: attr(el, 'aria-label'),
				testId: attr(el, 'data-testid'),
			});
		}
	}

	return out;
}`

// extractedElement is one row of the in-page extraction result.
type extractedElement struct {
	Category m.Category `json:"category"`
	m.Descriptor
}

// decodeElements converts whatever the driver's Evaluate returned into
// descriptor groups. Routing through JSON keeps the null-vs-empty
// distinction the descriptor contract requires.
func decodeElements(raw any) (map[m.Category][]m.Descriptor, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction result: %w", err)
	}

	var rows []extractedElement
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unexpected extraction result shape: %w", err)
	}

	grouped := make(map[m.Category][]m.Descriptor)
	for _, row := range rows {
		grouped[row.Category] = append(grouped[row.Category], row.Descriptor)
	}

	return grouped, nil
}
