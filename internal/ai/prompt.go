package ai

import (
	"encoding/json"
	"fmt"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

const systemPrompt = `You translate one natural-language test step into exactly one browser action.

Respond with a single JSON object and nothing else:
{
  "type": "navigate|click|fill|select|check|uncheck|assertVisible|screenshot",
  "target": "identifier of the element from the page snapshot, when one is referenced",
  "locator": "the element's locator expression, copied verbatim from the snapshot",
  "value": "text to type or option to select, when applicable",
  "url": "destination, for navigate only",
  "description": "short restatement of the step"
}

Rules:
- Pick the element whose identifier or attributes best match the step.
- Copy locator expressions exactly; never invent new ones.
- If the step does not reference any element, omit target and locator.`

func buildUserPrompt(step string, snapshot *m.Snapshot) (string, error) {
	if snapshot == nil {
		return "", fmt.Errorf("no snapshot available for step interpretation")
	}

	elements, err := json.MarshalIndent(snapshot.Elements, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot elements: %w", err)
	}

	return fmt.Sprintf("Page: %s (%s)\n\nElements:\n%s\n\nStep: %s", snapshot.Page, snapshot.URL, elements, step), nil
}
