package ai

import (
	"regexp"
	"strings"
	"unicode"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// Conventional step shapes resolved without an LLM round trip. Target
// phrases are matched against snapshot identifiers case-insensitively
// with suffixes and separators folded away.
var (
	navigatePattern = regexp.MustCompile(`(?i)^(?:go to|navigate to|open|visit)\s+(\S+)$`)
	clickPattern    = regexp.MustCompile(`(?i)^click(?: on)?(?: the)?\s+"?([^"]+?)"?(?:\s+(?:button|link))?$`)
	fillPattern     = regexp.MustCompile(`(?i)^(?:fill|type|enter)\s+"?([^"]+?)"?\s+(?:into|in)(?: the)?\s+"?([^"]+?)"?(?:\s+(?:field|input|box))?$`)
	selectPattern   = regexp.MustCompile(`(?i)^select\s+"?([^"]+?)"?\s+(?:from|in)(?: the)?\s+"?([^"]+?)"?$`)
	checkPattern    = regexp.MustCompile(`(?i)^(check|uncheck)(?: the)?\s+"?([^"]+?)"?(?:\s+checkbox)?$`)
	visiblePattern  = regexp.MustCompile(`(?i)^(?:assert|verify|expect)(?: that)?(?: the)?\s+"?([^"]+?)"?\s+is visible$`)
)

// MatchStep resolves a step against the deterministic patterns. It
// reports false when no pattern applies or a referenced element cannot
// be found in the snapshot, leaving the step to the AI provider.
func MatchStep(step string, snapshot *m.Snapshot) (m.Action, bool) {
	step = strings.TrimSpace(step)

	if matches := navigatePattern.FindStringSubmatch(step); matches != nil {
		return m.Action{Type: m.ActionNavigate, URL: matches[1], Description: step}, true
	}

	if matches := clickPattern.FindStringSubmatch(step); matches != nil {
		if target, ok := findElement(snapshot, matches[1]); ok {
			return targetAction(m.ActionClick, target, step), true
		}
	}

	if matches := fillPattern.FindStringSubmatch(step); matches != nil {
		if target, ok := findElement(snapshot, matches[2]); ok {
			action := targetAction(m.ActionFill, target, step)
			action.Value = matches[1]

			return action, true
		}
	}

	if matches := selectPattern.FindStringSubmatch(step); matches != nil {
		if target, ok := findElement(snapshot, matches[2]); ok {
			action := targetAction(m.ActionSelect, target, step)
			action.Value = matches[1]

			return action, true
		}
	}

	if matches := checkPattern.FindStringSubmatch(step); matches != nil {
		if target, ok := findElement(snapshot, matches[2]); ok {
			actionType := m.ActionCheck
			if strings.EqualFold(matches[1], "uncheck") {
				actionType = m.ActionUncheck
			}

			return targetAction(actionType, target, step), true
		}
	}

	if matches := visiblePattern.FindStringSubmatch(step); matches != nil {
		if target, ok := findElement(snapshot, matches[1]); ok {
			return targetAction(m.ActionAssertVisible, target, step), true
		}
	}

	if strings.EqualFold(step, "take a screenshot") || strings.EqualFold(step, "take screenshot") {
		return m.Action{Type: m.ActionScreenshot, Description: step}, true
	}

	return m.Action{}, false
}

func targetAction(t m.ActionType, target m.ResolvedElement, step string) m.Action {
	return m.Action{
		Type:        t,
		Target:      target.Identifier,
		Locator:     target.Expression,
		Description: step,
	}
}

// findElement matches a spoken target phrase to a snapshot element.
// Exact identifier matches win; otherwise the folded phrase must equal
// a folded identifier with or without its category suffix.
func findElement(snapshot *m.Snapshot, phrase string) (m.ResolvedElement, bool) {
	if snapshot == nil {
		return m.ResolvedElement{}, false
	}

	folded := foldPhrase(phrase)

	for _, element := range snapshot.Elements {
		if element.Identifier == phrase {
			return element, true
		}
	}

	for _, element := range snapshot.Elements {
		id := foldPhrase(element.Identifier)
		suffix := foldPhrase(snapshot.Config.Naming.Suffixes[element.Category])

		if id == folded || (suffix != "" && strings.TrimSuffix(id, suffix) == folded) {
			return element, true
		}
	}

	return m.ResolvedElement{}, false
}

func foldPhrase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
