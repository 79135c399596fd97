// Package domain implements the pure engines of the generator: locator
// resolution, naming, deduplication, code synthesis and snapshot diffing.
package domain

import (
	"strings"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// maxLocatorTextLen bounds visible text usable as a locator argument by
// the role and text strategies.
const maxLocatorTextLen = 50

// strategyRule pairs an applicability predicate with a production rule.
// Rules never backtrack: the first applicable strategy in the configured
// priority order wins.
type strategyRule struct {
	applies func(d m.Descriptor, c m.Category) bool
	produce func(d m.Descriptor, c m.Category) m.Locator
}

var strategyRules = map[m.Strategy]strategyRule{
	m.StrategyRole: {
		applies: func(d m.Descriptor, c m.Category) bool {
			if _, ok := c.Role(); !ok {
				return false
			}

			if d.AriaLabel != nil {
				return true
			}

			return textCategory(c) && shortText(d) != nil
		},
		produce: func(d m.Descriptor, c m.Category) m.Locator {
			role, _ := c.Role()
			if d.AriaLabel != nil {
				return m.NewRoleLocator(role, *d.AriaLabel)
			}

			return m.NewRoleLocator(role, *shortText(d))
		},
	},
	m.StrategyLabel: {
		applies: func(d m.Descriptor, _ m.Category) bool { return d.Label != nil },
		produce: func(d m.Descriptor, _ m.Category) m.Locator {
			return m.NewLocator(m.StrategyLabel, *d.Label)
		},
	},
	m.StrategyPlaceholder: {
		applies: func(d m.Descriptor, _ m.Category) bool { return d.Placeholder != nil },
		produce: func(d m.Descriptor, _ m.Category) m.Locator {
			return m.NewLocator(m.StrategyPlaceholder, *d.Placeholder)
		},
	},
	m.StrategyTestID: {
		applies: func(d m.Descriptor, _ m.Category) bool { return d.TestID != nil },
		produce: func(d m.Descriptor, _ m.Category) m.Locator {
			return m.NewLocator(m.StrategyTestID, *d.TestID)
		},
	},
	m.StrategyText: {
		applies: func(d m.Descriptor, _ m.Category) bool { return shortText(d) != nil },
		produce: func(d m.Descriptor, _ m.Category) m.Locator {
			return m.NewLocator(m.StrategyText, *shortText(d))
		},
	},
	m.StrategyCSS: {
		applies: func(m.Descriptor, m.Category) bool { return true },
		produce: produceCSS,
	},
}

// ResolveLocator walks the configured priority list and returns the
// first applicable strategy's locator. The chain is total: even if the
// configured list omits every applicable strategy, the tag-name fallback
// still produces a result. Only an empty priority list is an error.
func ResolveLocator(d m.Descriptor, c m.Category, priorities []m.Strategy) (m.Locator, error) {
	if len(priorities) == 0 {
		return m.Locator{}, m.ErrEmptyPriorities
	}

	for _, strategy := range priorities {
		rule, ok := strategyRules[strategy]
		if !ok {
			continue
		}

		if rule.applies(d, c) {
			return rule.produce(d, c), nil
		}
	}

	return produceCSS(d, c), nil
}

// produceCSS is the unconditional fallback: id, then name attribute,
// then first class token, then the bare tag name.
func produceCSS(d m.Descriptor, _ m.Category) m.Locator {
	if d.ID != nil && strings.TrimSpace(*d.ID) != "" {
		return m.NewLocator(m.StrategyCSS, "#"+strings.TrimSpace(*d.ID))
	}

	if d.Name != nil && strings.TrimSpace(*d.Name) != "" {
		return m.NewLocator(m.StrategyCSS, d.Tag+`[name="`+strings.TrimSpace(*d.Name)+`"]`)
	}

	if d.Class != nil {
		if token := firstClassToken(*d.Class); token != "" {
			return m.NewLocator(m.StrategyCSS, "."+token)
		}
	}

	return m.NewLocator(m.StrategyCSS, d.Tag)
}

func firstClassToken(classList string) string {
	for _, token := range strings.Fields(classList) {
		return token
	}

	return ""
}

// textCategory reports the categories whose visible text can serve as a
// role-strategy accessible name.
func textCategory(c m.Category) bool {
	return c == m.CategoryButton || c == m.CategoryLink || c == m.CategoryHeading
}

// shortText returns the trimmed visible text when it is present, not
// blank and within the locator length bound.
func shortText(d m.Descriptor) *string {
	if d.Text == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*d.Text)
	if trimmed == "" || len([]rune(trimmed)) > maxLocatorTextLen {
		return nil
	}

	return &trimmed
}
