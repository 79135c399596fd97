package domain

import (
	"fmt"
	"strings"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// Generator runs the resolution pipeline for one configuration. It is
// stateless beyond the config value it was built with and safe to use
// from concurrent runs on independent pages.
type Generator struct {
	cfg m.Config
}

// NewGenerator validates the configuration and returns a generator.
// An empty priority list fails here rather than mid-run.
func NewGenerator(cfg m.Config) (*Generator, error) {
	if len(cfg.Priorities) == 0 {
		return nil, m.ErrEmptyPriorities
	}

	return &Generator{cfg: cfg}, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() m.Config {
	return g.cfg
}

// Resolve converts extracted descriptors into a deduplicated batch.
// Descriptors matching an ignore rule are dropped before resolution.
// Categories are traversed in generation order and flattened; the
// result carries pairwise-unique identifiers.
func (g *Generator) Resolve(page *m.Page) (m.ResolvedBatch, error) {
	var batch m.ResolvedBatch

	for _, category := range m.Categories {
		for _, descriptor := range page.Descriptors[category] {
			if g.ignored(descriptor) {
				continue
			}

			locator, err := ResolveLocator(descriptor, category, g.cfg.Priorities)
			if err != nil {
				return nil, fmt.Errorf("resolve %s element: %w", category, err)
			}

			batch = append(batch, m.ResolvedElement{
				Identifier: ResolveName(descriptor, category, g.cfg.Naming),
				Locator:    locator,
				Expression: locator.Source(),
				Category:   category,
				Descriptor: descriptor,
			})
		}
	}

	batch = Deduplicate(batch)

	// A duplicate surviving deduplication is a defect, not a runtime
	// condition; fail the run loudly.
	if err := verifyUnique(batch); err != nil {
		return nil, err
	}

	return batch, nil
}

func (g *Generator) ignored(d m.Descriptor) bool {
	if d.Class != nil {
		for _, sub := range g.cfg.Ignore.Classes {
			if sub != "" && strings.Contains(*d.Class, sub) {
				return true
			}
		}
	}

	if d.ID != nil {
		for _, sub := range g.cfg.Ignore.IDs {
			if sub != "" && strings.Contains(*d.ID, sub) {
				return true
			}
		}
	}

	if d.Role != nil {
		for _, role := range g.cfg.Ignore.Roles {
			if role != "" && *d.Role == role {
				return true
			}
		}
	}

	return false
}

func verifyUnique(batch m.ResolvedBatch) error {
	seen := make(map[string]struct{}, len(batch))
	for _, e := range batch {
		if _, dup := seen[e.Identifier]; dup {
			return fmt.Errorf("internal error: duplicate identifier %q survived deduplication", e.Identifier)
		}

		seen[e.Identifier] = struct{}{}
	}

	return nil
}
