package model

// ResolvedElement pairs one descriptor with its chosen identifier,
// locator and strategy. Expression caches Locator.Source() so diffing
// and code generation never re-render. Descriptor is a diagnostic
// snapshot of the source element; it is never re-resolved.
type ResolvedElement struct {
	Identifier string     `json:"identifier"`
	Locator    Locator    `json:"locator"`
	Expression string     `json:"expression"`
	Category   Category   `json:"category"`
	Descriptor Descriptor `json:"descriptor"`
}

// ResolvedBatch is an ordered sequence of resolved elements, grouped by
// category in Categories order and flattened. Identifiers are pairwise
// unique after deduplication. Batches are immutable once produced.
type ResolvedBatch []ResolvedElement

// ByCategory returns the elements of one category, preserving order.
func (b ResolvedBatch) ByCategory(c Category) []ResolvedElement {
	var out []ResolvedElement
	for _, e := range b {
		if e.Category == c {
			out = append(out, e)
		}
	}

	return out
}

// Index returns an identifier lookup over the batch.
func (b ResolvedBatch) Index() map[string]ResolvedElement {
	idx := make(map[string]ResolvedElement, len(b))
	for _, e := range b {
		idx[e.Identifier] = e
	}

	return idx
}
