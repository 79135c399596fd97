package domain

import (
	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// DiffMode selects how the differ decides that an element present in
// both batches was modified.
type DiffMode string

const (
	// DiffLocators compares only the rendered locator expression. A
	// descriptor change that did not alter the winning locator is
	// invisible, which keeps the report free of cosmetic noise.
	DiffLocators DiffMode = "locators"
	// DiffDescriptors additionally compares the originating descriptor,
	// surfacing attribute drift even when the locator held steady.
	DiffDescriptors DiffMode = "descriptors"
)

// Diff classifies every identifier present in either batch into exactly
// one of added, removed, modified or unchanged. Neither input batch is
// mutated; the report copies elements by value. Old-batch order drives
// removed/modified/unchanged, new-batch order drives added.
func Diff(oldBatch, newBatch m.ResolvedBatch, mode DiffMode) m.ChangeReport {
	oldIdx := oldBatch.Index()
	newIdx := newBatch.Index()

	var report m.ChangeReport

	for _, oldElem := range oldBatch {
		newElem, ok := newIdx[oldElem.Identifier]
		if !ok {
			report.Removed = append(report.Removed, oldElem)
			continue
		}

		if modified(oldElem, newElem, mode) {
			report.Modified = append(report.Modified, m.ModifiedPair{Old: oldElem, New: newElem})
			continue
		}

		report.Unchanged = append(report.Unchanged, newElem)
	}

	for _, newElem := range newBatch {
		if _, ok := oldIdx[newElem.Identifier]; !ok {
			report.Added = append(report.Added, newElem)
		}
	}

	return report
}

func modified(oldElem, newElem m.ResolvedElement, mode DiffMode) bool {
	if oldElem.Expression != newElem.Expression {
		return true
	}

	return mode == DiffDescriptors && !oldElem.Descriptor.Equal(newElem.Descriptor)
}
