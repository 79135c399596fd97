package model

// ModifiedPair holds the old and new resolution of one identifier whose
// locator expression changed between snapshots.
type ModifiedPair struct {
	Old ResolvedElement `json:"old"`
	New ResolvedElement `json:"new"`
}

// ChangeReport classifies every identifier present in either of two
// batches into exactly one bucket. Elements are held by value so the
// report stays serializable independently of the input batches.
type ChangeReport struct {
	Added     []ResolvedElement `json:"added"`
	Removed   []ResolvedElement `json:"removed"`
	Modified  []ModifiedPair    `json:"modified"`
	Unchanged []ResolvedElement `json:"unchanged"`
}

// HasChanges reports drift: true iff any of added, removed or modified
// is non-empty.
func (r ChangeReport) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Modified) > 0
}
