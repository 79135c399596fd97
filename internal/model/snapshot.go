package model

import "time"

// Snapshot is the persisted metadata for one generation run. It is the
// unit of comparison for drift detection across runs.
type Snapshot struct {
	URL          string        `json:"url"`
	Page         string        `json:"page"`
	GeneratedAt  time.Time     `json:"generatedAt"`
	ElementCount int           `json:"elementCount"`
	Elements     ResolvedBatch `json:"elements"`
	Screenshot   string        `json:"screenshot,omitempty"`
	Config       Config        `json:"config"`
}

// NewSnapshot assembles snapshot metadata for a resolved batch.
func NewSnapshot(page *Page, name string, batch ResolvedBatch, cfg Config, screenshot string, at time.Time) *Snapshot {
	return &Snapshot{
		URL:          page.URL,
		Page:         name,
		GeneratedAt:  at,
		ElementCount: len(batch),
		Elements:     batch,
		Screenshot:   screenshot,
		Config:       cfg,
	}
}
