package sitesetting

import "context"

// Repository persists the solo settings row.
type Repository interface {
	// Get returns the solo row, or nil when it has never been saved.
	Get(ctx context.Context) (*SiteSetting, error)
	// Upsert creates or replaces the solo row.
	Upsert(ctx context.Context, setting *SiteSetting) error
}
