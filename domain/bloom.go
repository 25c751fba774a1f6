package domain

import "context"

type BloomRepository interface {
	// Add puts an id into the filter
	Add(ctx context.Context, id string) error

	// Exists checks whether an id may exist.
	// true: possibly exists (check the store to be sure)
	// false: definitely absent (safe to answer 404 right away)
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd loads many ids at once, used at startup
	BulkAdd(ctx context.Context, ids []string) error
}
