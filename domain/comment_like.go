package domain

import (
	"context"
	"time"
)

// CommentLike is a like record for a (comment, user) pair. At most one row per
// pair exists; the storage layer enforces the uniqueness.
type CommentLike struct {
	ID        string
	CommentID string
	UserID    string
	CreatedAt time.Time
}

// CommentLikeRepository defines the contract for like persistence.
type CommentLikeRepository interface {
	// Get returns the like for the pair, or ErrNotFound when the user has not
	// liked the comment. ErrNotFound is the explicit absent marker the toggle
	// branches on.
	Get(ctx context.Context, commentID, userID string) (CommentLike, error)

	Add(ctx context.Context, commentID, userID string) (CommentLike, error)

	// Delete removes the like. Returns an InvariantError when no row matched.
	Delete(ctx context.Context, commentID, userID string) error

	// CountByCommentIDs returns like counts keyed by comment id. Comments
	// without likes are simply absent from the map.
	CountByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error)
}

// CommentLikeCache caches per-comment like counts.
type CommentLikeCache interface {
	// GetCounts returns the cached counts for the given ids; ids without a
	// cached value are absent from the map.
	GetCounts(ctx context.Context, commentIDs []string) (map[string]int64, error)
	SetCounts(ctx context.Context, counts map[string]int64) error
	DeleteCount(ctx context.Context, commentID string) error
}

// LikeCountSyncWorker refreshes cached like counts after toggles. The database
// write itself stays on the request path; the worker only repairs the cache.
type LikeCountSyncWorker interface {
	Start(ctx context.Context)

	// Send enqueues a comment whose cached count should be recomputed.
	Send(commentID string)
}
