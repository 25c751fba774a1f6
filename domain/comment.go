package domain

import (
	"context"
	"time"
)

// CommentDeletedPlaceholder replaces the content of a soft-deleted comment on
// every read. The stored content is never exposed again once deleted.
const CommentDeletedPlaceholder = "**comment deleted**"

// Comment is a first-level reply to a thread as read from storage.
// Username is denormalized from the owning user.
type Comment struct {
	ID        string
	ThreadID  string
	Owner     string
	Username  string
	Content   string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// NewComment is a validated creation payload for a comment.
type NewComment struct {
	Content string
}

func NewCommentFromPayload(payload map[string]any) (NewComment, error) {
	content := payload["content"]
	if isBlank(content) {
		return NewComment{}, ContentValidationError{"NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"}
	}

	contentStr, ok := content.(string)
	if !ok {
		return NewComment{}, ContentValidationError{"NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"}
	}

	return NewComment{Content: contentStr}, nil
}

// AddedComment is the creation acknowledgement returned to the caller.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(id, content, owner string) (AddedComment, error) {
	if id == "" || content == "" || owner == "" {
		return AddedComment{}, ContentValidationError{"ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"}
	}
	return AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// DetailedComment is the read model for a comment inside a thread detail,
// soft-delete masking already applied.
type DetailedComment struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Date      string          `json:"date"`
	Content   string          `json:"content"`
	LikeCount int64           `json:"like_count"`
	Replies   []DetailedReply `json:"replies"`
}

// DetailedCommentPayload carries the raw pieces a DetailedComment is built
// from. DeletedAt stays nullable: a present nil means the comment is live.
// Replies must be non-nil so a comment without replies serializes as [].
type DetailedCommentPayload struct {
	ID        string
	Username  string
	Content   string
	Date      string
	DeletedAt *string
	LikeCount int64
	Replies   []DetailedReply
}

func NewDetailedComment(p DetailedCommentPayload) (DetailedComment, error) {
	if p.ID == "" || p.Username == "" || p.Content == "" || p.Date == "" || p.Replies == nil {
		return DetailedComment{}, ContentValidationError{"DETAILED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"}
	}
	if _, err := time.Parse(TimeLayout, p.Date); err != nil {
		return DetailedComment{}, ContentValidationError{"DETAILED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"}
	}
	if p.DeletedAt != nil {
		if _, err := time.Parse(TimeLayout, *p.DeletedAt); err != nil {
			return DetailedComment{}, ContentValidationError{"DETAILED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"}
		}
	}

	content := p.Content
	if p.DeletedAt != nil {
		content = CommentDeletedPlaceholder
	}

	return DetailedComment{
		ID:        p.ID,
		Username:  p.Username,
		Date:      p.Date,
		Content:   content,
		LikeCount: p.LikeCount,
		Replies:   p.Replies,
	}, nil
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	Add(ctx context.Context, ownerID, threadID string, c NewComment) (AddedComment, error)

	// Delete soft-deletes the comment by stamping deleted_at. Returns an
	// InvariantError when no live row matched.
	Delete(ctx context.Context, commentID string) error

	// VerifyExists returns ErrNotFound when no comment has the given id.
	VerifyExists(ctx context.Context, commentID string) error

	// VerifyOwner returns ErrForbidden when the comment is not owned by userID.
	VerifyOwner(ctx context.Context, commentID, userID string) error

	// FetchByThreadID returns the thread's comments, deleted ones included,
	// ordered by creation time ascending.
	FetchByThreadID(ctx context.Context, threadID string) ([]Comment, error)
}

// CommentUsecase defines the business logic contract for comments.
type CommentUsecase interface {
	Add(ctx context.Context, userID, threadID string, payload map[string]any) (AddedComment, error)
	Delete(ctx context.Context, userID, threadID, commentID string) error

	// ToggleLike flips the like of (commentID, userID): present likes are
	// removed, absent ones created.
	ToggleLike(ctx context.Context, userID, threadID, commentID string) error
}
