package domain

import (
	"context"
	"time"
)

// ReplyDeletedPlaceholder replaces the content of a soft-deleted reply on read.
const ReplyDeletedPlaceholder = "**reply deleted**"

// Reply is a second-level reply, scoped to a comment, as read from storage.
type Reply struct {
	ID        string
	CommentID string
	Owner     string
	Username  string
	Content   string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// NewReply is a validated creation payload for a reply.
type NewReply struct {
	Content string
}

func NewReplyFromPayload(payload map[string]any) (NewReply, error) {
	content := payload["content"]
	if isBlank(content) {
		return NewReply{}, ContentValidationError{"NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY"}
	}

	contentStr, ok := content.(string)
	if !ok {
		return NewReply{}, ContentValidationError{"NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION"}
	}

	return NewReply{Content: contentStr}, nil
}

// AddedReply is the creation acknowledgement returned to the caller.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(id, content, owner string) (AddedReply, error) {
	if id == "" || content == "" || owner == "" {
		return AddedReply{}, ContentValidationError{"ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY"}
	}
	return AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// DetailedReply is the read model for a reply inside a thread detail,
// soft-delete masking already applied.
type DetailedReply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

type DetailedReplyPayload struct {
	ID        string
	Content   string
	Date      string
	Username  string
	DeletedAt *string
}

func NewDetailedReply(p DetailedReplyPayload) (DetailedReply, error) {
	if p.ID == "" || p.Content == "" || p.Date == "" || p.Username == "" {
		return DetailedReply{}, ContentValidationError{"DETAILED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY"}
	}
	if _, err := time.Parse(TimeLayout, p.Date); err != nil {
		return DetailedReply{}, ContentValidationError{"DETAILED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION"}
	}
	if p.DeletedAt != nil {
		if _, err := time.Parse(TimeLayout, *p.DeletedAt); err != nil {
			return DetailedReply{}, ContentValidationError{"DETAILED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION"}
		}
	}

	content := p.Content
	if p.DeletedAt != nil {
		content = ReplyDeletedPlaceholder
	}

	return DetailedReply{
		ID:       p.ID,
		Content:  content,
		Date:     p.Date,
		Username: p.Username,
	}, nil
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	Add(ctx context.Context, commentID, ownerID string, r NewReply) (AddedReply, error)

	// FetchByCommentIDs returns every reply attached to any of the given
	// comments, deleted ones included, ordered by creation time ascending.
	FetchByCommentIDs(ctx context.Context, commentIDs []string) ([]Reply, error)

	// VerifyExists returns ErrNotFound when no reply has the given id.
	VerifyExists(ctx context.Context, replyID string) error

	// VerifyOwner returns ErrForbidden when the reply is not owned by userID.
	VerifyOwner(ctx context.Context, replyID, userID string) error

	// Delete soft-deletes the reply. Returns an InvariantError when no live
	// row matched.
	Delete(ctx context.Context, replyID string) error
}

// ReplyUsecase defines the business logic contract for replies.
type ReplyUsecase interface {
	Add(ctx context.Context, userID, threadID, commentID string, payload map[string]any) (AddedReply, error)
	Delete(ctx context.Context, userID, threadID, commentID, replyID string) error
}
