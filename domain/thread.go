package domain

import (
	"context"
	"time"
)

// TimeLayout is the wire format for every timestamp the forum exposes:
// ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Thread is the persisted discussion topic. Username is denormalized from the
// owning user on read paths.
type Thread struct {
	ID        string
	Title     string
	Body      string
	Owner     string
	Username  string
	CreatedAt time.Time
}

// NewThread is a validated creation payload for a thread.
type NewThread struct {
	Title string
	Body  string
}

// NewThreadFromPayload builds a NewThread from an untrusted JSON payload.
// Missing or empty required fields fail with NOT_CONTAIN_NEEDED_PROPERTY,
// present fields of the wrong type with NOT_MEET_DATA_TYPE_SPECIFICATION.
func NewThreadFromPayload(payload map[string]any) (NewThread, error) {
	title, body := payload["title"], payload["body"]
	if isBlank(title) || isBlank(body) {
		return NewThread{}, ContentValidationError{"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"}
	}

	titleStr, titleOk := title.(string)
	bodyStr, bodyOk := body.(string)
	if !titleOk || !bodyOk {
		return NewThread{}, ContentValidationError{"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"}
	}

	return NewThread{Title: titleStr, Body: bodyStr}, nil
}

// AddedThread is the creation acknowledgement returned to the caller.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(id, title, owner string) (AddedThread, error) {
	if id == "" || title == "" || owner == "" {
		return AddedThread{}, ContentValidationError{"ADDED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"}
	}
	return AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// DetailedThread is the read model for a thread with its full comment tree.
// It is assembled at query time and never persisted.
type DetailedThread struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Date     string            `json:"date"`
	Username string            `json:"username"`
	Comments []DetailedComment `json:"comments"`
}

// DetailedThreadPayload carries the raw pieces a DetailedThread is built from.
// Comments must be non-nil: a thread with no comments still exposes an empty
// list, never null.
type DetailedThreadPayload struct {
	ID       string
	Title    string
	Body     string
	Date     string
	Username string
	Comments []DetailedComment
}

func NewDetailedThread(p DetailedThreadPayload) (DetailedThread, error) {
	if p.ID == "" || p.Title == "" || p.Body == "" || p.Date == "" || p.Username == "" || p.Comments == nil {
		return DetailedThread{}, ContentValidationError{"DETAILED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"}
	}
	if _, err := time.Parse(TimeLayout, p.Date); err != nil {
		return DetailedThread{}, ContentValidationError{"DETAILED_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"}
	}

	return DetailedThread{
		ID:       p.ID,
		Title:    p.Title,
		Body:     p.Body,
		Date:     p.Date,
		Username: p.Username,
		Comments: p.Comments,
	}, nil
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// Add persists a new thread owned by ownerID and returns the acknowledgement.
	Add(ctx context.Context, ownerID string, t NewThread) (AddedThread, error)

	// VerifyExists returns ErrNotFound when no thread has the given id.
	VerifyExists(ctx context.Context, threadID string) error

	// GetByID returns the thread row with the owner username joined in.
	// Returns ErrNotFound if the thread doesn't exist.
	GetByID(ctx context.Context, threadID string) (Thread, error)

	// FetchIDs lists all thread ids, used to warm the bloom filter at startup.
	FetchIDs(ctx context.Context) ([]string, error)
}

// ThreadUsecase defines the business logic contract for threads.
type ThreadUsecase interface {
	Add(ctx context.Context, ownerID string, payload map[string]any) (AddedThread, error)

	// GetDetail assembles the DetailedThread read model: comments in creation
	// order, each with its replies in creation order, soft-deleted content
	// masked, like counts attached.
	GetDetail(ctx context.Context, threadID string) (DetailedThread, error)

	InitBloomFilter(ctx context.Context) error
}

// isBlank treats an absent key, an explicit null and an empty string all as a
// missing property, matching the presence pass of payload validation.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}
