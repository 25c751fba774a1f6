package thread

import (
	"context"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/sirupsen/logrus"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.CommentLikeRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ThreadUsecase = (*service)(nil)

func NewService(
	threadRepo domain.ThreadRepository,
	commentRepo domain.CommentRepository,
	replyRepo domain.ReplyRepository,
	likeRepo domain.CommentLikeRepository,
	bloomRepo domain.BloomRepository,
) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		likeRepo:    likeRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) Add(ctx context.Context, ownerID string, payload map[string]any) (domain.AddedThread, error) {
	newThread, err := domain.NewThreadFromPayload(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}

	added, err := s.threadRepo.Add(ctx, ownerID, newThread)
	if err != nil {
		return domain.AddedThread{}, err
	}

	if err := s.bloomRepo.Add(ctx, added.ID); err != nil {
		// the filter only short-circuits definite misses, a failed add just
		// costs one extra store lookup later
		logrus.Warnf("failed to add thread %s to bloom filter: %v", added.ID, err)
	}

	return added, nil
}

// mustExist answers ErrNotFound from the bloom filter without touching the
// store when the id is definitely absent; a filter hit can be a false
// positive, so the store check still runs.
func (s *service) mustExist(ctx context.Context, threadID string) error {
	exists, err := s.bloomRepo.Exists(ctx, threadID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %s does not exist", threadID)
		return domain.ErrNotFound
	}

	return s.threadRepo.VerifyExists(ctx, threadID)
}

func (s *service) GetDetail(ctx context.Context, threadID string) (domain.DetailedThread, error) {
	if err := s.mustExist(ctx, threadID); err != nil {
		return domain.DetailedThread{}, err
	}

	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return domain.DetailedThread{}, err
	}

	comments, err := s.commentRepo.FetchByThreadID(ctx, threadID)
	if err != nil {
		return domain.DetailedThread{}, err
	}

	commentIDs := make([]string, len(comments))
	for i, comment := range comments {
		commentIDs[i] = comment.ID
	}

	replies, err := s.replyRepo.FetchByCommentIDs(ctx, commentIDs)
	if err != nil {
		return domain.DetailedThread{}, err
	}

	likeCounts, err := s.likeRepo.CountByCommentIDs(ctx, commentIDs)
	if err != nil {
		return domain.DetailedThread{}, err
	}

	// replies arrive ordered by creation time, grouping keeps that order
	replyMap := make(map[string][]domain.DetailedReply)
	for _, reply := range replies {
		detailed, err := domain.NewDetailedReply(domain.DetailedReplyPayload{
			ID:        reply.ID,
			Content:   reply.Content,
			Date:      reply.CreatedAt.UTC().Format(domain.TimeLayout),
			Username:  reply.Username,
			DeletedAt: formatNullableTime(reply.DeletedAt),
		})
		if err != nil {
			return domain.DetailedThread{}, err
		}
		replyMap[reply.CommentID] = append(replyMap[reply.CommentID], detailed)
	}

	detailedComments := make([]domain.DetailedComment, 0, len(comments))
	for _, comment := range comments {
		commentReplies, ok := replyMap[comment.ID]
		if !ok {
			commentReplies = []domain.DetailedReply{}
		}

		detailed, err := domain.NewDetailedComment(domain.DetailedCommentPayload{
			ID:        comment.ID,
			Username:  comment.Username,
			Content:   comment.Content,
			Date:      comment.CreatedAt.UTC().Format(domain.TimeLayout),
			DeletedAt: formatNullableTime(comment.DeletedAt),
			LikeCount: likeCounts[comment.ID],
			Replies:   commentReplies,
		})
		if err != nil {
			return domain.DetailedThread{}, err
		}
		detailedComments = append(detailedComments, detailed)
	}

	return domain.NewDetailedThread(domain.DetailedThreadPayload{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.CreatedAt.UTC().Format(domain.TimeLayout),
		Username: thread.Username,
		Comments: detailedComments,
	})
}

func (s *service) InitBloomFilter(ctx context.Context) error {
	ids, err := s.threadRepo.FetchIDs(ctx)
	if err != nil {
		return err
	}
	return s.bloomRepo.BulkAdd(ctx, ids)
}

func formatNullableTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(domain.TimeLayout)
	return &formatted
}
