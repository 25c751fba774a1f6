package comment

import (
	"context"
	"errors"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/sirupsen/logrus"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	likeRepo    domain.CommentLikeRepository
	bloomRepo   domain.BloomRepository
	syncWorker  domain.LikeCountSyncWorker
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	threadRepo domain.ThreadRepository,
	likeRepo domain.CommentLikeRepository,
	bloomRepo domain.BloomRepository,
	syncWorker domain.LikeCountSyncWorker,
) *service {
	return &service{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
		likeRepo:    likeRepo,
		bloomRepo:   bloomRepo,
		syncWorker:  syncWorker,
	}
}

func (s *service) mustThreadExist(ctx context.Context, threadID string) error {
	exists, err := s.bloomRepo.Exists(ctx, threadID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %s does not exist", threadID)
		return domain.ErrNotFound
	}

	return s.threadRepo.VerifyExists(ctx, threadID)
}

func (s *service) Add(ctx context.Context, userID, threadID string, payload map[string]any) (domain.AddedComment, error) {
	if err := s.mustThreadExist(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	newComment, err := domain.NewCommentFromPayload(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}

	return s.commentRepo.Add(ctx, userID, threadID, newComment)
}

// Delete verifies existence before ownership so a missing comment surfaces
// as 404, never 403.
func (s *service) Delete(ctx context.Context, userID, threadID, commentID string) error {
	if err := s.mustThreadExist(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyExists(ctx, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyOwner(ctx, commentID, userID); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// ToggleLike infers intent from current state: an existing like is removed,
// an absent one created. Two racing toggles can both observe "absent"; the
// unique key on (comment_id, user_id) is the backstop, no locking here.
func (s *service) ToggleLike(ctx context.Context, userID, threadID, commentID string) error {
	if err := s.mustThreadExist(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyExists(ctx, commentID); err != nil {
		return err
	}

	_, err := s.likeRepo.Get(ctx, commentID, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if _, err := s.likeRepo.Add(ctx, commentID, userID); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err := s.likeRepo.Delete(ctx, commentID, userID); err != nil {
			return err
		}
	}

	s.syncWorker.Send(commentID)
	return nil
}
