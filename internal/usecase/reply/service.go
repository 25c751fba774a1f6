package reply

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/sirupsen/logrus"
)

type service struct {
	replyRepo   domain.ReplyRepository
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(
	replyRepo domain.ReplyRepository,
	threadRepo domain.ThreadRepository,
	commentRepo domain.CommentRepository,
	bloomRepo domain.BloomRepository,
) *service {
	return &service{
		replyRepo:   replyRepo,
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		bloomRepo:   bloomRepo,
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

func (s *service) Add(ctx context.Context, userID, threadID, commentID string, payload map[string]any) (domain.AddedReply, error) {
	if err := s.mustThreadExist(ctx, threadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.VerifyExists(ctx, commentID); err != nil {
		return domain.AddedReply{}, err
	}

	newReply, err := domain.NewReplyFromPayload(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}

	return s.replyRepo.Add(ctx, commentID, userID, newReply)
}

// Delete walks the containment chain thread -> comment -> reply before the
// ownership check, so each missing level gets its own 404.
func (s *service) Delete(ctx context.Context, userID, threadID, commentID, replyID string) error {
	if err := s.mustThreadExist(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyExists(ctx, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyExists(ctx, replyID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyOwner(ctx, replyID, userID); err != nil {
		return err
	}

	return s.replyRepo.Delete(ctx, replyID)
}
