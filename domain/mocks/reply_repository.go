package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/stretchr/testify/mock"
)

// ReplyRepository is a mock type for domain.ReplyRepository
type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) Add(ctx context.Context, commentID, ownerID string, r domain.NewReply) (domain.AddedReply, error) {
	args := m.Called(ctx, commentID, ownerID, r)
	return args.Get(0).(domain.AddedReply), args.Error(1)
}

func (m *ReplyRepository) FetchByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.Reply, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reply), args.Error(1)
}

func (m *ReplyRepository) VerifyExists(ctx context.Context, replyID string) error {
	args := m.Called(ctx, replyID)
	return args.Error(0)
}

func (m *ReplyRepository) VerifyOwner(ctx context.Context, replyID, userID string) error {
	args := m.Called(ctx, replyID, userID)
	return args.Error(0)
}

func (m *ReplyRepository) Delete(ctx context.Context, replyID string) error {
	args := m.Called(ctx, replyID)
	return args.Error(0)
}
