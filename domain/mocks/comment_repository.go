package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/stretchr/testify/mock"
)

// CommentRepository is a mock type for domain.CommentRepository
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Add(ctx context.Context, ownerID, threadID string, c domain.NewComment) (domain.AddedComment, error) {
	args := m.Called(ctx, ownerID, threadID, c)
	return args.Get(0).(domain.AddedComment), args.Error(1)
}

func (m *CommentRepository) Delete(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *CommentRepository) VerifyExists(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *CommentRepository) VerifyOwner(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *CommentRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}
