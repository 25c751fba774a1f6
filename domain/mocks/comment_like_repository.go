package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/stretchr/testify/mock"
)

// CommentLikeRepository is a mock type for domain.CommentLikeRepository
type CommentLikeRepository struct {
	mock.Mock
}

func (m *CommentLikeRepository) Get(ctx context.Context, commentID, userID string) (domain.CommentLike, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Get(0).(domain.CommentLike), args.Error(1)
}

func (m *CommentLikeRepository) Add(ctx context.Context, commentID, userID string) (domain.CommentLike, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Get(0).(domain.CommentLike), args.Error(1)
}

func (m *CommentLikeRepository) Delete(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *CommentLikeRepository) CountByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
