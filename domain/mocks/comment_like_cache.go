package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// CommentLikeCache is a mock type for domain.CommentLikeCache
type CommentLikeCache struct {
	mock.Mock
}

func (m *CommentLikeCache) GetCounts(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *CommentLikeCache) SetCounts(ctx context.Context, counts map[string]int64) error {
	args := m.Called(ctx, counts)
	return args.Error(0)
}

func (m *CommentLikeCache) DeleteCount(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}
