package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCoordinatedAddInvalidatesTheCache(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)
	like := domain.CommentLike{ID: "like-123", CommentID: "comment-123", UserID: "user-123"}

	db.On("Add", mock.Anything, "comment-123", "user-123").Return(like, nil).Once()
	invalidated := make(chan struct{})
	cache.On("DeleteCount", mock.Anything, "comment-123").
		Run(func(mock.Arguments) { close(invalidated) }).
		Return(nil).Once()

	repo := repository.NewCommentLikeRepository(db, cache)
	got, err := repo.Add(context.Background(), "comment-123", "user-123")

	require.NoError(t, err)
	assert.Equal(t, like, got)

	select {
	case <-invalidated:
	case <-time.After(time.Second):
		t.Fatal("cache was never invalidated")
	}
}

func TestCoordinatedDeleteInvalidatesTheCache(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)

	db.On("Delete", mock.Anything, "comment-123", "user-123").Return(nil).Once()
	invalidated := make(chan struct{})
	cache.On("DeleteCount", mock.Anything, "comment-123").
		Run(func(mock.Arguments) { close(invalidated) }).
		Return(nil).Once()

	repo := repository.NewCommentLikeRepository(db, cache)
	require.NoError(t, repo.Delete(context.Background(), "comment-123", "user-123"))

	select {
	case <-invalidated:
	case <-time.After(time.Second):
		t.Fatal("cache was never invalidated")
	}
}

func TestCoordinatedDeleteFailureSkipsInvalidation(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)

	db.On("Delete", mock.Anything, "comment-123", "user-123").Return(assert.AnError).Once()

	repo := repository.NewCommentLikeRepository(db, cache)
	err := repo.Delete(context.Background(), "comment-123", "user-123")

	assert.ErrorIs(t, err, assert.AnError)
	cache.AssertNotCalled(t, "DeleteCount")
}

func TestCoordinatedCountByCommentIDs(t *testing.T) {
	t.Run("full cache hit never reaches the database", func(t *testing.T) {
		db := new(mocks.CommentLikeRepository)
		cache := new(mocks.CommentLikeCache)

		cache.On("GetCounts", mock.Anything, []string{"comment-123", "comment-456"}).
			Return(map[string]int64{"comment-123": 2, "comment-456": 0}, nil).Once()

		repo := repository.NewCommentLikeRepository(db, cache)
		counts, err := repo.CountByCommentIDs(context.Background(), []string{"comment-123", "comment-456"})

		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"comment-123": 2, "comment-456": 0}, counts)
		db.AssertNotCalled(t, "CountByCommentIDs")
	})

	t.Run("misses are rebuilt from the database with explicit zeros", func(t *testing.T) {
		db := new(mocks.CommentLikeRepository)
		cache := new(mocks.CommentLikeCache)

		cache.On("GetCounts", mock.Anything, []string{"comment-123", "comment-456"}).
			Return(map[string]int64{"comment-123": 2}, nil).Once()
		db.On("CountByCommentIDs", mock.Anything, []string{"comment-456"}).
			Return(map[string]int64{}, nil).Once()
		cache.On("SetCounts", mock.Anything, map[string]int64{"comment-456": 0}).Return(nil).Maybe()

		repo := repository.NewCommentLikeRepository(db, cache)
		counts, err := repo.CountByCommentIDs(context.Background(), []string{"comment-123", "comment-456"})

		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"comment-123": 2, "comment-456": 0}, counts)
		db.AssertExpectations(t)
	})

	t.Run("cache failure falls back to the database", func(t *testing.T) {
		db := new(mocks.CommentLikeRepository)
		cache := new(mocks.CommentLikeCache)

		cache.On("GetCounts", mock.Anything, []string{"comment-123"}).
			Return(nil, assert.AnError).Once()
		db.On("CountByCommentIDs", mock.Anything, []string{"comment-123"}).
			Return(map[string]int64{"comment-123": 1}, nil).Once()
		cache.On("SetCounts", mock.Anything, mock.Anything).Return(nil).Maybe()

		repo := repository.NewCommentLikeRepository(db, cache)
		counts, err := repo.CountByCommentIDs(context.Background(), []string{"comment-123"})

		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"comment-123": 1}, counts)
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		repo := repository.NewCommentLikeRepository(new(mocks.CommentLikeRepository), new(mocks.CommentLikeCache))

		counts, err := repo.CountByCommentIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, counts)
	})
}
