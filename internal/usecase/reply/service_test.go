package reply_test

import (
	"context"
	"testing"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type replyMocks struct {
	replyRepo   *mocks.ReplyRepository
	threadRepo  *mocks.ThreadRepository
	commentRepo *mocks.CommentRepository
	bloomRepo   *mocks.BloomRepository
}

func newReplyMocks() replyMocks {
	return replyMocks{
		replyRepo:   new(mocks.ReplyRepository),
		threadRepo:  new(mocks.ThreadRepository),
		commentRepo: new(mocks.CommentRepository),
		bloomRepo:   new(mocks.BloomRepository),
	}
}

func (m replyMocks) service() domain.ReplyUsecase {
	return reply.NewService(m.replyRepo, m.threadRepo, m.commentRepo, m.bloomRepo)
}

func (m replyMocks) threadExists(threadID string) {
	m.bloomRepo.On("Exists", mock.Anything, threadID).Return(true, nil).Once()
	m.threadRepo.On("VerifyExists", mock.Anything, threadID).Return(nil).Once()
}

func TestReplyAdd(t *testing.T) {
	payload := map[string]any{"content": "a reply"}
	added := domain.AddedReply{ID: "reply-123", Content: "a reply", Owner: "user-123"}

	t.Run("success", func(t *testing.T) {
		m := newReplyMocks()
		m.threadExists("thread-123")
		m.commentRepo.On("VerifyExists", mock.Anything, "comment-123").Return(nil).Once()
		m.replyRepo.On("Add", mock.Anything, "comment-123", "user-123", domain.NewReply{Content: "a reply"}).
			Return(added, nil).Once()

		got, err := m.service().Add(context.Background(), "user-123", "thread-123", "comment-123", payload)

		require.NoError(t, err)
		assert.Equal(t, added, got)
		m.replyRepo.AssertExpectations(t)
	})

	t.Run("missing thread is checked first", func(t *testing.T) {
		m := newReplyMocks()
		m.bloomRepo.On("Exists", mock.Anything, "thread-999").Return(true, nil).Once()
		m.threadRepo.On("VerifyExists", mock.Anything, "thread-999").Return(domain.ErrNotFound).Once()

		_, err := m.service().Add(context.Background(), "user-123", "thread-999", "comment-123", payload)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		m.commentRepo.AssertNotCalled(t, "VerifyExists")
	})

	t.Run("missing comment is checked before the payload", func(t *testing.T) {
		m := newReplyMocks()
		m.threadExists("thread-123")
		m.commentRepo.On("VerifyExists", mock.Anything, "comment-999").Return(domain.ErrNotFound).Once()

		_, err := m.service().Add(context.Background(), "user-123", "thread-123", "comment-999", map[string]any{})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		m.replyRepo.AssertNotCalled(t, "Add")
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		m := newReplyMocks()
		m.threadExists("thread-123")
		m.commentRepo.On("VerifyExists", mock.Anything, "comment-123").Return(nil).Once()

		_, err := m.service().Add(context.Background(), "user-123", "thread-123", "comment-123", map[string]any{"content": ""})

		assert.EqualError(t, err, "NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
		m.replyRepo.AssertNotCalled(t, "Add")
	})
}

func TestReplyDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m := newReplyMocks()
		m.threadExists("thread-123")
		m.commentRepo.On("VerifyExists", mock.Anything, "comment-123").Return(nil).Once()
		m.replyRepo.On("VerifyExists", mock.Anything, "reply-123").Return(nil).Once()
		m.replyRepo.On("VerifyOwner", mock.Anything, "reply-123", "user-123").Return(nil).Once()
		m.replyRepo.On("Delete", mock.Anything, "reply-123").Return(nil).Once()

		require.NoError(t, m.service().Delete(context.Background(), "user-123", "thread-123", "comment-123", "reply-123"))
		m.replyRepo.AssertExpectations(t)
	})

	t.Run("missing reply surfaces before ownership", func(t *testing.T) {
		m := newReplyMocks()
		m.threadExists("thread-123")
		m.commentRepo.On("VerifyExists", mock.Anything, "comment-123").Return(nil).Once()
		m.replyRepo.On("VerifyExists", mock.Anything, "reply-999").Return(domain.ErrNotFound).Once()

		err := m.service().Delete(context.Background(), "user-123", "thread-123", "comment-123", "reply-999")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		m.replyRepo.AssertNotCalled(t, "VerifyOwner")
	})

	t.Run("non-owner is rejected before the delete", func(t *testing.T) {
		m := newReplyMocks()
		m.threadExists("thread-123")
		m.commentRepo.On("VerifyExists", mock.Anything, "comment-123").Return(nil).Once()
		m.replyRepo.On("VerifyExists", mock.Anything, "reply-123").Return(nil).Once()
		m.replyRepo.On("VerifyOwner", mock.Anything, "reply-123", "user-456").Return(domain.ErrForbidden).Once()

		err := m.service().Delete(context.Background(), "user-456", "thread-123", "comment-123", "reply-123")

		assert.ErrorIs(t, err, domain.ErrForbidden)
		m.replyRepo.AssertNotCalled(t, "Delete")
	})
}
