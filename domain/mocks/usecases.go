package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/stretchr/testify/mock"
)

// ThreadUsecase is a mock type for domain.ThreadUsecase
type ThreadUsecase struct {
	mock.Mock
}

func (m *ThreadUsecase) Add(ctx context.Context, ownerID string, payload map[string]any) (domain.AddedThread, error) {
	args := m.Called(ctx, ownerID, payload)
	return args.Get(0).(domain.AddedThread), args.Error(1)
}

func (m *ThreadUsecase) GetDetail(ctx context.Context, threadID string) (domain.DetailedThread, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(domain.DetailedThread), args.Error(1)
}

func (m *ThreadUsecase) InitBloomFilter(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// CommentUsecase is a mock type for domain.CommentUsecase
type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) Add(ctx context.Context, userID, threadID string, payload map[string]any) (domain.AddedComment, error) {
	args := m.Called(ctx, userID, threadID, payload)
	return args.Get(0).(domain.AddedComment), args.Error(1)
}

func (m *CommentUsecase) Delete(ctx context.Context, userID, threadID, commentID string) error {
	args := m.Called(ctx, userID, threadID, commentID)
	return args.Error(0)
}

func (m *CommentUsecase) ToggleLike(ctx context.Context, userID, threadID, commentID string) error {
	args := m.Called(ctx, userID, threadID, commentID)
	return args.Error(0)
}

// ReplyUsecase is a mock type for domain.ReplyUsecase
type ReplyUsecase struct {
	mock.Mock
}

func (m *ReplyUsecase) Add(ctx context.Context, userID, threadID, commentID string, payload map[string]any) (domain.AddedReply, error) {
	args := m.Called(ctx, userID, threadID, commentID, payload)
	return args.Get(0).(domain.AddedReply), args.Error(1)
}

func (m *ReplyUsecase) Delete(ctx context.Context, userID, threadID, commentID, replyID string) error {
	args := m.Called(ctx, userID, threadID, commentID, replyID)
	return args.Error(0)
}

// UserUsecase is a mock type for domain.UserUsecase
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, username, password, fullname string) (domain.User, error) {
	args := m.Called(ctx, username, password, fullname)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserUsecase) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}
