package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/stretchr/testify/mock"
)

// ThreadRepository is a mock type for domain.ThreadRepository
type ThreadRepository struct {
	mock.Mock
}

func (m *ThreadRepository) Add(ctx context.Context, ownerID string, t domain.NewThread) (domain.AddedThread, error) {
	args := m.Called(ctx, ownerID, t)
	return args.Get(0).(domain.AddedThread), args.Error(1)
}

func (m *ThreadRepository) VerifyExists(ctx context.Context, threadID string) error {
	args := m.Called(ctx, threadID)
	return args.Error(0)
}

func (m *ThreadRepository) GetByID(ctx context.Context, threadID string) (domain.Thread, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadRepository) FetchIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
