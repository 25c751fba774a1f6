package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// LikeCountSyncWorker is a mock type for domain.LikeCountSyncWorker
type LikeCountSyncWorker struct {
	mock.Mock
}

func (m *LikeCountSyncWorker) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *LikeCountSyncWorker) Send(commentID string) {
	m.Called(commentID)
}
