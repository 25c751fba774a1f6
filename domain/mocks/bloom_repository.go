package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// BloomRepository is a mock type for domain.BloomRepository
type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
