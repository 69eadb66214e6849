package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Store(ctx context.Context, id string, data []byte) (string, error) {
	args := m.Called(ctx, id, data)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Remove(ctx context.Context, localPath string) error {
	args := m.Called(ctx, localPath)
	return args.Error(0)
}
