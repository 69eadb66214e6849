package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockLauncher struct {
	mock.Mock
}

func (m *MockLauncher) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLauncher) Open(ctx context.Context, localPath string) error {
	args := m.Called(ctx, localPath)
	return args.Error(0)
}
