package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetSuppressPopup(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) SetSuppressPopup(ctx context.Context, suppress bool) error {
	args := m.Called(ctx, suppress)
	return args.Error(0)
}
