package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"journalfetch/internal/model"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, id string) (*model.Fetched, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fetched), args.Error(1)
}
