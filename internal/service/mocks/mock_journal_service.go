package mocks

import (
	"context"

	"journalfetch/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) Session() model.Session {
	args := m.Called()
	return args.Get(0).(model.Session)
}

func (m *MockJournalService) Download(ctx context.Context, id string) (*model.CachedDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CachedDocument), args.Error(1)
}

func (m *MockJournalService) View(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJournalService) CachedPath() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockJournalService) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
