package mocks

import (
	"context"

	"journalfetch/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockOnboarding struct {
	mock.Mock
}

func (m *MockOnboarding) Popup() model.Popup {
	args := m.Called()
	return args.Get(0).(model.Popup)
}

func (m *MockOnboarding) SetDontShowAgain(v bool) model.Popup {
	args := m.Called(v)
	return args.Get(0).(model.Popup)
}

func (m *MockOnboarding) Dismiss(ctx context.Context) model.Popup {
	args := m.Called(ctx)
	return args.Get(0).(model.Popup)
}
