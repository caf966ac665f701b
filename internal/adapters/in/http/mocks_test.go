package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockHandler stands in for any use case handler returning a response.
type MockHandler[Q any, R any] struct {
	mock.Mock
}

func (m *MockHandler[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).(R)
	return resp, args.Error(1)
}

// MockErrHandler stands in for use case handlers that only report an error.
type MockErrHandler[Q any] struct {
	mock.Mock
}

func (m *MockErrHandler[Q]) Handle(ctx context.Context, q Q) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
