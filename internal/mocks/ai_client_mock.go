package mocks

import (
	"context"

	"journal-server/internal/ai"

	"github.com/stretchr/testify/mock"
)

// MockAIClient is a mock type for the ai.Client type
type MockAIClient struct {
	mock.Mock
}

// Complete provides a mock function with given fields: ctx, systemPrompt, userPrompt
func (_m *MockAIClient) Complete(ctx context.Context, systemPrompt string, userPrompt string) (*ai.Result, error) {
	ret := _m.Called(ctx, systemPrompt, userPrompt)

	var r0 *ai.Result
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *ai.Result); ok {
		r0 = rf(ctx, systemPrompt, userPrompt)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ai.Result)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, systemPrompt, userPrompt)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockAIClient creates a new instance of MockAIClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAIClient(t interface {
	mock.TestingT
	Helper()
}) *MockAIClient {
	m := &MockAIClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.Client = (*MockAIClient)(nil)
