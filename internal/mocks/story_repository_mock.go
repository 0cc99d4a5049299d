package mocks

import (
	"context"

	"journal-server/internal/model"
	"journal-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoryRepository is a mock type for the StoryRepository type
type MockStoryRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, story
func (_m *MockStoryRepository) Create(ctx context.Context, story *model.Story) (*model.Story, error) {
	ret := _m.Called(ctx, story)

	var r0 *model.Story
	if rf, ok := ret.Get(0).(func(context.Context, *model.Story) *model.Story); ok {
		r0 = rf(ctx, story)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Story)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *model.Story) error); ok {
		r1 = rf(ctx, story)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockStoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Story, error) {
	ret := _m.Called(ctx, id)

	var r0 *model.Story
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *model.Story); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Story)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *MockStoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Story, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*model.Story
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*model.Story); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Story)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, story
func (_m *MockStoryRepository) Update(ctx context.Context, story *model.Story) (*model.Story, error) {
	ret := _m.Called(ctx, story)

	var r0 *model.Story
	if rf, ok := ret.Get(0).(func(context.Context, *model.Story) *model.Story); ok {
		r0 = rf(ctx, story)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Story)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *model.Story) error); ok {
		r1 = rf(ctx, story)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// NewMockStoryRepository creates a new instance of MockStoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStoryRepository(t interface {
	mock.TestingT
	Helper()
}) *MockStoryRepository {
	m := &MockStoryRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.StoryRepository = (*MockStoryRepository)(nil)
