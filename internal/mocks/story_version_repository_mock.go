package mocks

import (
	"context"

	"journal-server/internal/model"
	"journal-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoryVersionRepository is a mock type for the StoryVersionRepository type
type MockStoryVersionRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, version
func (_m *MockStoryVersionRepository) Create(ctx context.Context, version *model.StoryVersion) (*model.StoryVersion, error) {
	ret := _m.Called(ctx, version)

	var r0 *model.StoryVersion
	if rf, ok := ret.Get(0).(func(context.Context, *model.StoryVersion) *model.StoryVersion); ok {
		r0 = rf(ctx, version)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.StoryVersion)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *model.StoryVersion) error); ok {
		r1 = rf(ctx, version)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// ListByStory provides a mock function with given fields: ctx, storyID
func (_m *MockStoryVersionRepository) ListByStory(ctx context.Context, storyID uuid.UUID) ([]*model.StoryVersion, error) {
	ret := _m.Called(ctx, storyID)

	var r0 []*model.StoryVersion
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*model.StoryVersion); ok {
		r0 = rf(ctx, storyID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.StoryVersion)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, storyID)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockStoryVersionRepository creates a new instance of MockStoryVersionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStoryVersionRepository(t interface {
	mock.TestingT
	Helper()
}) *MockStoryVersionRepository {
	m := &MockStoryVersionRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.StoryVersionRepository = (*MockStoryVersionRepository)(nil)
