package mocks

import (
	"context"

	"journal-server/internal/model"
	"journal-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoryDetailsRepository is a mock type for the StoryDetailsRepository type
type MockStoryDetailsRepository struct {
	mock.Mock
}

// Upsert provides a mock function with given fields: ctx, storyID, result
func (_m *MockStoryDetailsRepository) Upsert(ctx context.Context, storyID uuid.UUID, result *model.AnalysisResult) (*model.StoryDetails, error) {
	ret := _m.Called(ctx, storyID, result)

	var r0 *model.StoryDetails
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *model.AnalysisResult) *model.StoryDetails); ok {
		r0 = rf(ctx, storyID, result)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.StoryDetails)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *model.AnalysisResult) error); ok {
		r1 = rf(ctx, storyID, result)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// UpdateFields provides a mock function with given fields: ctx, storyID, update
func (_m *MockStoryDetailsRepository) UpdateFields(ctx context.Context, storyID uuid.UUID, update model.StoryDetailsUpdate) error {
	ret := _m.Called(ctx, storyID, update)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.StoryDetailsUpdate) error); ok {
		r0 = rf(ctx, storyID, update)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// GetByStoryID provides a mock function with given fields: ctx, storyID
func (_m *MockStoryDetailsRepository) GetByStoryID(ctx context.Context, storyID uuid.UUID) (*model.StoryDetails, error) {
	ret := _m.Called(ctx, storyID)

	var r0 *model.StoryDetails
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *model.StoryDetails); ok {
		r0 = rf(ctx, storyID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.StoryDetails)
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

// NewMockStoryDetailsRepository creates a new instance of MockStoryDetailsRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStoryDetailsRepository(t interface {
	mock.TestingT
	Helper()
}) *MockStoryDetailsRepository {
	m := &MockStoryDetailsRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.StoryDetailsRepository = (*MockStoryDetailsRepository)(nil)
