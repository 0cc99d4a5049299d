package mocks

import (
	"context"

	"journal-server/internal/model"
	"journal-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCoachNotesRepository is a mock type for the CoachNotesRepository type
type MockCoachNotesRepository struct {
	mock.Mock
}

// Upsert provides a mock function with given fields: ctx, storyID, feedback
func (_m *MockCoachNotesRepository) Upsert(ctx context.Context, storyID uuid.UUID, feedback *model.CoachFeedback) (*model.CoachNotes, error) {
	ret := _m.Called(ctx, storyID, feedback)

	var r0 *model.CoachNotes
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *model.CoachFeedback) *model.CoachNotes); ok {
		r0 = rf(ctx, storyID, feedback)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.CoachNotes)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *model.CoachFeedback) error); ok {
		r1 = rf(ctx, storyID, feedback)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// GetByStoryID provides a mock function with given fields: ctx, storyID
func (_m *MockCoachNotesRepository) GetByStoryID(ctx context.Context, storyID uuid.UUID) (*model.CoachNotes, error) {
	ret := _m.Called(ctx, storyID)

	var r0 *model.CoachNotes
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *model.CoachNotes); ok {
		r0 = rf(ctx, storyID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.CoachNotes)
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

// NewMockCoachNotesRepository creates a new instance of MockCoachNotesRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCoachNotesRepository(t interface {
	mock.TestingT
	Helper()
}) *MockCoachNotesRepository {
	m := &MockCoachNotesRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.CoachNotesRepository = (*MockCoachNotesRepository)(nil)
