// Package repository provides PostgreSQL persistence for stories and their
// analysis artifacts.
package repository

import (
	"context"

	"journal-server/internal/model"

	"github.com/google/uuid"
)

// StoryRepository manages journal entries.
type StoryRepository interface {
	Create(ctx context.Context, story *model.Story) (*model.Story, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Story, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Story, error)
	Update(ctx context.Context, story *model.Story) (*model.Story, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StoryDetailsRepository manages the persisted analysis projection. Upsert is
// keyed by the unique story_id column and never produces duplicate rows.
type StoryDetailsRepository interface {
	// Upsert overwrites all content fields for the story, marks the row
	// AI-generated (user_edited = false) and returns it as stored.
	Upsert(ctx context.Context, storyID uuid.UUID, result *model.AnalysisResult) (*model.StoryDetails, error)
	// UpdateFields applies a manual partial edit and sets user_edited = true.
	UpdateFields(ctx context.Context, storyID uuid.UUID, update model.StoryDetailsUpdate) error
	// GetByStoryID returns model.ErrNotFound when the story was never analyzed.
	GetByStoryID(ctx context.Context, storyID uuid.UUID) (*model.StoryDetails, error)
}

// StoryVersionRepository stores alternative renderings of a story.
type StoryVersionRepository interface {
	Create(ctx context.Context, version *model.StoryVersion) (*model.StoryVersion, error)
	ListByStory(ctx context.Context, storyID uuid.UUID) ([]*model.StoryVersion, error)
}

// CoachNotesRepository manages coach feedback, one row per story.
type CoachNotesRepository interface {
	Upsert(ctx context.Context, storyID uuid.UUID, feedback *model.CoachFeedback) (*model.CoachNotes, error)
	GetByStoryID(ctx context.Context, storyID uuid.UUID) (*model.CoachNotes, error)
}
