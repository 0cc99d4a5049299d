package service

import (
	"context"
	"errors"

	"journal-server/internal/model"
	"journal-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}

// StoryWithDetails pairs a story with its analysis projection. Details is nil
// exactly when no analysis has ever completed for the story; that is not an
// error.
type StoryWithDetails struct {
	Story   *model.Story        `json:"story"`
	Details *model.StoryDetails `json:"details"`
}

// StoryService handles journal CRUD with per-user ownership checks.
type StoryService struct {
	stories repository.StoryRepository
	details repository.StoryDetailsRepository
	logger  *zap.Logger
}

// NewStoryService creates a StoryService.
func NewStoryService(stories repository.StoryRepository, details repository.StoryDetailsRepository, logger *zap.Logger) *StoryService {
	return &StoryService{
		stories: stories,
		details: details,
		logger:  logger.Named("StoryService"),
	}
}

// CreateStory stores a new journal entry for the user.
func (s *StoryService) CreateStory(ctx context.Context, story *model.Story) (*model.Story, error) {
	if story.FreeformText == "" {
		return nil, model.ErrStoryTextRequired
	}
	return s.stories.Create(ctx, story)
}

// GetOwnedStory returns the story only when it belongs to the user. A
// mismatch reads as not-found so the API does not leak other users' ids.
func (s *StoryService) GetOwnedStory(ctx context.Context, storyID, userID uuid.UUID) (*model.Story, error) {
	story, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story.UserID != userID {
		s.logger.Warn("Story ownership mismatch",
			zap.String("storyID", storyID.String()),
			zap.String("userID", userID.String()),
		)
		return nil, model.ErrNotFound
	}
	return story, nil
}

// ListStories returns the user's stories, newest first.
func (s *StoryService) ListStories(ctx context.Context, userID uuid.UUID) ([]*model.Story, error) {
	return s.stories.ListByUser(ctx, userID)
}

// UpdateStory updates a story the user owns.
func (s *StoryService) UpdateStory(ctx context.Context, userID uuid.UUID, story *model.Story) (*model.Story, error) {
	if _, err := s.GetOwnedStory(ctx, story.ID, userID); err != nil {
		return nil, err
	}
	return s.stories.Update(ctx, story)
}

// DeleteStory removes a story the user owns. Details, versions and coach
// notes go with it via FK cascade.
func (s *StoryService) DeleteStory(ctx context.Context, storyID, userID uuid.UUID) error {
	if _, err := s.GetOwnedStory(ctx, storyID, userID); err != nil {
		return err
	}
	return s.stories.Delete(ctx, storyID)
}

// FetchStoryWithDetails returns the story plus its details. Details is nil
// when the story has never been analyzed.
func (s *StoryService) FetchStoryWithDetails(ctx context.Context, storyID, userID uuid.UUID) (*StoryWithDetails, error) {
	story, err := s.GetOwnedStory(ctx, storyID, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.details.GetByStoryID(ctx, storyID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		details = nil
	}

	return &StoryWithDetails{Story: story, Details: details}, nil
}
