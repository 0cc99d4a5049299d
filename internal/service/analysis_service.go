// Package service composes the analysis pipeline: format prompt, call the
// gateway, normalize the reply, track usage, persist. Each run is a single
// linear pass; any failure is terminal for that run and surfaced to the
// caller, never silently retried.
package service

import (
	"context"
	"fmt"
	"strings"

	"journal-server/internal/ai"
	"journal-server/internal/analysis"
	"journal-server/internal/model"
	"journal-server/internal/prompt"
	"journal-server/internal/repository"
	"journal-server/internal/usage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisService runs the story analysis, cleanup and coach pipelines.
type AnalysisService struct {
	aiClient ai.Client
	details  repository.StoryDetailsRepository
	versions repository.StoryVersionRepository
	coach    repository.CoachNotesRepository
	usage    *usage.Tracker
	model    string
	logger   *zap.Logger
}

// NewAnalysisService creates the pipeline orchestrator. The usage tracker is
// injected so tests can reset it and all concurrent runs share one instance.
func NewAnalysisService(
	aiClient ai.Client,
	details repository.StoryDetailsRepository,
	versions repository.StoryVersionRepository,
	coach repository.CoachNotesRepository,
	tracker *usage.Tracker,
	modelName string,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		aiClient: aiClient,
		details:  details,
		versions: versions,
		coach:    coach,
		usage:    tracker,
		model:    modelName,
		logger:   logger.Named("AnalysisService"),
	}
}

// AnalyzeStory runs the full pipeline for one story and returns the details
// row exactly as stored. Nothing is persisted unless the gateway call and the
// normalization both succeed, so the caller only ever sees durable results.
// Concurrent runs for the same story race on the upsert; the last successful
// write wins.
func (s *AnalysisService) AnalyzeStory(ctx context.Context, storyID uuid.UUID, storyText string) (*model.StoryDetails, error) {
	if strings.TrimSpace(storyText) == "" {
		return nil, model.ErrStoryTextRequired
	}

	log := s.logger.With(zap.String("storyID", storyID.String()))

	userPrompt := prompt.FormatAnalysis(storyText)
	log.Debug("Analysis prompt formatted",
		zap.Int("promptBytes", len(userPrompt)),
		zap.Int("estimatedTokens", prompt.EstimateTokens(s.model, userPrompt)),
	)

	result, err := s.aiClient.Complete(ctx, prompt.SystemMessage, userPrompt)
	if err != nil {
		return nil, err
	}

	s.trackUsage(result, userPrompt)

	analysisResult, err := analysis.Normalize(result.Content)
	if err != nil {
		log.Warn("Model reply failed normalization", zap.Error(err))
		return nil, err
	}

	details, err := s.details.Upsert(ctx, storyID, analysisResult)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSaveFailed, err)
	}

	log.Info("Story analyzed",
		zap.Int("characters", len(details.Characters)),
		zap.Bool("generatedByAI", details.GeneratedByAI),
	)
	return details, nil
}

// CleanupStory generates a cleaned-up rendering of the story text and stores
// it as a new version. The reply is plain text; no normalization beyond
// trimming applies.
func (s *AnalysisService) CleanupStory(ctx context.Context, storyID uuid.UUID, storyText string) (*model.StoryVersion, error) {
	if strings.TrimSpace(storyText) == "" {
		return nil, model.ErrStoryTextRequired
	}

	userPrompt := prompt.FormatCleanup(storyText)
	result, err := s.aiClient.Complete(ctx, prompt.SystemMessage, userPrompt)
	if err != nil {
		return nil, err
	}

	s.trackUsage(result, userPrompt)

	content := strings.TrimSpace(result.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: cleanup returned empty text", model.ErrInvalidAnalysis)
	}

	version, err := s.versions.Create(ctx, &model.StoryVersion{
		StoryID:     storyID,
		VersionType: model.VersionTypeCleanup,
		Content:     content,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSaveFailed, err)
	}
	return version, nil
}

// CoachStory generates coaching notes for the story and upserts them, one
// row per story.
func (s *AnalysisService) CoachStory(ctx context.Context, storyID uuid.UUID, storyText string) (*model.CoachNotes, error) {
	if strings.TrimSpace(storyText) == "" {
		return nil, model.ErrStoryTextRequired
	}

	userPrompt := prompt.FormatCoach(storyText)
	result, err := s.aiClient.Complete(ctx, prompt.SystemMessage, userPrompt)
	if err != nil {
		return nil, err
	}

	s.trackUsage(result, userPrompt)

	feedback, err := analysis.NormalizeCoach(result.Content)
	if err != nil {
		return nil, err
	}

	notes, err := s.coach.Upsert(ctx, storyID, feedback)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSaveFailed, err)
	}
	return notes, nil
}

// ListStoryVersions returns all stored renderings of the story, newest first.
func (s *AnalysisService) ListStoryVersions(ctx context.Context, storyID uuid.UUID) ([]*model.StoryVersion, error) {
	return s.versions.ListByStory(ctx, storyID)
}

// GetCoachNotes returns the stored coach notes, or model.ErrNotFound when the
// story was never coached.
func (s *AnalysisService) GetCoachNotes(ctx context.Context, storyID uuid.UUID) (*model.CoachNotes, error) {
	return s.coach.GetByStoryID(ctx, storyID)
}

// UpdateStoryDetails applies a manual per-field edit. The repository marks
// the row user-edited; generated_by_ai is left untouched.
func (s *AnalysisService) UpdateStoryDetails(ctx context.Context, storyID uuid.UUID, update model.StoryDetailsUpdate) error {
	return s.details.UpdateFields(ctx, storyID, update)
}

// GetStoryDetails returns the stored details, or model.ErrNotFound when the
// story was never analyzed.
func (s *AnalysisService) GetStoryDetails(ctx context.Context, storyID uuid.UUID) (*model.StoryDetails, error) {
	return s.details.GetByStoryID(ctx, storyID)
}

// StoryNeedsAnalysis reports whether no analysis has ever completed for the
// story.
func (s *AnalysisService) StoryNeedsAnalysis(ctx context.Context, storyID uuid.UUID) (bool, error) {
	_, err := s.details.GetByStoryID(ctx, storyID)
	if err != nil {
		if isNotFound(err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// UsageStats returns the process-lifetime usage counters.
func (s *AnalysisService) UsageStats() usage.Stats {
	return s.usage.Stats()
}

// trackUsage records gateway-reported token usage, falling back to a local
// estimate when the gateway omits it.
func (s *AnalysisService) trackUsage(result *ai.Result, userPrompt string) {
	if result.Usage != nil {
		s.usage.Track(result.Usage.TotalTokens)
		return
	}
	estimated := prompt.EstimateTokens(s.model, userPrompt) + prompt.EstimateTokens(s.model, result.Content)
	s.usage.Track(estimated)
}
