package handler

import (
	"errors"
	"net/http"
	"time"

	"journal-server/internal/model"
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// storyRequest carries story fields for create and update.
type storyRequest struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"` // YYYY-MM-DD, defaults to today
	Setting      string   `json:"setting"`
	Tags         []string `json:"tags"`
	FreeformText string   `json:"freeform_text" binding:"required"`
}

func (r *storyRequest) toModel() (*model.Story, error) {
	date := time.Now().UTC()
	if r.Date != "" {
		parsed, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, errors.New("date must be in YYYY-MM-DD format")
		}
		date = parsed
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &model.Story{
		Title:        r.Title,
		Date:         date,
		Setting:      r.Setting,
		Tags:         tags,
		FreeformText: r.FreeformText,
	}, nil
}

// errorStatus maps a pipeline or persistence error to exactly one HTTP status
// and one user-safe message. Internal error detail never leaves the logs.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrStoryTextRequired):
		return http.StatusBadRequest, "Story text is required."
	case errors.Is(err, model.ErrEmptyUpdate):
		return http.StatusBadRequest, "No fields to update."
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "Story not found."
	case errors.Is(err, model.ErrAINotConfigured):
		return http.StatusBadGateway, "AI service is not configured. Please contact support."
	case errors.Is(err, model.ErrAIRateLimited):
		return http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment."
	case errors.Is(err, model.ErrAIUpstream):
		return http.StatusBadGateway, "AI service error. Please try again later."
	case errors.Is(err, model.ErrAIUnavailable):
		return http.StatusBadGateway, "An unexpected error occurred while analyzing your story. Please try again."
	case errors.Is(err, model.ErrInvalidAnalysis):
		return http.StatusBadGateway, "Analysis produced invalid output. Please try again."
	case errors.Is(err, model.ErrSaveFailed):
		return http.StatusInternalServerError, "Failed to save analysis results."
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}
