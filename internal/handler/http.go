package handler

import (
	"net/http"

	"journal-server/internal/model"
	"journal-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoryHandler exposes the journal and analysis pipeline over HTTP.
type StoryHandler struct {
	stories  *service.StoryService
	analysis *service.AnalysisService
	logger   *zap.Logger
}

// NewStoryHandler creates a StoryHandler.
func NewStoryHandler(stories *service.StoryService, analysis *service.AnalysisService, logger *zap.Logger) *StoryHandler {
	return &StoryHandler{
		stories:  stories,
		analysis: analysis,
		logger:   logger.Named("StoryHandler"),
	}
}

// RegisterRoutes wires the API routes behind the auth middleware.
func (h *StoryHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")
	api.Use(authMiddleware)
	{
		api.POST("/stories", h.createStory)
		api.GET("/stories", h.listStories)
		api.GET("/stories/:id", h.getStory)
		api.PUT("/stories/:id", h.updateStory)
		api.DELETE("/stories/:id", h.deleteStory)

		api.POST("/stories/:id/analyze", h.analyzeStory)
		api.PATCH("/stories/:id/details", h.updateStoryDetails)
		api.POST("/stories/:id/cleanup", h.cleanupStory)
		api.GET("/stories/:id/versions", h.listStoryVersions)
		api.POST("/stories/:id/coach", h.coachStory)
		api.GET("/stories/:id/coach", h.getCoachNotes)

		api.GET("/usage", h.getUsage)
	}
}

func (h *StoryHandler) userID(c *gin.Context) uuid.UUID {
	return c.MustGet(model.UserContextKey).(uuid.UUID)
}

func (h *StoryHandler) storyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid story id."})
		return uuid.Nil, false
	}
	return id, true
}

func (h *StoryHandler) fail(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

func (h *StoryHandler) createStory(c *gin.Context) {
	var req storyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Story text is required."})
		return
	}

	story, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	story.UserID = h.userID(c)

	created, err := h.stories.CreateStory(c.Request.Context(), story)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *StoryHandler) listStories(c *gin.Context) {
	stories, err := h.stories.ListStories(c.Request.Context(), h.userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) getStory(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	result, err := h.stories.FetchStoryWithDetails(c.Request.Context(), storyID, h.userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *StoryHandler) updateStory(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	var req storyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Story text is required."})
		return
	}

	story, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	story.ID = storyID

	updated, err := h.stories.UpdateStory(c.Request.Context(), h.userID(c), story)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *StoryHandler) deleteStory(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	if err := h.stories.DeleteStory(c.Request.Context(), storyID, h.userID(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// analyzeStory runs the full pipeline for the story's current text and
// returns the details row as stored. The UI disables the trigger while a run
// is in flight; concurrent re-analyze calls race on the upsert, last write
// wins.
func (h *StoryHandler) analyzeStory(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	story, err := h.stories.GetOwnedStory(c.Request.Context(), storyID, h.userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	details, err := h.analysis.AnalyzeStory(c.Request.Context(), story.ID, story.FreeformText)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *StoryHandler) updateStoryDetails(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	if _, err := h.stories.GetOwnedStory(c.Request.Context(), storyID, h.userID(c)); err != nil {
		h.fail(c, err)
		return
	}

	var update model.StoryDetailsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid update payload."})
		return
	}

	if err := h.analysis.UpdateStoryDetails(c.Request.Context(), storyID, update); err != nil {
		h.fail(c, err)
		return
	}

	details, err := h.analysis.GetStoryDetails(c.Request.Context(), storyID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *StoryHandler) cleanupStory(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	story, err := h.stories.GetOwnedStory(c.Request.Context(), storyID, h.userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	version, err := h.analysis.CleanupStory(c.Request.Context(), story.ID, story.FreeformText)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

func (h *StoryHandler) listStoryVersions(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	if _, err := h.stories.GetOwnedStory(c.Request.Context(), storyID, h.userID(c)); err != nil {
		h.fail(c, err)
		return
	}

	versions, err := h.analysis.ListStoryVersions(c.Request.Context(), storyID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

func (h *StoryHandler) getCoachNotes(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	if _, err := h.stories.GetOwnedStory(c.Request.Context(), storyID, h.userID(c)); err != nil {
		h.fail(c, err)
		return
	}

	notes, err := h.analysis.GetCoachNotes(c.Request.Context(), storyID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *StoryHandler) coachStory(c *gin.Context) {
	storyID, ok := h.storyID(c)
	if !ok {
		return
	}

	story, err := h.stories.GetOwnedStory(c.Request.Context(), storyID, h.userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	notes, err := h.analysis.CoachStory(c.Request.Context(), story.ID, story.FreeformText)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *StoryHandler) getUsage(c *gin.Context) {
	c.JSON(http.StatusOK, h.analysis.UsageStats())
}
