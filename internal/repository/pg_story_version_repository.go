package repository

import (
	"context"
	"fmt"

	"journal-server/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	createStoryVersionQuery = `
        INSERT INTO story_versions (story_id, version_type, content)
        VALUES ($1, $2, $3)
        RETURNING id, story_id, version_type, content, created_at`

	listStoryVersionsQuery = `
        SELECT id, story_id, version_type, content, created_at
        FROM story_versions
        WHERE story_id = $1
        ORDER BY created_at DESC`
)

type pgStoryVersionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPgStoryVersionRepository creates a PostgreSQL-backed StoryVersionRepository.
func NewPgStoryVersionRepository(db *pgxpool.Pool, logger *zap.Logger) StoryVersionRepository {
	return &pgStoryVersionRepository{
		db:     db,
		logger: logger.Named("PgStoryVersionRepo"),
	}
}

func (r *pgStoryVersionRepository) Create(ctx context.Context, version *model.StoryVersion) (*model.StoryVersion, error) {
	var created model.StoryVersion
	err := pgxscan.Get(ctx, r.db, &created, createStoryVersionQuery,
		version.StoryID, version.VersionType, version.Content)
	if err != nil {
		r.logger.Error("Failed to create story version",
			zap.String("storyID", version.StoryID.String()),
			zap.String("versionType", version.VersionType),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create version for story %s: %w", version.StoryID, err)
	}
	return &created, nil
}

func (r *pgStoryVersionRepository) ListByStory(ctx context.Context, storyID uuid.UUID) ([]*model.StoryVersion, error) {
	var versions []*model.StoryVersion
	err := pgxscan.Select(ctx, r.db, &versions, listStoryVersionsQuery, storyID)
	if err != nil {
		r.logger.Error("Failed to list story versions", zap.String("storyID", storyID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to list versions for story %s: %w", storyID, err)
	}
	if versions == nil {
		versions = []*model.StoryVersion{}
	}
	return versions, nil
}
