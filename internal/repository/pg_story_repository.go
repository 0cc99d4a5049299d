package repository

import (
	"context"
	"errors"
	"fmt"

	"journal-server/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const storyColumns = `id, user_id, title, date, setting, tags, freeform_text, created_at, updated_at`

const (
	createStoryQuery = `
        INSERT INTO stories (user_id, title, date, setting, tags, freeform_text)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + storyColumns

	getStoryByIDQuery = `SELECT ` + storyColumns + ` FROM stories WHERE id = $1`

	listStoriesByUserQuery = `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE user_id = $1
        ORDER BY created_at DESC`

	updateStoryQuery = `
        UPDATE stories
        SET title = $2, date = $3, setting = $4, tags = $5, freeform_text = $6, updated_at = now()
        WHERE id = $1
        RETURNING ` + storyColumns

	deleteStoryQuery = `DELETE FROM stories WHERE id = $1`
)

type pgStoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPgStoryRepository creates a PostgreSQL-backed StoryRepository.
func NewPgStoryRepository(db *pgxpool.Pool, logger *zap.Logger) StoryRepository {
	return &pgStoryRepository{
		db:     db,
		logger: logger.Named("PgStoryRepo"),
	}
}

func (r *pgStoryRepository) Create(ctx context.Context, story *model.Story) (*model.Story, error) {
	var created model.Story
	err := pgxscan.Get(ctx, r.db, &created, createStoryQuery,
		story.UserID, story.Title, story.Date, story.Setting, story.Tags, story.FreeformText)
	if err != nil {
		r.logger.Error("Failed to create story", zap.String("userID", story.UserID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to create story: %w", err)
	}
	return &created, nil
}

func (r *pgStoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Story, error) {
	var story model.Story
	err := pgxscan.Get(ctx, r.db, &story, getStoryByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get story", zap.String("storyID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get story %s: %w", id, err)
	}
	return &story, nil
}

func (r *pgStoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Story, error) {
	var stories []*model.Story
	err := pgxscan.Select(ctx, r.db, &stories, listStoriesByUserQuery, userID)
	if err != nil {
		r.logger.Error("Failed to list stories", zap.String("userID", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to list stories for user %s: %w", userID, err)
	}
	if stories == nil {
		stories = []*model.Story{}
	}
	return stories, nil
}

func (r *pgStoryRepository) Update(ctx context.Context, story *model.Story) (*model.Story, error) {
	var updated model.Story
	err := pgxscan.Get(ctx, r.db, &updated, updateStoryQuery,
		story.ID, story.Title, story.Date, story.Setting, story.Tags, story.FreeformText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to update story", zap.String("storyID", story.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to update story %s: %w", story.ID, err)
	}
	return &updated, nil
}

func (r *pgStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteStoryQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete story", zap.String("storyID", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete story %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
