package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"journal-server/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const storyDetailsColumns = `id, story_id, characters, hook, beginning, middle, story_end,
        outcome, lesson_or_takeaway, turning_point, generated_by_ai, user_edited, created_at, updated_at`

const (
	// A fresh analysis run overwrites every content field and re-attributes
	// the row to the pipeline, including resetting user_edited.
	upsertStoryDetailsQuery = `
        INSERT INTO story_details
            (story_id, characters, hook, beginning, middle, story_end, outcome,
             lesson_or_takeaway, turning_point, generated_by_ai, user_edited)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, FALSE)
        ON CONFLICT (story_id) DO UPDATE SET
            characters = EXCLUDED.characters,
            hook = EXCLUDED.hook,
            beginning = EXCLUDED.beginning,
            middle = EXCLUDED.middle,
            story_end = EXCLUDED.story_end,
            outcome = EXCLUDED.outcome,
            lesson_or_takeaway = EXCLUDED.lesson_or_takeaway,
            turning_point = EXCLUDED.turning_point,
            generated_by_ai = TRUE,
            user_edited = FALSE,
            updated_at = now()
        RETURNING ` + storyDetailsColumns

	getStoryDetailsQuery = `SELECT ` + storyDetailsColumns + ` FROM story_details WHERE story_id = $1`
)

type pgStoryDetailsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPgStoryDetailsRepository creates a PostgreSQL-backed StoryDetailsRepository.
func NewPgStoryDetailsRepository(db *pgxpool.Pool, logger *zap.Logger) StoryDetailsRepository {
	return &pgStoryDetailsRepository{
		db:     db,
		logger: logger.Named("PgStoryDetailsRepo"),
	}
}

func (r *pgStoryDetailsRepository) Upsert(ctx context.Context, storyID uuid.UUID, result *model.AnalysisResult) (*model.StoryDetails, error) {
	characters := result.Characters
	if characters == nil {
		characters = []string{}
	}

	var details model.StoryDetails
	err := pgxscan.Get(ctx, r.db, &details, upsertStoryDetailsQuery,
		storyID,
		characters,
		result.Hook,
		result.Beginning,
		result.Middle,
		result.End,
		result.Outcome,
		result.LessonOrTakeaway,
		result.TurningPoint,
	)
	if err != nil {
		r.logger.Error("Failed to upsert story details", zap.String("storyID", storyID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to upsert details for story %s: %w", storyID, err)
	}
	return &details, nil
}

func (r *pgStoryDetailsRepository) UpdateFields(ctx context.Context, storyID uuid.UUID, update model.StoryDetailsUpdate) error {
	if update.IsEmpty() {
		return model.ErrEmptyUpdate
	}

	// Build the SET clause from the fields actually provided. Every manual
	// edit marks the row user-edited.
	setClauses := []string{"user_edited = TRUE", "updated_at = now()"}
	args := []interface{}{storyID}

	addClause := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Characters != nil {
		addClause("characters", *update.Characters)
	}
	if update.Hook != nil {
		addClause("hook", *update.Hook)
	}
	if update.Beginning != nil {
		addClause("beginning", *update.Beginning)
	}
	if update.Middle != nil {
		addClause("middle", *update.Middle)
	}
	if update.End != nil {
		addClause("story_end", *update.End)
	}
	if update.Outcome != nil {
		addClause("outcome", *update.Outcome)
	}
	if update.LessonOrTakeaway != nil {
		addClause("lesson_or_takeaway", *update.LessonOrTakeaway)
	}
	if update.TurningPoint != nil {
		addClause("turning_point", *update.TurningPoint)
	}

	query := fmt.Sprintf("UPDATE story_details SET %s WHERE story_id = $1", strings.Join(setClauses, ", "))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update story details", zap.String("storyID", storyID.String()), zap.Error(err))
		return fmt.Errorf("failed to update details for story %s: %w", storyID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *pgStoryDetailsRepository) GetByStoryID(ctx context.Context, storyID uuid.UUID) (*model.StoryDetails, error) {
	var details model.StoryDetails
	err := pgxscan.Get(ctx, r.db, &details, getStoryDetailsQuery, storyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get story details", zap.String("storyID", storyID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get details for story %s: %w", storyID, err)
	}
	return &details, nil
}
