package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"journal-server/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const coachNotesColumns = `id, story_id, what_to_cut, vocabulary_upgrades, pacing_notes,
        stronger_opening, callback_ending, created_at, updated_at`

const (
	upsertCoachNotesQuery = `
        INSERT INTO coach_notes
            (story_id, what_to_cut, vocabulary_upgrades, pacing_notes, stronger_opening, callback_ending)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (story_id) DO UPDATE SET
            what_to_cut = EXCLUDED.what_to_cut,
            vocabulary_upgrades = EXCLUDED.vocabulary_upgrades,
            pacing_notes = EXCLUDED.pacing_notes,
            stronger_opening = EXCLUDED.stronger_opening,
            callback_ending = EXCLUDED.callback_ending,
            updated_at = now()
        RETURNING ` + coachNotesColumns

	getCoachNotesQuery = `SELECT ` + coachNotesColumns + ` FROM coach_notes WHERE story_id = $1`
)

// coachNotesRow carries the raw jsonb column before unmarshalling.
type coachNotesRow struct {
	ID                 uuid.UUID `db:"id"`
	StoryID            uuid.UUID `db:"story_id"`
	WhatToCut          string    `db:"what_to_cut"`
	VocabularyUpgrades []byte    `db:"vocabulary_upgrades"`
	PacingNotes        string    `db:"pacing_notes"`
	StrongerOpening    string    `db:"stronger_opening"`
	CallbackEnding     string    `db:"callback_ending"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (row *coachNotesRow) toModel() (*model.CoachNotes, error) {
	upgrades := []model.VocabularyUpgrade{}
	if len(row.VocabularyUpgrades) > 0 {
		if err := json.Unmarshal(row.VocabularyUpgrades, &upgrades); err != nil {
			return nil, fmt.Errorf("failed to decode vocabulary upgrades: %w", err)
		}
	}
	return &model.CoachNotes{
		ID:                 row.ID,
		StoryID:            row.StoryID,
		WhatToCut:          row.WhatToCut,
		VocabularyUpgrades: upgrades,
		PacingNotes:        row.PacingNotes,
		StrongerOpening:    row.StrongerOpening,
		CallbackEnding:     row.CallbackEnding,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}, nil
}

type pgCoachNotesRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPgCoachNotesRepository creates a PostgreSQL-backed CoachNotesRepository.
func NewPgCoachNotesRepository(db *pgxpool.Pool, logger *zap.Logger) CoachNotesRepository {
	return &pgCoachNotesRepository{
		db:     db,
		logger: logger.Named("PgCoachNotesRepo"),
	}
}

func (r *pgCoachNotesRepository) Upsert(ctx context.Context, storyID uuid.UUID, feedback *model.CoachFeedback) (*model.CoachNotes, error) {
	upgrades := feedback.VocabularyUpgrades
	if upgrades == nil {
		upgrades = []model.VocabularyUpgrade{}
	}
	upgradesJSON, err := json.Marshal(upgrades)
	if err != nil {
		return nil, fmt.Errorf("failed to encode vocabulary upgrades: %w", err)
	}

	var row coachNotesRow
	err = pgxscan.Get(ctx, r.db, &row, upsertCoachNotesQuery,
		storyID,
		feedback.WhatToCut,
		upgradesJSON,
		feedback.PacingNotes,
		feedback.StrongerOpening,
		feedback.CallbackEnding,
	)
	if err != nil {
		r.logger.Error("Failed to upsert coach notes", zap.String("storyID", storyID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to upsert coach notes for story %s: %w", storyID, err)
	}
	return row.toModel()
}

func (r *pgCoachNotesRepository) GetByStoryID(ctx context.Context, storyID uuid.UUID) (*model.CoachNotes, error) {
	var row coachNotesRow
	err := pgxscan.Get(ctx, r.db, &row, getCoachNotesQuery, storyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get coach notes", zap.String("storyID", storyID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get coach notes for story %s: %w", storyID, err)
	}
	return row.toModel()
}
