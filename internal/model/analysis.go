package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisResult is a normalized story analysis. All fields are always set:
// scalars default to "" and Characters to an empty list. The "Unclear"
// sentinel the model uses for unknown fields never appears here.
type AnalysisResult struct {
	Characters       []string `json:"characters"`
	Hook             string   `json:"hook"`
	Beginning        string   `json:"beginning"`
	Middle           string   `json:"middle"`
	End              string   `json:"end"`
	Outcome          string   `json:"outcome"`
	LessonOrTakeaway string   `json:"lesson_or_takeaway"`
	TurningPoint     string   `json:"turning_point"`
}

// VocabularyUpgrade suggests replacing a weak word with a stronger one.
type VocabularyUpgrade struct {
	Original string `json:"original"`
	Upgraded string `json:"upgraded"`
}

// CoachFeedback is a normalized coach reply.
type CoachFeedback struct {
	WhatToCut          string              `json:"what_to_cut"`
	VocabularyUpgrades []VocabularyUpgrade `json:"vocabulary_upgrades"`
	PacingNotes        string              `json:"pacing_notes"`
	StrongerOpening    string              `json:"stronger_opening"`
	CallbackEnding     string              `json:"callback_ending"`
}

// CoachNotes is the stored coach feedback, one row per story.
type CoachNotes struct {
	ID                 uuid.UUID           `json:"id" db:"id"`
	StoryID            uuid.UUID           `json:"story_id" db:"story_id"`
	WhatToCut          string              `json:"what_to_cut" db:"what_to_cut"`
	VocabularyUpgrades []VocabularyUpgrade `json:"vocabulary_upgrades" db:"-"`
	PacingNotes        string              `json:"pacing_notes" db:"pacing_notes"`
	StrongerOpening    string              `json:"stronger_opening" db:"stronger_opening"`
	CallbackEnding     string              `json:"callback_ending" db:"callback_ending"`
	CreatedAt          time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at" db:"updated_at"`
}
