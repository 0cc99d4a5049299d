// Package model holds the domain types shared across the journal and the
// analysis pipeline.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Story is a journal entry as told by the user. FreeformText is the raw
// telling; the analysis pipeline never mutates it.
type Story struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	Date         time.Time `json:"date" db:"date"`
	Setting      string    `json:"setting" db:"setting"`
	Tags         []string  `json:"tags" db:"tags"`
	FreeformText string    `json:"freeform_text" db:"freeform_text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// StoryDetails is the persisted analysis projection, one row per story. The
// end element is stored in the story_end column because "end" is reserved in
// SQL.
type StoryDetails struct {
	ID               uuid.UUID `json:"id" db:"id"`
	StoryID          uuid.UUID `json:"story_id" db:"story_id"`
	Characters       []string  `json:"characters" db:"characters"`
	Hook             string    `json:"hook" db:"hook"`
	Beginning        string    `json:"beginning" db:"beginning"`
	Middle           string    `json:"middle" db:"middle"`
	End              string    `json:"end" db:"story_end"`
	Outcome          string    `json:"outcome" db:"outcome"`
	LessonOrTakeaway string    `json:"lesson_or_takeaway" db:"lesson_or_takeaway"`
	TurningPoint     string    `json:"turning_point" db:"turning_point"`
	GeneratedByAI    bool      `json:"generated_by_ai" db:"generated_by_ai"`
	UserEdited       bool      `json:"user_edited" db:"user_edited"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// StoryDetailsUpdate carries a manual partial edit. Nil fields are left
// untouched; provided fields overwrite, including with empty values.
type StoryDetailsUpdate struct {
	Characters       *[]string `json:"characters"`
	Hook             *string   `json:"hook"`
	Beginning        *string   `json:"beginning"`
	Middle           *string   `json:"middle"`
	End              *string   `json:"end"`
	Outcome          *string   `json:"outcome"`
	LessonOrTakeaway *string   `json:"lesson_or_takeaway"`
	TurningPoint     *string   `json:"turning_point"`
}

// IsEmpty reports whether no field was provided.
func (u StoryDetailsUpdate) IsEmpty() bool {
	return u.Characters == nil &&
		u.Hook == nil &&
		u.Beginning == nil &&
		u.Middle == nil &&
		u.End == nil &&
		u.Outcome == nil &&
		u.LessonOrTakeaway == nil &&
		u.TurningPoint == nil
}

// VersionTypeCleanup marks versions produced by the cleanup pipeline.
const VersionTypeCleanup = "cleanup"

// StoryVersion is an alternative rendering of a story's text.
type StoryVersion struct {
	ID          uuid.UUID `json:"id" db:"id"`
	StoryID     uuid.UUID `json:"story_id" db:"story_id"`
	VersionType string    `json:"version_type" db:"version_type"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
