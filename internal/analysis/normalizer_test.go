package analysis

import (
	"testing"

	"journal-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FullResponse(t *testing.T) {
	raw := `{
		"characters": ["Sam", "Alex"],
		"hook": "A storm was coming.",
		"beginning": "We set out at dawn.",
		"middle": "The boat started leaking.",
		"end": "We made it back soaked.",
		"outcome": "Nobody was hurt.",
		"lesson_or_takeaway": "Check the forecast.",
		"turning_point": "Alex spotted the leak."
	}`

	got, err := Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"Sam", "Alex"}, got.Characters)
	assert.Equal(t, "A storm was coming.", got.Hook)
	assert.Equal(t, "Check the forecast.", got.LessonOrTakeaway)
	assert.Equal(t, "Alex spotted the leak.", got.TurningPoint)
}

func TestNormalize_CollapsesUnclearSentinel(t *testing.T) {
	raw := `{"hook": "Unclear", "characters": ["Unclear", "Sam", ""], "middle": "The middle."}`

	got, err := Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "", got.Hook)
	assert.Equal(t, []string{"Sam"}, got.Characters)
	assert.Equal(t, "The middle.", got.Middle)
}

func TestNormalize_MissingFieldsDefault(t *testing.T) {
	got, err := Normalize(`{}`)

	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Characters)
	assert.Equal(t, "", got.Hook)
	assert.Equal(t, "", got.Beginning)
	assert.Equal(t, "", got.Middle)
	assert.Equal(t, "", got.End)
	assert.Equal(t, "", got.Outcome)
	assert.Equal(t, "", got.LessonOrTakeaway)
	assert.Equal(t, "", got.TurningPoint)
}

func TestNormalize_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"hook\": \"Fenced hook.\"}\n```"

	got, err := Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "Fenced hook.", got.Hook)
}

func TestNormalize_StripsBareCodeFences(t *testing.T) {
	raw := "```\n{\"hook\": \"Bare fence.\"}\n```"

	got, err := Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "Bare fence.", got.Hook)
}

func TestNormalize_RejectsNonJSON(t *testing.T) {
	_, err := Normalize("I'm sorry, I can't analyze that story.")

	assert.ErrorIs(t, err, model.ErrInvalidAnalysis)
}

func TestNormalize_RejectsTopLevelNull(t *testing.T) {
	_, err := Normalize("null")

	assert.ErrorIs(t, err, model.ErrInvalidAnalysis)
}

func TestNormalize_RejectsTopLevelArray(t *testing.T) {
	_, err := Normalize(`["not", "an", "object"]`)

	assert.ErrorIs(t, err, model.ErrInvalidAnalysis)
}

func TestNormalize_NonStringScalarDefaults(t *testing.T) {
	raw := `{"hook": 42, "middle": {"nested": true}, "end": "fine"}`

	got, err := Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "", got.Hook)
	assert.Equal(t, "", got.Middle)
	assert.Equal(t, "fine", got.End)
}

func TestNormalize_NonListCharactersDefaults(t *testing.T) {
	raw := `{"characters": "Sam and Alex"}`

	got, err := Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Characters)
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	raw := `{"hook": "  padded  ", "beginning": "   "}`

	got, err := Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "padded", got.Hook)
	assert.Equal(t, "", got.Beginning)
}

func TestStripFences_Idempotent(t *testing.T) {
	raw := "```json\n{\"a\": 1}\n```"

	once := StripFences(raw)
	twice := StripFences(once)

	assert.Equal(t, `{"a": 1}`, once)
	assert.Equal(t, once, twice)
}

func TestStripFences_PassthroughWithoutFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, StripFences(` {"a": 1} `))
}

func TestNormalizeCoach_FullResponse(t *testing.T) {
	raw := `{
		"what_to_cut": "The weather tangent.",
		"vocabulary_upgrades": [
			{"original": "big", "upgraded": "towering"},
			{"original": "", "upgraded": "orphan"}
		],
		"pacing_notes": "Pause before the reveal.",
		"stronger_opening": "Start with the leak.",
		"callback_ending": "Circle back to the forecast."
	}`

	got, err := NormalizeCoach(raw)

	require.NoError(t, err)
	assert.Equal(t, "The weather tangent.", got.WhatToCut)
	require.Len(t, got.VocabularyUpgrades, 1)
	assert.Equal(t, model.VocabularyUpgrade{Original: "big", Upgraded: "towering"}, got.VocabularyUpgrades[0])
	assert.Equal(t, "Circle back to the forecast.", got.CallbackEnding)
}

func TestNormalizeCoach_UnclearAndMissingDefault(t *testing.T) {
	got, err := NormalizeCoach(`{"what_to_cut": "Unclear"}`)

	require.NoError(t, err)
	assert.Equal(t, "", got.WhatToCut)
	assert.Equal(t, []model.VocabularyUpgrade{}, got.VocabularyUpgrades)
	assert.Equal(t, "", got.PacingNotes)
}
