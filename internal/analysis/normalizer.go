// Package analysis turns raw model replies into normalized, fully populated
// result structs. Parsing failures surface as model.ErrInvalidAnalysis so
// callers can tell "the model returned garbage" apart from transport errors.
package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"journal-server/internal/model"
)

// sentinelUnclear is the literal the model is instructed to use for fields it
// cannot determine. It must never survive normalization.
const sentinelUnclear = "Unclear"

// Normalize parses a raw model reply into a complete AnalysisResult. The
// reply may be wrapped in markdown code fences; anything that is not a single
// JSON object after fence stripping is rejected. All eight fields of the
// result are always set: scalars default to "" and characters to an empty
// list.
func Normalize(raw string) (*model.AnalysisResult, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	return &model.AnalysisResult{
		Characters:       normalizeCharacters(fields["characters"]),
		Hook:             normalizeScalar(fields["hook"]),
		Beginning:        normalizeScalar(fields["beginning"]),
		Middle:           normalizeScalar(fields["middle"]),
		End:              normalizeScalar(fields["end"]),
		Outcome:          normalizeScalar(fields["outcome"]),
		LessonOrTakeaway: normalizeScalar(fields["lesson_or_takeaway"]),
		TurningPoint:     normalizeScalar(fields["turning_point"]),
	}, nil
}

// NormalizeCoach parses a raw coach-feedback reply, applying the same fence
// stripping and per-field defaulting rules as Normalize.
func NormalizeCoach(raw string) (*model.CoachFeedback, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	return &model.CoachFeedback{
		WhatToCut:          normalizeScalar(fields["what_to_cut"]),
		VocabularyUpgrades: normalizeUpgrades(fields["vocabulary_upgrades"]),
		PacingNotes:        normalizeScalar(fields["pacing_notes"]),
		StrongerOpening:    normalizeScalar(fields["stronger_opening"]),
		CallbackEnding:     normalizeScalar(fields["callback_ending"]),
	}, nil
}

// decodeObject strips code fences and decodes the reply as a top-level JSON
// object, keeping field values raw for per-field normalization.
func decodeObject(raw string) (map[string]json.RawMessage, error) {
	cleaned := StripFences(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidAnalysis, err)
	}
	if fields == nil {
		// "null" decodes without error but is not an object.
		return nil, fmt.Errorf("%w: top-level value is not a JSON object", model.ErrInvalidAnalysis)
	}
	return fields, nil
}

// StripFences removes a leading markdown code-fence opener (optionally tagged
// json) and a trailing closing fence. Text without fences passes through
// unchanged, so the operation is idempotent.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
		s = strings.TrimLeft(s, " \t\r\n")
	}

	if strings.HasSuffix(s, "```") {
		s = strings.TrimRight(s[:len(s)-len("```")], " \t\r\n")
	}

	return s
}

// normalizeScalar maps an absent field, the "Unclear" sentinel or whitespace
// to "" and returns the trimmed value otherwise. Non-string values count as
// absent.
func normalizeScalar(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	value = strings.TrimSpace(value)
	if value == sentinelUnclear {
		return ""
	}
	return value
}

// normalizeCharacters keeps list entries that are non-empty and not the
// sentinel, preserving order. Anything that is not a list of strings defaults
// to an empty list.
func normalizeCharacters(raw json.RawMessage) []string {
	out := []string{}
	if raw == nil {
		return out
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return out
	}
	for _, name := range list {
		if name == "" || name == sentinelUnclear {
			continue
		}
		out = append(out, name)
	}
	return out
}

// normalizeUpgrades keeps vocabulary upgrades that carry both sides of the
// suggestion. A malformed or absent list defaults to empty.
func normalizeUpgrades(raw json.RawMessage) []model.VocabularyUpgrade {
	out := []model.VocabularyUpgrade{}
	if raw == nil {
		return out
	}
	var list []model.VocabularyUpgrade
	if err := json.Unmarshal(raw, &list); err != nil {
		return out
	}
	for _, u := range list {
		u.Original = strings.TrimSpace(u.Original)
		u.Upgraded = strings.TrimSpace(u.Upgraded)
		if u.Original == "" || u.Upgraded == "" {
			continue
		}
		out = append(out, u)
	}
	return out
}
