package entity

import (
	"strings"

	"github.com/goccy/go-json"
)

// RawSurvey is the loosely-typed payload produced by the survey subsystem.
// Top-level fields take precedence; Answers is the fallback for survey
// pages that only ship a flat question-key map.
type RawSurvey struct {
	Answers map[string]string `json:"answers,omitempty"`

	NativeLanguage       string     `json:"native_language,omitempty"`
	LanguageExperience   string     `json:"language_experience,omitempty"`
	LearningPurpose      string     `json:"learning_purpose,omitempty"`
	TimeExpectation      string     `json:"time_expectation,omitempty"`
	CulturalInterest     StringList `json:"cultural_interest,omitempty"`
	Persistence          string     `json:"persistence,omitempty"`
	DifficultyPreference string     `json:"difficulty_preference,omitempty"`
	DailyTime            string     `json:"daily_time,omitempty"`
}

// Answer returns the top-level field when set, otherwise the flat answer map
// entry for the given question key.
func (rs *RawSurvey) Answer(field, key string) string {
	if v := strings.TrimSpace(field); v != "" {
		return v
	}
	return strings.TrimSpace(rs.Answers[key])
}

// StringList accepts a JSON array, a JSON-encoded array inside a string, or
// a bare string (treated as a single-element list). This is the one parsing
// point for multi-select survey fields; downstream code never re-parses.
type StringList []string

func (sl *StringList) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*sl = values
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*sl = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &values); err == nil {
		*sl = values
		return nil
	}
	*sl = []string{raw}
	return nil
}

// MotivationProfile pairs the primary motivation with a 1-5 commitment level.
type MotivationProfile struct {
	Primary         Motivation `json:"primary"`
	CommitmentLevel int        `json:"commitment_level"`
}

// UserProfile is the canonical, fully-defaulted profile the scorers consume.
// Every field holds a defined value once SurveyNormalizer has run.
type UserProfile struct {
	NativeLanguage       string            `json:"native_language"`
	KnownLanguages       []string          `json:"known_languages"`
	Motivation           MotivationProfile `json:"motivation"`
	CulturalInterests    []Region          `json:"cultural_interests"`
	TimeCommitment       TimeCommitment    `json:"time_commitment"`
	DifficultyPreference float64           `json:"difficulty_preference"`
	Timeline             Timeline          `json:"timeline"`
}
