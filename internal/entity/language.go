package entity

import (
	"fmt"
	"strings"
)

// defaultDifficulty is used wherever the catalog asset omits a rating.
const defaultDifficulty = 3.0

// LanguageProfile is one immutable language descriptor from the catalog.
type LanguageProfile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NativeName  string   `json:"native_name,omitempty"`
	Description string   `json:"description,omitempty"`
	Family      string   `json:"family,omitempty"`
	Script      string   `json:"script,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Regions     []string `json:"regions,omitempty"`

	// BaseDifficulty is the context-free 1-5 rating before personalization.
	BaseDifficulty float64             `json:"difficulty"`
	Breakdown      DifficultyBreakdown `json:"difficulty_breakdown"`

	Speakers       SpeakerCount `json:"speakers"`
	WritingSystems []string     `json:"writing_systems,omitempty"`
	Hours          LearningTime `json:"learning_time"`
}

// DifficultyBreakdown rates the skill areas of a language on the 1-5 scale.
type DifficultyBreakdown struct {
	Grammar       float64 `json:"grammar"`
	Pronunciation float64 `json:"pronunciation"`
	Writing       float64 `json:"writing"`
	Vocabulary    float64 `json:"vocabulary"`
}

// SpeakerCount reports how many people speak the language.
type SpeakerCount struct {
	Total     int64 `json:"total"`
	Native    int64 `json:"native,omitempty"`
	Secondary int64 `json:"secondary,omitempty"`
}

// LearningTime estimates the study hours to each proficiency milestone.
type LearningTime struct {
	TotalHours   int `json:"total_hours"`
	Basic        int `json:"basic,omitempty"`
	Intermediate int `json:"intermediate,omitempty"`
	Advanced     int `json:"advanced,omitempty"`
}

// Normalize fills the mid-scale default for any rating the source omitted.
func (lp *LanguageProfile) Normalize() {
	lp.ID = strings.ToLower(strings.TrimSpace(lp.ID))
	if lp.BaseDifficulty == 0 {
		lp.BaseDifficulty = defaultDifficulty
	}
	if lp.Breakdown.Grammar == 0 {
		lp.Breakdown.Grammar = lp.BaseDifficulty
	}
	if lp.Breakdown.Pronunciation == 0 {
		lp.Breakdown.Pronunciation = lp.BaseDifficulty
	}
	if lp.Breakdown.Writing == 0 {
		lp.Breakdown.Writing = lp.BaseDifficulty
	}
	if lp.Breakdown.Vocabulary == 0 {
		lp.Breakdown.Vocabulary = lp.BaseDifficulty
	}
	if lp.Tags == nil {
		lp.Tags = []string{}
	}
	if lp.Regions == nil {
		lp.Regions = []string{}
	}
}

// Validate rejects descriptors the catalog must not serve.
func (lp *LanguageProfile) Validate() error {
	if lp.ID == "" {
		return fmt.Errorf("language descriptor missing id: %w", ErrInvalidLanguage)
	}
	for name, v := range map[string]float64{
		"difficulty":    lp.BaseDifficulty,
		"grammar":       lp.Breakdown.Grammar,
		"pronunciation": lp.Breakdown.Pronunciation,
		"writing":       lp.Breakdown.Writing,
		"vocabulary":    lp.Breakdown.Vocabulary,
	} {
		if v < 1 || v > 5 {
			return fmt.Errorf("language %q: %s rating %.2f outside [1,5]: %w", lp.ID, name, v, ErrInvalidLanguage)
		}
	}
	if lp.Hours.TotalHours <= 0 {
		return fmt.Errorf("language %q: total learning hours must be positive: %w", lp.ID, ErrInvalidLanguage)
	}
	if lp.Speakers.Total < 0 {
		return fmt.Errorf("language %q: negative speaker count: %w", lp.ID, ErrInvalidLanguage)
	}
	return nil
}

// HasWritingSystem reports whether the language uses the given script key.
func (lp *LanguageProfile) HasWritingSystem(system string) bool {
	for _, ws := range lp.WritingSystems {
		if ws == system {
			return true
		}
	}
	return false
}

// HasTag reports whether the descriptor carries the given tag.
func (lp *LanguageProfile) HasTag(tag string) bool {
	for _, t := range lp.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
