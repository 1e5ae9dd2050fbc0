package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/lingopick/internal/entity"
)

// Question keys for survey pages that only ship the flat answer map.
const (
	answerKeyNativeLanguage       = "native_language"
	answerKeyLanguageExperience   = "language_experience"
	answerKeyLearningPurpose      = "learning_purpose"
	answerKeyTimeExpectation      = "time_expectation"
	answerKeyPersistence          = "persistence"
	answerKeyDifficultyPreference = "difficulty_preference"
	answerKeyDailyTime            = "daily_time"
	answerKeyCulturalInterest     = "cultural_interest"

	noPreference = "no_preference"
)

// SurveyNormalizer converts raw survey answers into a canonical UserProfile.
// Only the two required signals ever fail normalization; everything else is
// resolved by defaults and bounded heuristic adjustments.
type SurveyNormalizer interface {
	Normalize(raw *entity.RawSurvey) (*entity.UserProfile, error)
}

// NewSurveyNormalizer builds the default normalizer.
func NewSurveyNormalizer() SurveyNormalizer {
	return &surveyNormalizer{}
}

type surveyNormalizer struct{}

func (n *surveyNormalizer) Normalize(raw *entity.RawSurvey) (*entity.UserProfile, error) {
	if raw == nil {
		raw = &entity.RawSurvey{}
	}

	native := strings.ToLower(raw.Answer(raw.NativeLanguage, answerKeyNativeLanguage))
	purpose := raw.Answer(raw.LearningPurpose, answerKeyLearningPurpose)

	var missing []string
	if native == "" {
		missing = append(missing, "native_language")
	}
	if purpose == "" {
		missing = append(missing, "learning_purpose")
	}
	if len(missing) > 0 {
		return nil, &entity.ValidationError{MissingFields: missing}
	}

	experience := raw.Answer(raw.LanguageExperience, answerKeyLanguageExperience)
	timeline := entity.ParseTimeline(raw.Answer(raw.TimeExpectation, answerKeyTimeExpectation))
	persistence := strings.ToLower(raw.Answer(raw.Persistence, answerKeyPersistence))
	commitment := entity.ParseTimeCommitment(raw.Answer(raw.DailyTime, answerKeyDailyTime))
	known := knownLanguages(experience, native)

	return &entity.UserProfile{
		NativeLanguage: native,
		KnownLanguages: known,
		Motivation: entity.MotivationProfile{
			Primary:         entity.ParseMotivation(purpose),
			CommitmentLevel: commitmentLevel(persistence),
		},
		CulturalInterests: n.culturalInterests(raw),
		TimeCommitment:    commitment,
		DifficultyPreference: difficultyPreference(
			raw.Answer(raw.DifficultyPreference, answerKeyDifficultyPreference),
			len(known), timeline, persistence,
		),
		Timeline: timeline,
	}, nil
}

// culturalInterests resolves the multi-select field into a deduplicated,
// order-preserving region list. Unknown region strings and the
// "no_preference" sentinel are dropped.
func (n *surveyNormalizer) culturalInterests(raw *entity.RawSurvey) []entity.Region {
	values := []string(raw.CulturalInterest)
	if len(values) == 0 {
		if v := raw.Answers[answerKeyCulturalInterest]; v != "" {
			var list entity.StringList
			// The answer map always carries strings; reuse the documented
			// JSON-or-single-value decoding.
			_ = list.UnmarshalJSON([]byte(strconv.Quote(v)))
			values = list
		}
	}

	interests := make([]entity.Region, 0, len(values))
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), noPreference) {
			continue
		}
		if region, ok := entity.ParseRegion(v); ok {
			interests = append(interests, region)
		}
	}
	return lo.Uniq(interests)
}

// knownLanguages derives the prior-language list from the experience
// answer. The count excludes the native language; any non-zero count
// implies English study unless English is the native language.
func knownLanguages(experience, native string) []string {
	count := experienceCount(experience)
	if count <= 0 {
		return []string{}
	}

	known := make([]string, 0, count)
	if native != "english" {
		known = append(known, "english")
	}
	for len(known) < count {
		known = append(known, "other")
	}
	return known
}

// experienceCount parses count-like answers ("0".."5") and the named
// levels older survey pages emitted.
func experienceCount(experience string) int {
	switch strings.ToLower(strings.TrimSpace(experience)) {
	case "", "complete_beginner", "none":
		return 0
	case "basic_english", "fluent_english":
		return 1
	case "multiple_languages":
		return 3
	default:
		count, err := strconv.Atoi(strings.TrimSpace(experience))
		if err != nil || count < 0 {
			return 0
		}
		return count
	}
}

// commitmentLevel maps self-reported persistence onto the 1-5 scale.
func commitmentLevel(persistence string) int {
	switch persistence {
	case "very_strong":
		return 5
	case "good":
		return 4
	case "weak":
		return 2
	default:
		return 3
	}
}

// difficultyPreference applies the bounded heuristic adjustments: the
// zero-experience ceiling, the experienced floor, timeline urgency, and
// persistence nudges, then re-clamps and rounds to one decimal.
func difficultyPreference(raw string, knownCount int, timeline entity.Timeline, persistence string) float64 {
	preference := 3.0
	if parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && parsed > 0 {
		preference = parsed
	}

	if knownCount == 0 && preference > zeroExperienceCeiling {
		preference = zeroExperienceCeiling
	}
	if knownCount >= experiencedFloorCount && preference < experiencedFloor {
		preference = experiencedFloor
	}

	switch timeline {
	case entity.Timeline3Months:
		preference = math.Min(preference, urgentTimelineCeiling)
	case entity.TimelineNoRush:
		preference += timelineUrgencyNudge
	}

	switch persistence {
	case "weak":
		preference -= persistenceNudge
	case "very_strong":
		preference += persistenceNudge
	}

	preference = lo.Clamp(preference, 1, 5)
	return math.Round(preference*10) / 10
}
