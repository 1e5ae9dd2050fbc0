package usecase

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/eslsoft/lingopick/internal/entity"
)

const (
	basePredictionProbability = 0.7
	difficultyGapPenalty      = 0.1
	intensiveProbabilityBoost = 0.15
	casualProbabilityPenalty  = 0.1
	commitmentProbabilityBump = 0.1
	highCommitmentLevel       = 4
	probabilityFloor          = 0.3
	probabilityCeiling        = 0.95
	hardLanguageThreshold     = 4.0
)

// OutcomePredictor estimates how likely the user is to reach working
// proficiency and what will stand in the way.
type OutcomePredictor struct{}

// Predict derives the success probability from the gap between the
// personalized difficulty and the user's stated preference, corrected for
// commitment, then names the expected challenges and support measures.
func (OutcomePredictor) Predict(lang *entity.LanguageProfile, profile *entity.UserProfile, difficulty entity.PersonalizedDifficulty) entity.SuccessPrediction {
	gap := math.Abs(difficulty.OverallDifficulty - profile.DifficultyPreference)

	probability := basePredictionProbability - gap*difficultyGapPenalty
	switch profile.TimeCommitment {
	case entity.CommitmentIntensive:
		probability += intensiveProbabilityBoost
	case entity.CommitmentCasual:
		probability -= casualProbabilityPenalty
	}
	if profile.Motivation.CommitmentLevel >= highCommitmentLevel {
		probability += commitmentProbabilityBump
	}
	probability = lo.Clamp(probability, probabilityFloor, probabilityCeiling)

	return entity.SuccessPrediction{
		Probability:     math.Round(probability*100) / 100,
		Timeline:        proficiencyTimeline(lang.Hours.TotalHours, profile.TimeCommitment),
		ChallengePoints: challengePoints(lang, profile, difficulty),
		SupportNeeded:   supportNeeded(profile, difficulty),
	}
}

// proficiencyTimeline buckets the months needed at the user's daily pace.
func proficiencyTimeline(totalHours int, commitment entity.TimeCommitment) string {
	dailyMinutes := commitment.DailyMinutes()
	months := math.Ceil(float64(totalHours*60) / float64(dailyMinutes*30))
	switch {
	case months <= 6:
		return "within 6 months"
	case months <= 12:
		return "within 1 year"
	case months <= 24:
		return "within 2 years"
	default:
		return "2+ years"
	}
}

func challengePoints(lang *entity.LanguageProfile, profile *entity.UserProfile, difficulty entity.PersonalizedDifficulty) []string {
	points := []string{}
	if difficulty.OverallDifficulty >= hardLanguageThreshold {
		points = append(points, "complex grammar structures need sustained practice")
	}
	if lang.HasWritingSystem("chinese") && !lang.HasWritingSystem("latin") {
		points = append(points, fmt.Sprintf("the %s writing system takes extra memorization time", lang.Name))
	}
	if !coveredByInterests(lang, profile.CulturalInterests) {
		points = append(points, "limited cultural context may slow immersion")
	}
	return points
}

// coveredByInterests reports whether any of the user's interest regions maps
// onto this language.
func coveredByInterests(lang *entity.LanguageProfile, interests []entity.Region) bool {
	for _, region := range interests {
		if lo.Contains(culturalMapping[region], lang.ID) {
			return true
		}
	}
	return false
}

func supportNeeded(profile *entity.UserProfile, difficulty entity.PersonalizedDifficulty) []string {
	support := []string{}
	if profile.TimeCommitment == entity.CommitmentCasual {
		support = append(support, "a fixed weekly study plan to keep momentum")
	}
	if difficulty.OverallDifficulty >= hardLanguageThreshold {
		support = append(support, "professional guidance for the advanced stages")
	}
	support = append(support, "regular exchange with a learner community")
	return support
}
