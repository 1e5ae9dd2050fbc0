package usecase

import (
	"math"

	"github.com/samber/lo"

	"github.com/eslsoft/lingopick/internal/entity"
)

// DimensionScorer computes the five independent 0-100 sub-scores for one
// language against one profile. All methods are pure functions.
type DimensionScorer struct{}

// Score computes every dimension at once.
func (DimensionScorer) Score(lang *entity.LanguageProfile, profile *entity.UserProfile) entity.DimensionScores {
	return entity.DimensionScores{
		CulturalMatch:   culturalMatch(lang, profile),
		DifficultyFit:   difficultyFit(lang, profile),
		GoalAlignment:   goalAlignment(lang, profile),
		TimeFeasibility: timeFeasibility(lang, profile),
		PracticalValue:  practicalValue(lang),
	}
}

// culturalMatch awards one equal share for the first declared interest
// whose region covers the language. A language covered by several interests
// still earns a single share; no declared interests means 0 for every
// language, with no fallback bonus.
func culturalMatch(lang *entity.LanguageProfile, profile *entity.UserProfile) float64 {
	if len(profile.CulturalInterests) == 0 {
		return 0
	}

	share := 100.0 / float64(len(profile.CulturalInterests))
	score := 0.0
	for _, interest := range profile.CulturalInterests {
		if lo.Contains(culturalMapping[interest], lang.ID) {
			score += share
			break
		}
	}
	return lo.Clamp(math.Round(score), 0, 100)
}

// difficultyFit combines the preference gap with the family and experience
// bonuses. The tiered multipliers reward closely related languages
// disproportionately on purpose.
func difficultyFit(lang *entity.LanguageProfile, profile *entity.UserProfile) float64 {
	base := 100 - math.Abs(lang.BaseDifficulty-profile.DifficultyPreference)*20

	familyBonus := 0.0
	if sim := similarity(profile.NativeLanguage, lang.ID); sim > 0 {
		switch {
		case sim >= familySimilarityHighTier:
			familyBonus = sim * familyBonusHighFactor
		case sim >= familySimilarityMidTier:
			familyBonus = sim * familyBonusMidFactor
		default:
			familyBonus = sim * familyBonusLowFactor
		}
	}

	experienceBonus := math.Min(float64(len(profile.KnownLanguages))*experienceBonusPerLanguage, experienceBonusCap)

	return lo.Clamp(math.Round(base+familyBonus+experienceBonus), 0, 100)
}

// goalAlignment reads the preset per-language motivation table, defaulting
// to 50 for unrated languages or the general motivation.
func goalAlignment(lang *entity.LanguageProfile, profile *entity.UserProfile) float64 {
	scores, ok := motivationScores[lang.ID]
	if !ok {
		return 50
	}
	return math.Round(scores.For(profile.Motivation.Primary))
}

// timeFeasibility buckets the budget/required-days ratio through a discrete
// step function. The exact thresholds are load-bearing for callers.
func timeFeasibility(lang *entity.LanguageProfile, profile *entity.UserProfile) float64 {
	dailyMinutes := profile.TimeCommitment.DailyMinutes()
	requiredDays := math.Ceil(float64(lang.Hours.TotalHours*60) / float64(dailyMinutes))
	ratio := float64(profile.Timeline.BudgetDays()) / requiredDays

	switch {
	case ratio >= 1.5:
		return 100
	case ratio >= 1.2:
		return 80
	case ratio >= 1.0:
		return 60
	case ratio >= 0.8:
		return 40
	case ratio >= 0.6:
		return 20
	default:
		return 10
	}
}

// practicalValue scores reach: speaker-count tiers plus geographic spread.
func practicalValue(lang *entity.LanguageProfile) float64 {
	score := 0.0
	switch speakers := lang.Speakers.Total; {
	case speakers > 1_000_000_000:
		score += 60
	case speakers > 500_000_000:
		score += 50
	case speakers > 100_000_000:
		score += 40
	case speakers > 50_000_000:
		score += 30
	default:
		score += 20
	}

	score += math.Min(float64(len(lang.Regions))*4, 40)
	return lo.Clamp(score, 0, 100)
}
