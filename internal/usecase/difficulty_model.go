package usecase

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/eslsoft/lingopick/internal/entity"
)

// Adjustment-term factors. Each scales a skill gap between the target
// language and the native-language baseline into a signed 1-5 shift.
const (
	familyRelationFactor = 0.5
	writingSystemFactor  = 0.12
	grammarFactor        = 0.15
	phoneticsFactor      = 0.1
	experienceWritingCut = 0.2
	confidencePenalty    = 0.2
	confidenceFloor      = 0.6
	confidenceCeiling    = 0.95
	reasonThreshold      = 0.1
)

// DifficultyModel personalizes the catalog's base difficulty for a user's
// native-language background.
type DifficultyModel struct{}

// Compute derives the personalized difficulty, the time estimate, and the
// explanation list. An empty reason list is valid when all deltas are small.
func (DifficultyModel) Compute(lang *entity.LanguageProfile, profile *entity.UserProfile) entity.PersonalizedDifficulty {
	baseline := nativeBaseline(profile.NativeLanguage)
	knownCount := len(profile.KnownLanguages)

	terms := entity.AdjustmentTerms{
		FamilyRelation: -similarity(profile.NativeLanguage, lang.ID) * familyRelationFactor,
		Grammar:        (lang.Breakdown.Grammar - baseline.Grammar) * grammarFactor,
		Phonetics:      (lang.Breakdown.Pronunciation - baseline.Pronunciation) * phoneticsFactor,
	}
	writingGap := (lang.Breakdown.Writing - baseline.Writing) * writingSystemFactor
	terms.WritingSystem = writingGap
	if knownCount > 0 {
		terms.WritingSystem -= experienceWritingCut
	}

	overall := lang.BaseDifficulty + terms.FamilyRelation + terms.WritingSystem + terms.Grammar + terms.Phonetics
	overall = lo.Clamp(overall, 1, 5)

	confidence := lo.Clamp(1-math.Abs(overall-lang.BaseDifficulty)*confidencePenalty, confidenceFloor, confidenceCeiling)

	return entity.PersonalizedDifficulty{
		OverallDifficulty: overall,
		TimeEstimateWeeks: weeksEstimate(lang.Hours.TotalHours, profile.TimeCommitment),
		Breakdown:         terms,
		Confidence:        confidence,
		Reasons:           difficultyReasons(lang, baseline, terms, writingGap, knownCount, overall),
	}
}

// weeksEstimate converts total catalog hours into study weeks under the
// given daily commitment, rounding up.
func weeksEstimate(totalHours int, commitment entity.TimeCommitment) int {
	dailyMinutes := commitment.DailyMinutes()
	return int(math.Ceil(float64(totalHours*60) / float64(dailyMinutes*7)))
}

// difficultyReasons emits an explanation per adjustment term whose
// magnitude clears the threshold. The writing-system term is judged before
// the experience deduction so the explanation matches the script gap, not
// the bonus.
func difficultyReasons(lang *entity.LanguageProfile, baseline skillBaseline, terms entity.AdjustmentTerms, writingGap float64, knownCount int, overall float64) []string {
	reasons := []string{}

	if terms.FamilyRelation < -reasonThreshold {
		reasons = append(reasons, "similarity to your native language lowers the learning curve")
	}
	if writingGap < -reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("writing system is simpler than your native one (%.1f vs %.1f)", lang.Breakdown.Writing, baseline.Writing))
	}
	if writingGap > reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("writing system is more complex than your native one (%.1f vs %.1f)", lang.Breakdown.Writing, baseline.Writing))
	}
	if knownCount > 0 {
		reasons = append(reasons, "prior language-learning experience works in your favor")
	}
	if terms.Grammar < -reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("grammar is simpler than your native language (%.1f vs %.1f)", lang.Breakdown.Grammar, baseline.Grammar))
	}
	if terms.Grammar > reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("grammar is more complex than your native language (%.1f vs %.1f)", lang.Breakdown.Grammar, baseline.Grammar))
	}
	if terms.Phonetics < -reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("pronunciation is easier than your native language (%.1f vs %.1f)", lang.Breakdown.Pronunciation, baseline.Pronunciation))
	}
	if terms.Phonetics > reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("pronunciation is harder than your native language (%.1f vs %.1f)", lang.Breakdown.Pronunciation, baseline.Pronunciation))
	}
	if overall < lang.BaseDifficulty {
		reasons = append(reasons, "your background makes this language easier than average")
	}
	if overall > lang.BaseDifficulty {
		reasons = append(reasons, "expect a few extra challenges beyond the average learner")
	}
	return reasons
}
