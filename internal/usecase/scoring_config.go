package usecase

import (
	"fmt"
	"math"

	"github.com/eslsoft/lingopick/internal/entity"
)

// Weights distributes the match score across the five dimensions.
// The five values must sum to exactly 1.0 (checked at construction).
type Weights struct {
	CulturalMatch   float64
	DifficultyFit   float64
	GoalAlignment   float64
	TimeFeasibility float64
	PracticalValue  float64
}

// DefaultWeights is the tuned production distribution.
func DefaultWeights() Weights {
	return Weights{
		CulturalMatch:   0.30,
		DifficultyFit:   0.25,
		GoalAlignment:   0.20,
		TimeFeasibility: 0.15,
		PracticalValue:  0.10,
	}
}

// Validate enforces the sum-to-one invariant.
func (w Weights) Validate() error {
	sum := w.CulturalMatch + w.DifficultyFit + w.GoalAlignment + w.TimeFeasibility + w.PracticalValue
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("dimension weights sum to %.4f, want 1.0", sum)
	}
	return nil
}

// ValidateScoring checks the weight distribution together with the static
// scoring tables. Call once at startup before building the usecase.
func ValidateScoring(w Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	return validateScoringTables()
}

// Hand-tuned heuristic constants. The tier cutoffs, bonus caps, and nudge
// sizes were calibrated against the survey acceptance suite; treat them as
// tunable parameters, not derived values.
const (
	familySimilarityHighTier = 0.6
	familySimilarityMidTier  = 0.3
	familyBonusHighFactor    = 60.0
	familyBonusMidFactor     = 50.0
	familyBonusLowFactor     = 40.0

	experienceBonusPerLanguage = 10.0
	experienceBonusCap         = 30.0

	zeroExperienceCeiling = 3.0
	urgentTimelineCeiling = 3.0
	experiencedFloor      = 2.0
	experiencedFloorCount = 3
	timelineUrgencyNudge  = 0.5
	persistenceNudge      = 0.5
)

// motivationScore holds the per-goal 0-100 ratings for one language.
type motivationScore struct {
	Business float64
	Travel   float64
	Culture  float64
	Academic float64
}

// For returns the rating matching the motivation, defaulting to 50 for
// goals the table does not rate.
func (ms motivationScore) For(m entity.Motivation) float64 {
	switch m {
	case entity.MotivationCareer:
		return ms.Business
	case entity.MotivationTravel:
		return ms.Travel
	case entity.MotivationCulture:
		return ms.Culture
	case entity.MotivationAcademic:
		return ms.Academic
	default:
		return 50
	}
}

// skillBaseline rates the difficulty profile a native speaker starts from.
type skillBaseline struct {
	Grammar       float64
	Pronunciation float64
	Writing       float64
}

// neutralBaseline is used when the native language has no table entry.
var neutralBaseline = skillBaseline{Grammar: 3, Pronunciation: 3, Writing: 3}

// culturalMapping links each interest region to the language ids it covers.
var culturalMapping = map[entity.Region][]string{
	entity.RegionEastAsia:      {"japanese", "korean", "chinese"},
	entity.RegionSoutheastAsia: {"thai", "vietnamese", "indonesian"},
	entity.RegionEurope:        {"french", "german", "italian", "spanish"},
	entity.RegionLatinAmerica:  {"spanish", "portuguese"},
	entity.RegionMiddleEast:    {"arabic", "persian", "turkish"},
	entity.RegionAfrica:        {"swahili", "arabic"},
	entity.RegionNorthAmerica:  {"english", "french"},
	entity.RegionOceania:       {"english"},
}

// motivationScores presets the goal-alignment ratings per language.
var motivationScores = map[string]motivationScore{
	"japanese":   {Business: 85, Travel: 90, Culture: 95, Academic: 75},
	"korean":     {Business: 80, Travel: 85, Culture: 90, Academic: 70},
	"spanish":    {Business: 75, Travel: 95, Culture: 85, Academic: 70},
	"french":     {Business: 80, Travel: 85, Culture: 90, Academic: 85},
	"german":     {Business: 90, Travel: 75, Culture: 80, Academic: 90},
	"english":    {Business: 95, Travel: 80, Culture: 75, Academic: 95},
	"chinese":    {Business: 90, Travel: 80, Culture: 95, Academic: 85},
	"italian":    {Business: 70, Travel: 95, Culture: 90, Academic: 75},
	"portuguese": {Business: 65, Travel: 85, Culture: 80, Academic: 65},
	"dutch":      {Business: 80, Travel: 70, Culture: 75, Academic: 80},
	"russian":    {Business: 70, Travel: 75, Culture: 85, Academic: 85},
	"arabic":     {Business: 75, Travel: 80, Culture: 90, Academic: 75},
}

// familySimilarity is the sparse, asymmetric 0-1 linguistic-closeness
// matrix keyed by native language, then target language.
var familySimilarity = map[string]map[string]float64{
	// Sinitic and neighbors
	"chinese":  {"japanese": 0.5, "korean": 0.3, "vietnamese": 0.2},
	"japanese": {"chinese": 0.5, "korean": 0.4},
	"korean":   {"chinese": 0.3, "japanese": 0.4},

	// Germanic
	"english": {"german": 0.6, "dutch": 0.5, "swedish": 0.4, "french": 0.3},
	"german":  {"english": 0.6, "dutch": 0.7, "swedish": 0.6},

	// Romance
	"spanish":    {"portuguese": 0.8, "italian": 0.7, "french": 0.6},
	"portuguese": {"spanish": 0.8, "italian": 0.6, "french": 0.5},
	"italian":    {"spanish": 0.7, "french": 0.7, "portuguese": 0.6},
	"french":     {"spanish": 0.6, "italian": 0.7, "portuguese": 0.5},

	// Semitic and Slavic
	"arabic":  {"persian": 0.4, "turkish": 0.2, "hebrew": 0.5},
	"russian": {"ukrainian": 0.7, "polish": 0.5, "czech": 0.5},
}

// nativeBaselines rates the skill difficulty profile each native language
// implies (1-5 scale).
var nativeBaselines = map[string]skillBaseline{
	"chinese":    {Grammar: 4, Pronunciation: 5, Writing: 5},
	"english":    {Grammar: 2, Pronunciation: 3, Writing: 2},
	"spanish":    {Grammar: 3, Pronunciation: 2, Writing: 2},
	"french":     {Grammar: 4, Pronunciation: 3, Writing: 3},
	"german":     {Grammar: 5, Pronunciation: 3, Writing: 3},
	"japanese":   {Grammar: 4, Pronunciation: 3, Writing: 5},
	"korean":     {Grammar: 4, Pronunciation: 3, Writing: 3},
	"arabic":     {Grammar: 5, Pronunciation: 4, Writing: 4},
	"russian":    {Grammar: 5, Pronunciation: 4, Writing: 4},
	"portuguese": {Grammar: 3, Pronunciation: 3, Writing: 2},
	"italian":    {Grammar: 3, Pronunciation: 2, Writing: 2},
}

// nativeBaseline looks up the skill baseline, defaulting to neutral for
// unknown native languages.
func nativeBaseline(native string) skillBaseline {
	if b, ok := nativeBaselines[native]; ok {
		return b
	}
	return neutralBaseline
}

// similarity returns the family-similarity coefficient, 0 when either key
// has no entry.
func similarity(native, target string) float64 {
	return familySimilarity[native][target]
}

// validateScoringTables rejects malformed static tables early instead of
// silently defaulting at every lookup site.
func validateScoringTables() error {
	for region := range culturalMapping {
		if _, ok := entity.KnownRegions[region]; !ok {
			return fmt.Errorf("cultural mapping references unknown region %q", region)
		}
	}
	for native, targets := range familySimilarity {
		for target, sim := range targets {
			if sim < 0 || sim > 1 {
				return fmt.Errorf("similarity %s->%s = %.2f outside [0,1]", native, target, sim)
			}
		}
	}
	for id, b := range nativeBaselines {
		for name, v := range map[string]float64{"grammar": b.Grammar, "pronunciation": b.Pronunciation, "writing": b.Writing} {
			if v < 1 || v > 5 {
				return fmt.Errorf("baseline %s: %s rating %.2f outside [1,5]", id, name, v)
			}
		}
	}
	return nil
}
