package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/internal/repository"
)

const (
	primaryReasonThreshold   = 70.0
	secondaryReasonThreshold = 50.0

	easyEntryDifficulty   = 2.0
	steepCurveDifficulty  = 4.0
	largeCommunityMinimum = 500_000_000
	alternativesPerBucket = 3

	intensiveDifficultyFactor = 0.8
	intensiveWeeksFactor      = 0.7
	casualDifficultyFactor    = 1.2
	casualWeeksFactor         = 1.5
)

// RecommendUsecase runs the full scoring pipeline: normalize the survey,
// score every catalog language, and return the ranked result set.
type RecommendUsecase interface {
	Recommend(ctx context.Context, raw *entity.RawSurvey) ([]*entity.Recommendation, *entity.UserProfile, error)
	RecommendForProfile(ctx context.Context, profile *entity.UserProfile) ([]*entity.Recommendation, error)
}

// NewRecommendUsecase wires the catalog and result store with the scoring
// components. Weights must already be validated.
func NewRecommendUsecase(
	catalog repository.CatalogRepository,
	results repository.ResultRepository,
	weights Weights,
	logger *logrus.Logger,
) RecommendUsecase {
	return &recommendUsecase{
		catalog:    catalog,
		results:    results,
		weights:    weights,
		logger:     logger,
		normalizer: NewSurveyNormalizer(),
	}
}

type recommendUsecase struct {
	catalog    repository.CatalogRepository
	results    repository.ResultRepository
	weights    Weights
	logger     *logrus.Logger
	normalizer SurveyNormalizer

	scorer    DimensionScorer
	model     DifficultyModel
	planner   PathPlanner
	predictor OutcomePredictor
}

func (u *recommendUsecase) Recommend(ctx context.Context, raw *entity.RawSurvey) ([]*entity.Recommendation, *entity.UserProfile, error) {
	profile, err := u.normalizer.Normalize(raw)
	if err != nil {
		return nil, nil, err
	}
	recs, err := u.RecommendForProfile(ctx, profile)
	if err != nil {
		return nil, nil, err
	}
	return recs, profile, nil
}

func (u *recommendUsecase) RecommendForProfile(ctx context.Context, profile *entity.UserProfile) ([]*entity.Recommendation, error) {
	languages, err := u.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		return nil, entity.ErrCatalogUnavailable
	}

	recommendations := make([]*entity.Recommendation, 0, len(languages))
	for _, lang := range languages {
		recommendations = append(recommendations, u.evaluate(lang, languages, profile))
	}

	// Equal scores keep catalog order, so identical surveys always produce
	// identical rankings.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	for i, rec := range recommendations {
		rec.Rank = i + 1
	}

	if err := u.results.Save(ctx, profile, recommendations); err != nil {
		u.logger.WithError(err).Warn("failed to persist recommendation run")
	}
	return recommendations, nil
}

// evaluate assembles the complete per-language result.
func (u *recommendUsecase) evaluate(lang *entity.LanguageProfile, catalog []*entity.LanguageProfile, profile *entity.UserProfile) *entity.Recommendation {
	scores := u.scorer.Score(lang, profile)
	difficulty := u.model.Compute(lang, profile)

	return &entity.Recommendation{
		Language:               lang,
		MatchScore:             matchScore(scores, u.weights),
		DimensionScores:        scores,
		PersonalizedDifficulty: difficulty,
		Reasons:                u.reasons(lang, scores),
		LearningPath:           u.planner.Plan(profile, difficulty),
		Analysis:               analyze(lang, catalog),
		Tracks:                 alternativeTracks(difficulty),
		SuccessPrediction:      u.predictor.Predict(lang, profile, difficulty),
	}
}

// matchScore is the weighted sum of the five dimensions, rounded to the
// nearest integer.
func matchScore(scores entity.DimensionScores, w Weights) int {
	total := scores.CulturalMatch*w.CulturalMatch +
		scores.DifficultyFit*w.DifficultyFit +
		scores.GoalAlignment*w.GoalAlignment +
		scores.TimeFeasibility*w.TimeFeasibility +
		scores.PracticalValue*w.PracticalValue
	return int(math.Round(total))
}

// reasons sorts the dimensions into the primary, secondary, or warning
// bucket. Only the three goal-facing dimensions can become primary reasons;
// time feasibility is the single secondary candidate, and low time or
// difficulty scores turn into warnings.
func (u *recommendUsecase) reasons(lang *entity.LanguageProfile, scores entity.DimensionScores) entity.ReasonSet {
	set := entity.ReasonSet{
		Primary:   []entity.Reason{},
		Secondary: []entity.Reason{},
		Warnings:  []string{},
	}

	primaries := []struct {
		kind        string
		score       float64
		weight      float64
		description string
	}{
		{"cultural_interest", scores.CulturalMatch, u.weights.CulturalMatch,
			fmt.Sprintf("%s matches your declared cultural interests", lang.Name)},
		{"difficulty_match", scores.DifficultyFit, u.weights.DifficultyFit,
			fmt.Sprintf("the difficulty of %s fits your preference and background", lang.Name)},
		{"goal_alignment", scores.GoalAlignment, u.weights.GoalAlignment,
			fmt.Sprintf("%s serves your primary learning goal well", lang.Name)},
	}
	for _, d := range primaries {
		if d.score > primaryReasonThreshold {
			set.Primary = append(set.Primary, entity.Reason{
				Type: d.kind, Description: d.description, Score: d.score, Weight: d.weight,
			})
		}
	}

	if scores.TimeFeasibility >= secondaryReasonThreshold && scores.TimeFeasibility <= primaryReasonThreshold {
		set.Secondary = append(set.Secondary, entity.Reason{
			Type:        "time_feasible",
			Description: fmt.Sprintf("%s is realistic within your stated timeline", lang.Name),
			Score:       scores.TimeFeasibility,
			Weight:      u.weights.TimeFeasibility,
		})
	}

	if scores.TimeFeasibility < secondaryReasonThreshold {
		set.Warnings = append(set.Warnings,
			fmt.Sprintf("your timeline leaves little room for %s at the planned pace", lang.Name))
	}
	if scores.DifficultyFit < secondaryReasonThreshold {
		set.Warnings = append(set.Warnings,
			fmt.Sprintf("%s sits far from your preferred difficulty level", lang.Name))
	}
	return set
}

// analyze derives pros, cons, and nearby catalog alternatives from the
// context-free descriptor.
func analyze(lang *entity.LanguageProfile, catalog []*entity.LanguageProfile) entity.Analysis {
	pros := []string{}
	cons := []string{}

	if lang.BaseDifficulty <= easyEntryDifficulty {
		pros = append(pros, "low entry barrier for beginners")
	}
	if lang.Speakers.Total > largeCommunityMinimum {
		pros = append(pros, "very large speaker community and abundant material")
	}
	if lang.HasTag("business") {
		pros = append(pros, "strong value for professional settings")
	}
	if lang.BaseDifficulty >= steepCurveDifficulty {
		cons = append(cons, "steep learning curve demands persistence")
	}

	return entity.Analysis{
		Pros:         pros,
		Cons:         cons,
		Alternatives: nearbyAlternatives(lang, catalog),
	}
}

// nearbyAlternatives groups the rest of the catalog by rounded difficulty
// relative to the candidate, at most three names per bucket.
func nearbyAlternatives(lang *entity.LanguageProfile, catalog []*entity.LanguageProfile) entity.Alternatives {
	alt := entity.Alternatives{Easier: []string{}, Similar: []string{}, Harder: []string{}}
	anchor := int(math.Round(lang.BaseDifficulty))

	for _, other := range catalog {
		if other.ID == lang.ID {
			continue
		}
		switch delta := int(math.Round(other.BaseDifficulty)) - anchor; {
		case delta == 0 && len(alt.Similar) < alternativesPerBucket:
			alt.Similar = append(alt.Similar, other.ID)
		case (delta == -1 || delta == -2) && len(alt.Easier) < alternativesPerBucket:
			alt.Easier = append(alt.Easier, other.ID)
		case (delta == 1 || delta == 2) && len(alt.Harder) < alternativesPerBucket:
			alt.Harder = append(alt.Harder, other.ID)
		}
	}
	return alt
}

// alternativeTracks projects the estimate onto the other commitment levels.
// The regular track is the personalized estimate exactly as computed; the
// intensive and casual variants scale difficulty and weeks off it.
func alternativeTracks(base entity.PersonalizedDifficulty) entity.Tracks {
	intensive := base
	intensive.OverallDifficulty = roundScale(base.OverallDifficulty * intensiveDifficultyFactor)
	intensive.TimeEstimateWeeks = int(math.Ceil(float64(base.TimeEstimateWeeks) * intensiveWeeksFactor))

	casual := base
	casual.OverallDifficulty = roundScale(base.OverallDifficulty * casualDifficultyFactor)
	casual.TimeEstimateWeeks = int(math.Ceil(float64(base.TimeEstimateWeeks) * casualWeeksFactor))

	return entity.Tracks{Intensive: intensive, Regular: base, Casual: casual}
}

// roundScale rounds to two decimals and keeps the value on the 1-5 scale.
func roundScale(v float64) float64 {
	return math.Round(lo.Clamp(v, 1, 5)*100) / 100
}
