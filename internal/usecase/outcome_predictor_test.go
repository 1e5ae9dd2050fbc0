package usecase

import (
	"strings"
	"testing"

	"github.com/eslsoft/lingopick/internal/entity"
)

func TestPredictProbabilityAdjustments(t *testing.T) {
	var predictor OutcomePredictor
	lang := testLanguage("spanish", 2, 600)

	tests := []struct {
		name       string
		commitment entity.TimeCommitment
		level      int
		difficulty float64
		preference float64
		want       float64
	}{
		{"baseline", entity.CommitmentRegular, 3, 3.0, 3.0, 0.7},
		{"difficulty gap costs", entity.CommitmentRegular, 3, 4.5, 3.0, 0.55},
		{"intensive pace helps", entity.CommitmentIntensive, 3, 3.0, 3.0, 0.85},
		{"casual pace costs", entity.CommitmentCasual, 3, 3.0, 3.0, 0.6},
		{"high commitment helps", entity.CommitmentRegular, 5, 3.0, 3.0, 0.8},
		{"gap is symmetric", entity.CommitmentRegular, 3, 1.0, 5.0, 0.3},
		{"floor holds", entity.CommitmentCasual, 2, 5.0, 1.0, 0.3},
		{"ceiling holds", entity.CommitmentIntensive, 5, 3.0, 3.0, 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			profile.TimeCommitment = tt.commitment
			profile.Motivation.CommitmentLevel = tt.level
			profile.DifficultyPreference = tt.preference

			got := predictor.Predict(lang, profile, entity.PersonalizedDifficulty{OverallDifficulty: tt.difficulty})
			if !almostEqual(got.Probability, tt.want) {
				t.Errorf("expected probability %v, got %v", tt.want, got.Probability)
			}
		})
	}
}

func TestPredictTimelineBuckets(t *testing.T) {
	var predictor OutcomePredictor
	profile := testProfile() // regular pace, 60 daily minutes

	tests := []struct {
		hours int
		want  string
	}{
		{150, "within 6 months"}, // 5 months
		{300, "within 1 year"},   // 10 months
		{600, "within 2 years"},  // 20 months
		{2200, "2+ years"},       // 74 months
	}
	for _, tt := range tests {
		got := predictor.Predict(testLanguage("spanish", 2, tt.hours), profile, entity.PersonalizedDifficulty{OverallDifficulty: 2})
		if got.Timeline != tt.want {
			t.Errorf("hours=%d: expected %q, got %q", tt.hours, tt.want, got.Timeline)
		}
	}
}

func TestPredictChallengesAndSupport(t *testing.T) {
	var predictor OutcomePredictor
	profile := testProfile()
	profile.TimeCommitment = entity.CommitmentCasual
	profile.CulturalInterests = []entity.Region{entity.RegionEurope}

	lang := testLanguage("japanese", 3.5, 2200)
	lang.WritingSystems = []string{"chinese", "kana"}

	got := predictor.Predict(lang, profile, entity.PersonalizedDifficulty{OverallDifficulty: 4.2})

	var script, grammar, cultural bool
	for _, point := range got.ChallengePoints {
		if strings.Contains(point, "writing system") {
			script = true
		}
		if strings.Contains(point, "grammar") {
			grammar = true
		}
		if strings.Contains(point, "cultural") {
			cultural = true
		}
	}
	if !script || !grammar || !cultural {
		t.Errorf("expected script, grammar, and cultural challenges, got %v", got.ChallengePoints)
	}

	var plan, guidance, community bool
	for _, s := range got.SupportNeeded {
		if strings.Contains(s, "plan") {
			plan = true
		}
		if strings.Contains(s, "guidance") {
			guidance = true
		}
		if strings.Contains(s, "community") {
			community = true
		}
	}
	if !plan || !guidance || !community {
		t.Errorf("expected plan, guidance, and community support, got %v", got.SupportNeeded)
	}
}

func TestPredictNoChallengesForCoveredEasyLanguage(t *testing.T) {
	var predictor OutcomePredictor
	profile := testProfile()
	profile.CulturalInterests = []entity.Region{entity.RegionEurope}

	lang := testLanguage("spanish", 2, 600)
	lang.WritingSystems = []string{"latin"}

	got := predictor.Predict(lang, profile, entity.PersonalizedDifficulty{OverallDifficulty: 1.8})
	if len(got.ChallengePoints) != 0 {
		t.Errorf("expected no challenges, got %v", got.ChallengePoints)
	}
}
