package usecase

import (
	"math"
	"strings"
	"testing"

	"github.com/eslsoft/lingopick/internal/entity"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeNeutralBackgroundKeepsBaseDifficulty(t *testing.T) {
	var model DifficultyModel
	profile := testProfile()
	profile.NativeLanguage = "quenya"

	lang := testLanguage("esperanto", 3, 600)
	got := model.Compute(lang, profile)

	if !almostEqual(got.OverallDifficulty, 3.0) {
		t.Errorf("expected overall to stay at base 3.0, got %v", got.OverallDifficulty)
	}
	if !almostEqual(got.Confidence, 0.95) {
		t.Errorf("expected confidence at ceiling 0.95, got %v", got.Confidence)
	}
	if len(got.Reasons) != 0 {
		t.Errorf("expected no reasons for zero adjustment, got %v", got.Reasons)
	}
	if got.Breakdown != (entity.AdjustmentTerms{}) {
		t.Errorf("expected zero terms, got %+v", got.Breakdown)
	}
}

func TestComputeRelatedLanguageGetsEasier(t *testing.T) {
	var model DifficultyModel
	profile := testProfile() // native chinese, no known languages

	japanese := testLanguage("japanese", 3.5, 2200)
	japanese.Breakdown = entity.DifficultyBreakdown{Grammar: 4, Pronunciation: 2, Writing: 5, Vocabulary: 4}

	got := model.Compute(japanese, profile)

	// family -0.5*0.5, writing (5-5)*0.12, grammar (4-4)*0.15,
	// phonetics (2-5)*0.1 against the chinese baseline {4,5,5}.
	if !almostEqual(got.OverallDifficulty, 2.95) {
		t.Errorf("expected overall 2.95, got %v", got.OverallDifficulty)
	}
	if !almostEqual(got.Breakdown.FamilyRelation, -0.25) {
		t.Errorf("expected family term -0.25, got %v", got.Breakdown.FamilyRelation)
	}
	if !almostEqual(got.Breakdown.Phonetics, -0.3) {
		t.Errorf("expected phonetics term -0.3, got %v", got.Breakdown.Phonetics)
	}
	if !almostEqual(got.Confidence, 1-0.55*0.2) {
		t.Errorf("expected confidence 0.89, got %v", got.Confidence)
	}
	if got.OverallDifficulty >= japanese.BaseDifficulty {
		t.Error("related language should come out easier than its base rating")
	}
}

func TestComputeExperienceCutsWritingTerm(t *testing.T) {
	var model DifficultyModel
	without := testProfile()
	with := testProfile()
	with.KnownLanguages = []string{"english"}

	lang := testLanguage("korean", 4, 1800)
	lang.Breakdown = entity.DifficultyBreakdown{Grammar: 4, Pronunciation: 3, Writing: 3, Vocabulary: 4}

	base := model.Compute(lang, without)
	experienced := model.Compute(lang, with)

	if !almostEqual(base.Breakdown.WritingSystem-experienced.Breakdown.WritingSystem, 0.2) {
		t.Errorf("expected a 0.2 writing cut for experience, got %v vs %v",
			base.Breakdown.WritingSystem, experienced.Breakdown.WritingSystem)
	}
	found := false
	for _, reason := range experienced.Reasons {
		if strings.Contains(reason, "experience") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an experience reason, got %v", experienced.Reasons)
	}
}

func TestComputeClampsToScale(t *testing.T) {
	var model DifficultyModel
	profile := testProfile()
	profile.NativeLanguage = "spanish" // baseline {3,2,2}

	easy := testLanguage("portuguese", 1, 600)
	easy.Breakdown = entity.DifficultyBreakdown{Grammar: 1, Pronunciation: 1, Writing: 1, Vocabulary: 1}

	got := model.Compute(easy, profile)
	if got.OverallDifficulty < 1 || got.OverallDifficulty > 5 {
		t.Fatalf("overall difficulty %v escaped the 1-5 scale", got.OverallDifficulty)
	}
	if got.Confidence < 0.6 || got.Confidence > 0.95 {
		t.Fatalf("confidence %v escaped [0.6,0.95]", got.Confidence)
	}
}

func TestWeeksEstimate(t *testing.T) {
	tests := []struct {
		hours      int
		commitment entity.TimeCommitment
		want       int
	}{
		{600, entity.CommitmentCasual, 172},   // 600*60/(30*7) = 171.43
		{600, entity.CommitmentRegular, 86},   // 85.71
		{600, entity.CommitmentIntensive, 43}, // 42.86
		{2200, entity.CommitmentRegular, 315}, // 314.29
	}
	for _, tt := range tests {
		if got := weeksEstimate(tt.hours, tt.commitment); got != tt.want {
			t.Errorf("weeksEstimate(%d, %s) = %d, want %d", tt.hours, tt.commitment, got, tt.want)
		}
	}
}

func TestDifficultyReasonsThreshold(t *testing.T) {
	var model DifficultyModel
	profile := testProfile()
	profile.NativeLanguage = "english" // baseline {2,3,2}

	lang := testLanguage("german", 3, 900)
	lang.Breakdown = entity.DifficultyBreakdown{Grammar: 4, Pronunciation: 3.5, Writing: 2, Vocabulary: 3}

	got := model.Compute(lang, profile)

	// grammar (4-2)*0.15 = 0.30 clears the threshold; pronunciation
	// (3.5-3)*0.1 = 0.05 and writing (2-2)*0.12 = 0 do not.
	var grammar, phonetics, writing bool
	for _, reason := range got.Reasons {
		if strings.Contains(reason, "grammar") {
			grammar = true
		}
		if strings.Contains(reason, "pronunciation") {
			phonetics = true
		}
		if strings.Contains(reason, "writing") {
			writing = true
		}
	}
	if !grammar {
		t.Errorf("expected a grammar reason, got %v", got.Reasons)
	}
	if phonetics || writing {
		t.Errorf("did not expect sub-threshold reasons, got %v", got.Reasons)
	}
}
