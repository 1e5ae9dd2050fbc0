package usecase

import (
	"testing"

	"github.com/eslsoft/lingopick/internal/entity"
)

func TestPlanSchedulesFollowCommitment(t *testing.T) {
	var planner PathPlanner
	difficulty := entity.PersonalizedDifficulty{OverallDifficulty: 3.2}

	tests := []struct {
		commitment   entity.TimeCommitment
		wantHours    int
		wantDays     int
		wantSession  int
		wantRestDays int
	}{
		{entity.CommitmentIntensive, 10, 6, 90, 1},
		{entity.CommitmentRegular, 5, 4, 60, 2},
		{entity.CommitmentCasual, 3, 3, 45, 1},
	}
	for _, tt := range tests {
		profile := testProfile()
		profile.TimeCommitment = tt.commitment

		path := planner.Plan(profile, difficulty)
		got := path.RecommendedSchedule
		if got.HoursPerWeek != tt.wantHours || got.StudyDays != tt.wantDays || got.SessionLength != tt.wantSession {
			t.Errorf("%s: got schedule %+v", tt.commitment, got)
		}
		if len(got.RestDays) != tt.wantRestDays {
			t.Errorf("%s: expected %d rest entries, got %v", tt.commitment, tt.wantRestDays, got.RestDays)
		}
	}
}

func TestPlanHasThreeProgressivePhases(t *testing.T) {
	var planner PathPlanner
	difficulty := entity.PersonalizedDifficulty{OverallDifficulty: 2.5}

	path := planner.Plan(testProfile(), difficulty)
	if len(path.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(path.Phases))
	}
	if path.Phases[0].Name != "Foundation" || path.Phases[2].Name != "Mastery" {
		t.Errorf("unexpected phase names: %q, %q, %q", path.Phases[0].Name, path.Phases[1].Name, path.Phases[2].Name)
	}
	for i, phase := range path.Phases {
		if len(phase.Goals) == 0 || len(phase.Milestones) == 0 || len(phase.Resources) == 0 {
			t.Errorf("phase %d is missing content: %+v", i, phase)
		}
	}
	if len(path.DifficultyProgression) != 3 {
		t.Fatalf("expected progression per phase, got %v", path.DifficultyProgression)
	}
	for _, v := range path.DifficultyProgression {
		if v != 2.5 {
			t.Errorf("expected progression pinned to the estimate, got %v", path.DifficultyProgression)
		}
	}
	if path.TotalDuration == "" {
		t.Error("expected a total duration label")
	}
}
