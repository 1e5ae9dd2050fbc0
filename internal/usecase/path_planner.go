package usecase

import "github.com/eslsoft/lingopick/internal/entity"

// PathPlanner derives the three-phase learning plan. The phase content is
// fixed; only the weekly schedule follows the user's time commitment.
type PathPlanner struct{}

// Plan returns the fixed phases with a commitment-specific schedule.
func (PathPlanner) Plan(profile *entity.UserProfile, difficulty entity.PersonalizedDifficulty) entity.LearningPath {
	phases := learningPhases()
	progression := make([]float64, len(phases))
	for i := range progression {
		progression[i] = difficulty.OverallDifficulty
	}

	return entity.LearningPath{
		Phases:                phases,
		TotalDuration:         "6 months - 2 years",
		DifficultyProgression: progression,
		RecommendedSchedule:   schedule(profile.TimeCommitment),
	}
}

func learningPhases() []entity.LearningPhase {
	return []entity.LearningPhase{
		{
			Name:        "Foundation",
			Duration:    "1-3 months",
			Goals:       []string{"master core grammar", "build everyday vocabulary", "hold simple conversations"},
			Milestones:  []string{"500 common words", "self-introduction", "follow a slow dialogue"},
			Resources:   []string{"beginner coursebook", "pronunciation drills", "flashcards"},
			Assessments: []string{"vocabulary quiz", "pronunciation check", "dialogue practice"},
		},
		{
			Name:        "Intermediate",
			Duration:    "3-8 months",
			Goals:       []string{"expand vocabulary", "handle complex grammar", "improve listening and speaking"},
			Milestones:  []string{"2000 words", "daily conversation", "understand slow native speech"},
			Resources:   []string{"intermediate coursebook", "listening material", "conversation practice"},
			Assessments: []string{"grammar test", "listening test", "speaking assessment"},
		},
		{
			Name:        "Mastery",
			Duration:    "8+ months",
			Goals:       []string{"reach fluency", "deep cultural understanding", "use the language professionally"},
			Milestones:  []string{"5000+ words", "fluent conversation", "read native content"},
			Resources:   []string{"native material", "cultural content", "specialist resources"},
			Assessments: []string{"comprehensive exam", "cultural comprehension", "applied practice review"},
		},
	}
}

// schedule selects the weekly study tuple for the commitment bucket.
func schedule(commitment entity.TimeCommitment) entity.StudySchedule {
	switch commitment {
	case entity.CommitmentIntensive:
		return entity.StudySchedule{HoursPerWeek: 10, StudyDays: 6, SessionLength: 90, RestDays: []string{"sunday"}}
	case entity.CommitmentCasual:
		return entity.StudySchedule{HoursPerWeek: 3, StudyDays: 3, SessionLength: 45, RestDays: []string{"weekend"}}
	default:
		return entity.StudySchedule{HoursPerWeek: 5, StudyDays: 4, SessionLength: 60, RestDays: []string{"saturday", "sunday"}}
	}
}
