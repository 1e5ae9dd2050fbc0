package entity

// DimensionScores holds the five independent 0-100 sub-scores that compose
// the weighted match score.
type DimensionScores struct {
	CulturalMatch   float64 `json:"cultural_match"`
	DifficultyFit   float64 `json:"difficulty_fit"`
	GoalAlignment   float64 `json:"goal_alignment"`
	TimeFeasibility float64 `json:"time_feasibility"`
	PracticalValue  float64 `json:"practical_value"`
}

// AdjustmentTerms are the signed contributions that move the personalized
// difficulty away from the catalog baseline.
type AdjustmentTerms struct {
	FamilyRelation float64 `json:"family_relation"`
	WritingSystem  float64 `json:"writing_system"`
	Grammar        float64 `json:"grammar"`
	Phonetics      float64 `json:"phonetics"`
}

// PersonalizedDifficulty is the 1-5 estimate adjusted for the user's
// native-language background, with a time estimate and explanations.
type PersonalizedDifficulty struct {
	OverallDifficulty float64         `json:"overall_difficulty"`
	TimeEstimateWeeks int             `json:"time_estimate_weeks"`
	Breakdown         AdjustmentTerms `json:"breakdown"`
	Confidence        float64         `json:"confidence"`
	Reasons           []string        `json:"reasons"`
}

// LearningPhase is one fixed stage of the suggested path.
type LearningPhase struct {
	Name        string   `json:"name"`
	Duration    string   `json:"duration"`
	Goals       []string `json:"goals"`
	Milestones  []string `json:"milestones"`
	Resources   []string `json:"resources"`
	Assessments []string `json:"assessments"`
}

// StudySchedule is the weekly rhythm derived from the time commitment.
type StudySchedule struct {
	HoursPerWeek  int      `json:"hours_per_week"`
	StudyDays     int      `json:"study_days"`
	SessionLength int      `json:"session_length_minutes"`
	RestDays      []string `json:"rest_days"`
}

// LearningPath bundles the three fixed phases with the personalized schedule.
type LearningPath struct {
	Phases                []LearningPhase `json:"phases"`
	TotalDuration         string          `json:"total_duration"`
	DifficultyProgression []float64       `json:"difficulty_progression"`
	RecommendedSchedule   StudySchedule   `json:"recommended_schedule"`
}

// Reason explains one dimension's contribution to the recommendation.
type Reason struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
}

// ReasonSet groups explanations by strength.
type ReasonSet struct {
	Primary   []Reason `json:"primary"`
	Secondary []Reason `json:"secondary"`
	Warnings  []string `json:"warnings"`
}

// Alternatives names catalog languages near the candidate's difficulty.
type Alternatives struct {
	Easier  []string `json:"easier"`
	Similar []string `json:"similar"`
	Harder  []string `json:"harder"`
}

// Analysis summarizes pros and cons plus nearby alternatives.
type Analysis struct {
	Pros         []string     `json:"pros"`
	Cons         []string     `json:"cons"`
	Alternatives Alternatives `json:"alternatives"`
}

// Tracks shows how the difficulty estimate shifts under other commitments.
type Tracks struct {
	Intensive PersonalizedDifficulty `json:"intensive"`
	Regular   PersonalizedDifficulty `json:"regular"`
	Casual    PersonalizedDifficulty `json:"casual"`
}

// SuccessPrediction estimates the completion probability and timeline.
type SuccessPrediction struct {
	Probability     float64  `json:"probability"`
	Timeline        string   `json:"timeline"`
	ChallengePoints []string `json:"challenge_points"`
	SupportNeeded   []string `json:"support_needed"`
}

// Recommendation is the per-language result of one pipeline run. Language
// points into the shared catalog snapshot and must be treated as read-only.
type Recommendation struct {
	Language               *LanguageProfile       `json:"language"`
	MatchScore             int                    `json:"match_score"`
	Rank                   int                    `json:"rank"`
	DimensionScores        DimensionScores        `json:"dimension_scores"`
	PersonalizedDifficulty PersonalizedDifficulty `json:"personalized_difficulty"`
	Reasons                ReasonSet              `json:"reasons"`
	LearningPath           LearningPath           `json:"learning_path"`
	Analysis               Analysis               `json:"analysis"`
	Tracks                 Tracks                 `json:"tracks"`
	SuccessPrediction      SuccessPrediction      `json:"success_prediction"`
}
