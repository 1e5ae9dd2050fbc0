package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/internal/repository"
)

type fakeCatalogRepo struct {
	mu    sync.RWMutex
	items []*entity.LanguageProfile
}

func newFakeCatalogRepo(items ...*entity.LanguageProfile) *fakeCatalogRepo {
	for _, item := range items {
		item.Normalize()
	}
	return &fakeCatalogRepo{items: items}
}

func (r *fakeCatalogRepo) All(ctx context.Context) ([]*entity.LanguageProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return nil, entity.ErrCatalogUnavailable
	}
	return append([]*entity.LanguageProfile(nil), r.items...), nil
}

func (r *fakeCatalogRepo) GetByID(ctx context.Context, id string) (*entity.LanguageProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, entity.ErrLanguageNotFound
}

func (r *fakeCatalogRepo) List(ctx context.Context, query *repository.ListLanguageQuery) ([]*entity.LanguageProfile, int64, error) {
	items, err := r.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, int64(len(items)), nil
}

func (r *fakeCatalogRepo) Reload(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

type fakeResultRepo struct {
	mu    sync.Mutex
	saves int
	err   error
}

func (r *fakeResultRepo) Save(ctx context.Context, profile *entity.UserProfile, recs []*entity.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	return r.err
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fixtureCatalog() *fakeCatalogRepo {
	return newFakeCatalogRepo(
		&entity.LanguageProfile{
			ID: "japanese", Name: "Japanese", BaseDifficulty: 3.5,
			Breakdown:      entity.DifficultyBreakdown{Grammar: 4, Pronunciation: 2, Writing: 5, Vocabulary: 4},
			Speakers:       entity.SpeakerCount{Total: 125_000_000},
			Regions:        []string{"east_asia"},
			WritingSystems: []string{"chinese", "kana"},
			Tags:           []string{"culture", "business"},
			Hours:          entity.LearningTime{TotalHours: 2200},
		},
		&entity.LanguageProfile{
			ID: "korean", Name: "Korean", BaseDifficulty: 4,
			Breakdown:      entity.DifficultyBreakdown{Grammar: 4, Pronunciation: 3, Writing: 3, Vocabulary: 4},
			Speakers:       entity.SpeakerCount{Total: 77_000_000},
			Regions:        []string{"east_asia"},
			WritingSystems: []string{"hangul"},
			Tags:           []string{"culture"},
			Hours:          entity.LearningTime{TotalHours: 1800},
		},
		&entity.LanguageProfile{
			ID: "chinese", Name: "Chinese", BaseDifficulty: 5,
			Breakdown:      entity.DifficultyBreakdown{Grammar: 3, Pronunciation: 5, Writing: 5, Vocabulary: 4},
			Speakers:       entity.SpeakerCount{Total: 1_100_000_000},
			Regions:        []string{"east_asia", "southeast_asia"},
			WritingSystems: []string{"chinese"},
			Tags:           []string{"business"},
			Hours:          entity.LearningTime{TotalHours: 2200},
		},
		&entity.LanguageProfile{
			ID: "spanish", Name: "Spanish", BaseDifficulty: 2,
			Breakdown:      entity.DifficultyBreakdown{Grammar: 2.5, Pronunciation: 2, Writing: 1.5, Vocabulary: 2},
			Speakers:       entity.SpeakerCount{Total: 548_000_000},
			Regions:        []string{"europe", "latin_america"},
			WritingSystems: []string{"latin"},
			Tags:           []string{"business", "travel"},
			Hours:          entity.LearningTime{TotalHours: 600},
		},
	)
}

func cultureSeekerSurvey() *entity.RawSurvey {
	return &entity.RawSurvey{
		NativeLanguage:   "chinese",
		LearningPurpose:  "culture",
		CulturalInterest: entity.StringList{"east_asia"},
		TimeExpectation:  "6months",
		DailyTime:        "regular",
	}
}

func TestRecommendRanksCatalog(t *testing.T) {
	results := &fakeResultRepo{}
	uc := NewRecommendUsecase(fixtureCatalog(), results, DefaultWeights(), discardLogger())

	recs, profile, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if profile.NativeLanguage != "chinese" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(recs))
	}

	wantOrder := []string{"japanese", "korean", "chinese", "spanish"}
	wantScores := []int{80, 77, 72, 44}
	for i, rec := range recs {
		if rec.Language.ID != wantOrder[i] {
			t.Errorf("rank %d: expected %s, got %s", i+1, wantOrder[i], rec.Language.ID)
		}
		if rec.MatchScore != wantScores[i] {
			t.Errorf("%s: expected score %d, got %d", rec.Language.ID, wantScores[i], rec.MatchScore)
		}
		if rec.Rank != i+1 {
			t.Errorf("%s: expected rank %d, got %d", rec.Language.ID, i+1, rec.Rank)
		}
	}

	top := recs[0]
	if top.PersonalizedDifficulty.OverallDifficulty > 3.5 {
		t.Errorf("expected top difficulty at most 3.5, got %v", top.PersonalizedDifficulty.OverallDifficulty)
	}
	if !almostEqual(top.PersonalizedDifficulty.OverallDifficulty, 2.95) {
		t.Errorf("expected top difficulty 2.95, got %v", top.PersonalizedDifficulty.OverallDifficulty)
	}
	if results.saves != 1 {
		t.Errorf("expected one result save, got %d", results.saves)
	}
}

func TestRecommendReasonBuckets(t *testing.T) {
	uc := NewRecommendUsecase(fixtureCatalog(), &fakeResultRepo{}, DefaultWeights(), discardLogger())

	recs, _, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	top := recs[0].Reasons
	// cultural 100, difficulty fit 100, and goal 95 clear the primary bar;
	// practical 44 falls below secondary; time 10 warns.
	if len(top.Primary) != 3 {
		t.Errorf("expected 3 primary reasons, got %+v", top.Primary)
	}
	types := map[string]bool{}
	for _, reason := range top.Primary {
		types[reason.Type] = true
	}
	for _, want := range []string{"cultural_interest", "difficulty_match", "goal_alignment"} {
		if !types[want] {
			t.Errorf("missing primary reason %q in %+v", want, top.Primary)
		}
	}
	if len(top.Warnings) != 1 {
		t.Errorf("expected one timeline warning, got %v", top.Warnings)
	}
}

func TestReasonBucketsIgnoreNonGoalDimensions(t *testing.T) {
	u := &recommendUsecase{weights: DefaultWeights()}
	lang := testLanguage("spanish", 2, 600)

	// High practical and time scores stay out of the primary bucket, and a
	// time score above the primary bar earns no secondary reason either.
	set := u.reasons(lang, entity.DimensionScores{
		CulturalMatch:   80,
		DifficultyFit:   60,
		GoalAlignment:   70,
		TimeFeasibility: 80,
		PracticalValue:  100,
	})
	if len(set.Primary) != 1 || set.Primary[0].Type != "cultural_interest" {
		t.Errorf("expected only the cultural primary reason, got %+v", set.Primary)
	}
	if len(set.Secondary) != 0 {
		t.Errorf("expected no secondary reasons, got %+v", set.Secondary)
	}
	if len(set.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", set.Warnings)
	}

	set = u.reasons(lang, entity.DimensionScores{
		CulturalMatch:   80,
		DifficultyFit:   60,
		GoalAlignment:   70,
		TimeFeasibility: 60,
		PracticalValue:  100,
	})
	if len(set.Secondary) != 1 || set.Secondary[0].Type != "time_feasible" {
		t.Errorf("expected the time secondary reason, got %+v", set.Secondary)
	}
}

func TestRecommendAlternativeTracks(t *testing.T) {
	uc := NewRecommendUsecase(fixtureCatalog(), &fakeResultRepo{}, DefaultWeights(), discardLogger())

	recs, _, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	tracks := recs[0].Tracks
	if tracks.Regular.TimeEstimateWeeks != 315 {
		t.Errorf("expected regular track 315 weeks, got %d", tracks.Regular.TimeEstimateWeeks)
	}
	if tracks.Intensive.TimeEstimateWeeks != 221 {
		t.Errorf("expected intensive track 221 weeks, got %d", tracks.Intensive.TimeEstimateWeeks)
	}
	if tracks.Casual.TimeEstimateWeeks != 473 {
		t.Errorf("expected casual track 473 weeks, got %d", tracks.Casual.TimeEstimateWeeks)
	}
	if !almostEqual(tracks.Intensive.OverallDifficulty, 2.36) {
		t.Errorf("expected intensive difficulty 2.36, got %v", tracks.Intensive.OverallDifficulty)
	}
	if !almostEqual(tracks.Casual.OverallDifficulty, 3.54) {
		t.Errorf("expected casual difficulty 3.54, got %v", tracks.Casual.OverallDifficulty)
	}
}

func TestAlternativeTracksKeepUserPacedEstimate(t *testing.T) {
	// An intensive user's own 210-week estimate stays the regular track;
	// the variants scale off it rather than off a restated one-hour pace.
	base := entity.PersonalizedDifficulty{OverallDifficulty: 2.95, TimeEstimateWeeks: 210}

	tracks := alternativeTracks(base)
	if tracks.Regular.TimeEstimateWeeks != 210 {
		t.Errorf("expected regular track to keep 210 weeks, got %d", tracks.Regular.TimeEstimateWeeks)
	}
	if !almostEqual(tracks.Regular.OverallDifficulty, 2.95) {
		t.Errorf("expected regular difficulty 2.95, got %v", tracks.Regular.OverallDifficulty)
	}
	if tracks.Intensive.TimeEstimateWeeks != 147 {
		t.Errorf("expected intensive track 147 weeks, got %d", tracks.Intensive.TimeEstimateWeeks)
	}
	if tracks.Casual.TimeEstimateWeeks != 315 {
		t.Errorf("expected casual track 315 weeks, got %d", tracks.Casual.TimeEstimateWeeks)
	}
}

func TestRecommendSuccessPrediction(t *testing.T) {
	uc := NewRecommendUsecase(fixtureCatalog(), &fakeResultRepo{}, DefaultWeights(), discardLogger())

	recs, _, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	prediction := recs[0].SuccessPrediction
	if !almostEqual(prediction.Probability, 0.7) {
		t.Errorf("expected probability 0.7, got %v", prediction.Probability)
	}
	if prediction.Timeline != "2+ years" {
		t.Errorf("expected 2+ years timeline for 2200 hours at a regular pace, got %q", prediction.Timeline)
	}
	if len(prediction.SupportNeeded) == 0 {
		t.Error("expected at least the community support suggestion")
	}
}

func TestRecommendDeterministic(t *testing.T) {
	uc := NewRecommendUsecase(fixtureCatalog(), &fakeResultRepo{}, DefaultWeights(), discardLogger())

	first, _, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, _, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(a) != string(b) {
		t.Error("identical surveys produced different rankings")
	}
}

func TestRecommendStableOrderOnTies(t *testing.T) {
	twin := func(id string) *entity.LanguageProfile {
		return &entity.LanguageProfile{
			ID: id, Name: id, BaseDifficulty: 3,
			Speakers: entity.SpeakerCount{Total: 10_000_000},
			Hours:    entity.LearningTime{TotalHours: 900},
		}
	}
	uc := NewRecommendUsecase(newFakeCatalogRepo(twin("aaa"), twin("bbb")), &fakeResultRepo{}, DefaultWeights(), discardLogger())

	recs, _, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if recs[0].MatchScore != recs[1].MatchScore {
		t.Fatalf("fixture expected a tie, got %d vs %d", recs[0].MatchScore, recs[1].MatchScore)
	}
	if recs[0].Language.ID != "aaa" || recs[1].Language.ID != "bbb" {
		t.Errorf("tie broke catalog order: %s before %s", recs[0].Language.ID, recs[1].Language.ID)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	uc := NewRecommendUsecase(newFakeCatalogRepo(), &fakeResultRepo{}, DefaultWeights(), discardLogger())

	_, _, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if !errors.Is(err, entity.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestRecommendSaveFailureIsNotFatal(t *testing.T) {
	results := &fakeResultRepo{err: errors.New("store offline")}
	uc := NewRecommendUsecase(fixtureCatalog(), results, DefaultWeights(), discardLogger())

	recs, _, err := uc.Recommend(context.Background(), cultureSeekerSurvey())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected recommendations despite the failed save")
	}
	if results.saves != 1 {
		t.Errorf("expected the save to be attempted, got %d", results.saves)
	}
}
