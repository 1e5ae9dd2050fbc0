package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingopick/internal/adapter/repository"
	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/internal/usecase"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	catalog := repository.NewCatalogRepository(repository.NewEmbeddedSource())
	results := repository.NewLogResultRepository(logger)
	recommend := usecase.NewRecommendUsecase(catalog, results, usecase.DefaultWeights(), logger)
	handler := NewHandler(recommend, usecase.NewCatalogUsecase(catalog), 6, logger)

	server := httptest.NewServer(NewRouter(handler, logger))
	t.Cleanup(server.Close)
	return server
}

const cultureSurvey = `{
	"native_language": "chinese",
	"learning_purpose": "culture",
	"cultural_interest": ["east_asia"],
	"time_expectation": "6months",
	"daily_time": "regular"
}`

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getURL(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	server := testServer(t)

	resp := postJSON(t, server.URL+"/api/v1/recommendations", cultureSurvey)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body recommendationsResponse
	decode(t, resp, &body)
	if body.Total != 10 {
		t.Errorf("expected 10 ranked languages, got %d", body.Total)
	}
	if len(body.Recommendations) != 6 {
		t.Errorf("expected default limit of 6, got %d", len(body.Recommendations))
	}
	top := body.Recommendations[0]
	if top.Language.ID != "japanese" {
		t.Errorf("expected japanese on top, got %q", top.Language.ID)
	}
	if top.MatchScore < 80 {
		t.Errorf("expected top score of at least 80, got %d", top.MatchScore)
	}
	if top.PersonalizedDifficulty.OverallDifficulty > 3.5 {
		t.Errorf("expected top difficulty at most 3.5, got %v", top.PersonalizedDifficulty.OverallDifficulty)
	}
	if body.Profile == nil || body.Profile.NativeLanguage != "chinese" {
		t.Errorf("unexpected profile: %+v", body.Profile)
	}
}

func TestRecommendationsLimitOverride(t *testing.T) {
	server := testServer(t)

	resp := postJSON(t, server.URL+"/api/v1/recommendations?limit=2", cultureSurvey)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body recommendationsResponse
	decode(t, resp, &body)
	if len(body.Recommendations) != 2 {
		t.Errorf("expected 2 recommendations, got %d", len(body.Recommendations))
	}
	if body.Total != 10 {
		t.Errorf("expected full total, got %d", body.Total)
	}
}

func TestRecommendationsIncompleteSurvey(t *testing.T) {
	server := testServer(t)

	resp := postJSON(t, server.URL+"/api/v1/recommendations", `{"daily_time": "casual"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body errorResponse
	decode(t, resp, &body)
	if len(body.MissingFields) != 2 {
		t.Errorf("expected both missing fields reported, got %v", body.MissingFields)
	}
}

func TestRecommendationsMalformedPayload(t *testing.T) {
	server := testServer(t)

	resp := postJSON(t, server.URL+"/api/v1/recommendations", `{"native_language":`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListLanguages(t *testing.T) {
	server := testServer(t)

	resp := getURL(t, server.URL+"/api/v1/languages?filter="+`difficulty+%3C%3D+2`+"&order_by=id")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body languagesResponse
	decode(t, resp, &body)
	if body.Total != 3 {
		t.Fatalf("expected italian, portuguese, spanish, got %d: %+v", body.Total, ids(body.Languages))
	}
	if body.Languages[0].ID != "italian" {
		t.Errorf("expected italian first by id, got %v", ids(body.Languages))
	}
}

func TestListLanguagesRejectsBadFilter(t *testing.T) {
	server := testServer(t)

	resp := getURL(t, server.URL+"/api/v1/languages?filter=publisher%3D%3D%22x%22")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetLanguage(t *testing.T) {
	server := testServer(t)

	resp := getURL(t, server.URL+"/api/v1/languages/japanese")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var lang entity.LanguageProfile
	decode(t, resp, &lang)
	if lang.ID != "japanese" || lang.BaseDifficulty != 3.5 {
		t.Errorf("unexpected language: %+v", lang)
	}

	resp = getURL(t, server.URL+"/api/v1/languages/klingon")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestReloadCatalog(t *testing.T) {
	server := testServer(t)

	resp := postJSON(t, server.URL+"/api/v1/catalog/reload", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body reloadResponse
	decode(t, resp, &body)
	if body.Languages != 10 {
		t.Errorf("expected 10 languages after reload, got %d", body.Languages)
	}
}

func TestHealthz(t *testing.T) {
	server := testServer(t)

	resp := getURL(t, server.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func ids(languages []*entity.LanguageProfile) []string {
	out := make([]string, len(languages))
	for i, lang := range languages {
		out[i] = lang.ID
	}
	return out
}
