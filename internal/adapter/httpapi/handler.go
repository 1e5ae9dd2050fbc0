package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/internal/repository"
	"github.com/eslsoft/lingopick/internal/usecase"
)

// Handler serves the recommendation and catalog endpoints. topK caps the
// response when the caller does not pass ?limit=; the engine always ranks
// the full catalog.
type Handler struct {
	recommend usecase.RecommendUsecase
	catalog   usecase.CatalogUsecase
	topK      int
	logger    *logrus.Logger
}

func NewHandler(recommend usecase.RecommendUsecase, catalog usecase.CatalogUsecase, topK int, logger *logrus.Logger) *Handler {
	return &Handler{recommend: recommend, catalog: catalog, topK: topK, logger: logger}
}

type recommendationsResponse struct {
	Profile         *entity.UserProfile      `json:"profile"`
	Recommendations []*entity.Recommendation `json:"recommendations"`
	Total           int                      `json:"total"`
}

// Recommendations runs the full pipeline over the posted survey and
// responds with the top-ranked slice.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var survey entity.RawSurvey
	if err := json.NewDecoder(r.Body).Decode(&survey); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed survey payload"})
		return
	}

	recs, profile, err := h.recommend.Recommend(r.Context(), &survey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"), h.topK, len(recs))
	h.writeJSON(w, http.StatusOK, recommendationsResponse{
		Profile:         profile,
		Recommendations: recs[:limit],
		Total:           len(recs),
	})
}

type languagesResponse struct {
	Languages []*entity.LanguageProfile `json:"languages"`
	Total     int64                     `json:"total"`
}

func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := &repository.ListLanguageQuery{
		Pagination: repository.Pagination{
			PageNo:   parseInt32(params.Get("page_no")),
			PageSize: parseInt32(params.Get("page_size")),
		},
		FilterOrder: repository.FilterOrder{
			Filter:  params.Get("filter"),
			OrderBy: params.Get("order_by"),
		},
	}

	languages, total, err := h.catalog.ListLanguages(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, languagesResponse{Languages: languages, Total: total})
}

func (h *Handler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := h.catalog.GetLanguage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, lang)
}

type reloadResponse struct {
	Languages int `json:"languages"`
}

func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalog.Reload(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.WithField("languages", count).Info("catalog reloaded")
	h.writeJSON(w, http.StatusOK, reloadResponse{Languages: count})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.WithError(err).Error("encode response")
	}
}

func parseLimit(raw string, fallback, max int) int {
	limit := fallback
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > max {
		limit = max
	}
	return limit
}

func parseInt32(raw string) int32 {
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || parsed < 0 {
		return 0
	}
	return int32(parsed)
}
