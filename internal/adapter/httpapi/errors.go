package httpapi

import (
	"errors"
	"net/http"

	"github.com/eslsoft/lingopick/internal/entity"
)

type errorResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// writeError maps domain errors onto HTTP status codes. Unknown errors are
// reported as 500 without leaking the message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *entity.ValidationError

	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:         verr.Error(),
			MissingFields: verr.MissingFields,
		})
	case errors.Is(err, entity.ErrInvalidQuery):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrLanguageNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrCatalogUnavailable):
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		h.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
