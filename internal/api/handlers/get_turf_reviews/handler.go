package get_turf_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/service/reviews"
	"github.com/m04kA/SMC-TurfService/internal/service/reviews/models"
)

const (
	msgInvalidTurfID = "некорректный идентификатор площадки"
	msgTurfNotFound  = "площадка не найдена"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{id}/reviews?limit=...&offset=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turfID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || turfID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	req := &models.GetReviewsRequest{TurfID: turfID}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.ParseUint(raw, 10, 64); err == nil {
			req.Limit = limit
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.ParseUint(raw, 10, 64); err == nil {
			req.Offset = offset
		}
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/reviews - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		default:
			h.logger.Error("GET /turfs/{id}/reviews - Failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
