package add_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTurfID      = "некорректный идентификатор площадки"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgTurfNotFound       = "площадка не найдена"
	msgDuplicateReview    = "вы уже оставили отзыв на эту площадку"
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

// Handle POST /api/v1/turfs/{id}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	turfID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || turfID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	var req AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turfs/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToServiceRequest(turfID, userID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidRating):
			h.logger.Warn("POST /turfs/{id}/reviews - Invalid rating=%d: turf_id=%d", req.Rating, turfID)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /turfs/{id}/reviews - Invalid input: turf_id=%d: %v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reviews.ErrTurfNotFound):
			h.logger.Warn("POST /turfs/{id}/reviews - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, reviews.ErrDuplicateReview):
			h.logger.Warn("POST /turfs/{id}/reviews - Duplicate review: user_id=%d, turf_id=%d", userID, turfID)
			handlers.RespondConflict(w, msgDuplicateReview)

		default:
			h.logger.Error("POST /turfs/{id}/reviews - Failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turfs/{id}/reviews - Review added: review_id=%d, turf_id=%d, user_id=%d",
		result.Review.ID, turfID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
