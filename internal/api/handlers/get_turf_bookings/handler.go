package get_turf_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/bookings"
)

const (
	msgInvalidTurfID = "некорректный идентификатор площадки"
	msgInvalidFilter = "некорректные параметры фильтрации"
	msgTurfNotFound  = "площадка не найдена"
	msgAccessDenied  = "доступно только владельцу площадки"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{id}/bookings?startDate=...&endDate=...&status=...
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

	req, err := parseQuery(r.URL.Query(), turfID, userID)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetTurfBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/bookings - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /turfs/{id}/bookings - Access denied: user_id=%d, turf_id=%d", userID, turfID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{id}/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /turfs/{id}/bookings - Failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
