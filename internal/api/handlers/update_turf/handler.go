package update_turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/turfs"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTurfID      = "некорректный идентификатор площадки"
	msgInvalidTurfData    = "некорректные данные площадки"
	msgTurfNotFound       = "площадка не найдена"
	msgAccessDenied       = "доступно только владельцу площадки"
)

type Handler struct {
	service TurfService
	logger  Logger
}

func NewHandler(service TurfService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/turfs/{id}
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

	var req UpdateTurfRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /turfs/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), req.ToServiceRequest(turfID, userID))
	if err != nil {
		switch {
		case errors.Is(err, turfs.ErrTurfNotFound):
			h.logger.Warn("PUT /turfs/{id} - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, turfs.ErrAccessDenied):
			h.logger.Warn("PUT /turfs/{id} - Access denied: user_id=%d, turf_id=%d", userID, turfID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, turfs.ErrInvalidInput):
			h.logger.Warn("PUT /turfs/{id} - Invalid turf data: turf_id=%d: %v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidTurfData)

		default:
			h.logger.Error("PUT /turfs/{id} - Failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /turfs/{id} - Turf updated: turf_id=%d, user_id=%d", turfID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
