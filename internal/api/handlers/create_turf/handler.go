package create_turf

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/turfs"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTurfData    = "некорректные данные площадки"
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

// Handle POST /api/v1/turfs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	var req CreateTurfRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turfs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, turfs.ErrInvalidInput):
			h.logger.Warn("POST /turfs - Invalid turf data: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidTurfData)

		default:
			h.logger.Error("POST /turfs - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turfs - Turf created: turf_id=%d, owner_id=%d", resp.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
