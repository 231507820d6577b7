package get_turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/service/turfs"
)

const (
	msgInvalidTurfID = "некорректный идентификатор площадки"
	msgTurfNotFound  = "площадка не найдена"
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

// Handle GET /api/v1/turfs/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turfID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || turfID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	result, err := h.service.GetByID(r.Context(), turfID)
	if err != nil {
		switch {
		case errors.Is(err, turfs.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id} - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		default:
			h.logger.Error("GET /turfs/{id} - Failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
