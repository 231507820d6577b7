package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TurfService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTurfID = "некорректный идентификатор площадки"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTurfNotFound  = "площадка не найдена"
	msgTurfNotActive = "площадка не принимает бронирования"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{id}/slots?date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turfID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || turfID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TurfID: turfID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/slots - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, getAvailableSlots.ErrTurfNotActive):
			h.logger.Warn("GET /turfs/{id}/slots - Turf not active: turf_id=%d", turfID)
			handlers.RespondBadRequest(w, msgTurfNotActive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /turfs/{id}/slots - Failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
