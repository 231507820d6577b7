package search_turfs

import (
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
)

const (
	msgInvalidQuery = "некорректные параметры поиска"
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

// Handle GET /api/v1/turfs?q=...&city=...&categoryId=...&sortBy=price_low
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /turfs - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /turfs - Search failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
