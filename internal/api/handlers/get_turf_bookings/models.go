package get_turf_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/service/bookings/models"
)

// parseQuery собирает запрос сервиса из query-параметров:
// startDate, endDate (YYYY-MM-DD), status, includeInactive
func parseQuery(query url.Values, turfID, userID int64) (*models.GetTurfBookingsRequest, error) {
	req := &models.GetTurfBookingsRequest{
		TurfID: turfID,
		UserID: userID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
