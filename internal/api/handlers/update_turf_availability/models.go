package update_turf_availability

import (
	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Hours []models.OperatingHoursInput `json:"hours"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateAvailabilityRequest) ToServiceRequest(turfID, userID int64) *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		TurfID: turfID,
		UserID: userID,
		Hours:  r.Hours,
	}
}
