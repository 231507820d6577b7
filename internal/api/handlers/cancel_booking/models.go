package cancel_booking

import (
	"github.com/m04kA/SMC-TurfService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:      userID,
		Reason:      r.Reason,
		Description: r.Description,
	}
}
