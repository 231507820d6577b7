package update_turf

import (
	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

// UpdateTurfRequest HTTP request model
type UpdateTurfRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`

	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Pincode   string   `json:"pincode"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	SurfaceType string `json:"surfaceType"`
	Length      int    `json:"length"`
	Width       int    `json:"width"`
	Capacity    int    `json:"capacity"`

	PricePerHour           float64 `json:"pricePerHour"`
	WeekendPriceMultiplier float64 `json:"weekendPriceMultiplier"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTurfRequest) ToServiceRequest(turfID, userID int64) *models.UpdateTurfRequest {
	return &models.UpdateTurfRequest{
		TurfID: turfID,
		UserID: userID,
		TurfInput: models.TurfInput{
			Name:                   r.Name,
			Description:            r.Description,
			CategoryID:             r.CategoryID,
			Address:                r.Address,
			City:                   r.City,
			State:                  r.State,
			Pincode:                r.Pincode,
			Latitude:               r.Latitude,
			Longitude:              r.Longitude,
			SurfaceType:            r.SurfaceType,
			Length:                 r.Length,
			Width:                  r.Width,
			Capacity:               r.Capacity,
			PricePerHour:           r.PricePerHour,
			WeekendPriceMultiplier: r.WeekendPriceMultiplier,
		},
	}
}
