package add_review

import (
	"github.com/m04kA/SMC-TurfService/internal/service/reviews/models"
)

// AddReviewRequest HTTP request model
type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddReviewRequest) ToServiceRequest(turfID, userID int64) *models.AddReviewRequest {
	return &models.AddReviewRequest{
		TurfID:  turfID,
		UserID:  userID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
