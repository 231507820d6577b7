package get_turf_reviews

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/reviews/models"
)

type ReviewService interface {
	List(ctx context.Context, req *models.GetReviewsRequest) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
