package get_turf_categories

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

type TurfService interface {
	ListCategories(ctx context.Context) (*models.CategoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
