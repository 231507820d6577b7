package create_turf

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

type TurfService interface {
	Create(ctx context.Context, req *models.CreateTurfRequest) (*models.TurfDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
