package turfs

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// TurfRepository интерфейс репозитория площадок
type TurfRepository interface {
	Create(ctx context.Context, t *domain.Turf) (*domain.Turf, error)
	Update(ctx context.Context, t *domain.Turf) error
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	List(ctx context.Context, filter domain.TurfFilter) ([]*domain.Turf, error)
	ListCategories(ctx context.Context) ([]*domain.TurfCategory, error)
	GetOperatingHours(ctx context.Context, turfID int64) ([]*domain.OperatingHours, error)
	ReplaceOperatingHours(ctx context.Context, turfID int64, hours []*domain.OperatingHours) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
