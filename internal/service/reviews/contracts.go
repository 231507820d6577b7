package reviews

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ExistsByTurfAndUser(ctx context.Context, turfID, userID int64) (bool, error)
	GetByTurfID(ctx context.Context, turfID int64, limit, offset uint64) ([]*domain.Review, error)
	AverageRating(ctx context.Context, turfID int64) (float64, int64, error)
}

// TurfRepository интерфейс репозитория площадок
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	UpdateAverageRating(ctx context.Context, turfID int64, avg float64) error
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
