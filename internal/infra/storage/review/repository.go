package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с отзывами о площадках
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв.
// Нарушение уникальности (turf_id, user_id) маппится в ErrDuplicateReview.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turf_reviews").
		Columns("turf_id", "user_id", "rating", "comment").
		Values(review.TurfID, review.UserID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// ExistsByTurfAndUser проверяет, оставлял ли пользователь отзыв на площадку
func (r *Repository) ExistsByTurfAndUser(ctx context.Context, turfID, userID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("turf_reviews").
		Where(squirrel.Eq{
			"turf_id": turfID,
			"user_id": userID,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByTurfAndUser - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByTurfAndUser - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByTurfID получает отзывы о площадке (новые первыми)
func (r *Repository) GetByTurfID(ctx context.Context, turfID int64, limit, offset uint64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "turf_id", "user_id", "rating", "comment", "created_at").
		From("turf_reviews").
		Where(squirrel.Eq{"turf_id": turfID}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		err = rows.Scan(&rev.ID, &rev.TurfID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTurfID - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &rev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTurfID - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// AverageRating возвращает среднее арифметическое оценок и их количество
func (r *Repository) AverageRating(ctx context.Context, turfID int64) (float64, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)", "COUNT(*)").
		From("turf_reviews").
		Where(squirrel.Eq{"turf_id": turfID}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: AverageRating - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	var count int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: AverageRating - scan row: %v", ErrScanRow, err)
	}

	return avg, count, nil
}
