package review

import "errors"

var (
	// ErrDuplicateReview пользователь уже оставил отзыв на эту площадку
	ErrDuplicateReview = errors.New("review already exists for this turf and user")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")
	// ErrScanRow ошибка сканирования результата запроса
	ErrScanRow = errors.New("failed to scan row")
)
