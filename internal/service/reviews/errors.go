package reviews

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrDuplicateReview возвращается, когда пользователь уже оставил отзыв
	ErrDuplicateReview = errors.New("review already exists for this turf and user")

	// ErrInvalidRating возвращается при оценке вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
