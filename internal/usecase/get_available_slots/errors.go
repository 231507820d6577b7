package get_available_slots

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("get_available_slots: turf not found")

	// ErrTurfNotActive возвращается, когда площадка не принимает бронирования
	ErrTurfNotActive = errors.New("get_available_slots: turf is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
