package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.ContactNumber == "" {
		return fmt.Errorf("%w: contactNumber is required", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests must be at most %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateTimeRange проверяет временной диапазон и возвращает длительность в часах.
// Начало должно быть строго раньше конца, длительность - от 1 до 8 часов.
func validateTimeRange(req *Request) (float64, error) {
	if !req.StartTime.IsBefore(req.EndTime) {
		return 0, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	minutes, err := req.StartTime.MinutesUntil(req.EndTime)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to compute duration: %v", ErrInvalidTimeRange, err)
	}

	hours := float64(minutes) / 60.0
	if hours < domain.MinBookingDurationHours || hours > domain.MaxBookingDurationHours {
		return 0, ErrInvalidDuration
	}

	return hours, nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
