package create_booking

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("create_booking: turf not found")

	// ErrTurfNotActive возвращается, когда площадка не принимает бронирования
	ErrTurfNotActive = errors.New("create_booking: turf is not active")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrInvalidDuration возвращается при длительности вне диапазона 1-8 часов
	ErrInvalidDuration = errors.New("create_booking: duration must be between 1 and 8 hours")

	// ErrSlotAlreadyBooked возвращается, когда выбранное окно уже занято
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrPaymentGateway возвращается, когда платёжный шлюз не смог создать ордер
	ErrPaymentGateway = errors.New("create_booking: payment gateway error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
