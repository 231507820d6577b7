package domain

// Pricing and refund policy
const (
	// TaxRate ставка налога (18% GST), начисляется на базовую цену
	TaxRate = 0.18

	// RefundRate доля от полной суммы, возвращаемая при отмене
	RefundRate = 0.80
)

// Booking business rules
const (
	// CancellationNoticeMinutes минимальное время до начала бронирования,
	// после которого отмена запрещена
	CancellationNoticeMinutes = 120

	MinBookingDurationHours = 1.0
	MaxBookingDurationHours = 8.0

	// SlotDurationMinutes длина окна при генерации слотов
	SlotDurationMinutes = 60

	MaxSpecialRequestsLength         = 500
	MaxCancellationDescriptionLength = 500
	MaxContactNumberLength           = 15
)

// Review rules
const (
	MinRating = 1
	MaxRating = 5

	MaxCommentLength = 1000
)

// Reports
const (
	// ReportBookingsLimit максимум бронирований в PDF-отчёте
	ReportBookingsLimit = 50
)

// Search
const (
	DefaultSearchLimit = 12
	MaxSearchLimit     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, не занимающие слот
// Используются для фильтрации при выдаче бронирований площадки
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRefunded,
}
