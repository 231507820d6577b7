package domain

import (
	"math"
	"time"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusRefunded  BookingStatus = "refunded"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a turf reservation for a date and time window
type Booking struct {
	ID        int64
	UID       string // public booking identifier (UUID), used as payment receipt id
	TurfID    int64
	UserID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	DurationHours  float64
	BasePrice      float64
	TaxAmount      float64
	DiscountAmount float64
	TotalAmount    float64

	Status        BookingStatus
	PaymentStatus PaymentStatus

	ContactNumber   string
	SpecialRequests *string

	// Denormalized turf data for history and receipts
	TurfName string
	TurfCity string

	// Payment gateway identifiers, stored verbatim
	PaymentOrderID   *string
	PaymentID        *string
	PaymentSignature *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time
}

// IsActive returns true if the booking occupies its slot (pending or confirmed)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StartDateTime combines the booking date and start time into a single instant
func (b *Booking) StartDateTime(loc *time.Location) time.Time {
	mins, err := b.StartTime.MinutesFromMidnight()
	if err != nil {
		mins = 0
	}
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), mins/60, mins%60, 0, 0, loc)
}

// IsPast returns true if the booking window has already ended
func (b *Booking) IsPast(now time.Time) bool {
	mins, err := b.EndTime.MinutesFromMidnight()
	if err != nil {
		mins = 0
	}
	end := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), mins/60, mins%60, 0, 0, now.Location())
	return now.After(end)
}

// CanBeCancelled returns true if the booking may still be cancelled:
// the status allows it and more than CancellationNoticeMinutes remain
// before the booking starts
func (b *Booking) CanBeCancelled(now time.Time) bool {
	switch b.Status {
	case StatusCancelled, StatusCompleted, StatusRefunded:
		return false
	}

	start := b.StartDateTime(now.Location())
	return start.Sub(now) > time.Duration(CancellationNoticeMinutes)*time.Minute
}

// RefundAmount returns the amount refunded on a valid cancellation
func (b *Booking) RefundAmount() float64 {
	return RoundMoney(b.TotalAmount * RefundRate)
}

// RoundMoney rounds a monetary amount to two decimal places
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	UserID int64
	Status *BookingStatus // опционально
}

// TurfBookingsFilter фильтр для получения бронирований площадки (для владельца)
type TurfBookingsFilter struct {
	TurfID          int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool // включать ли отменённые/возвращённые бронирования
}
