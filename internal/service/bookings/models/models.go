package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrInvalidReason возвращается при некорректной причине отмены
	ErrInvalidReason = errors.New("invalid cancellation reason")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID      int64
	Reason      string
	Description string
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
}

// GetTurfBookingsRequest запрос на получение бронирований площадки
type GetTurfBookingsRequest struct {
	TurfID          int64
	UserID          int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTurfBookingsRequest) ToDomainFilter() (domain.TurfBookingsFilter, error) {
	filter := domain.TurfBookingsFilter{
		TurfID:          r.TurfID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	UID           string  `json:"uid"`
	TurfID        int64   `json:"turfId"`
	UserID        int64   `json:"userId"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	EndTime       string  `json:"endTime"`     // "12:00"
	DurationHours float64 `json:"durationHours"`

	BasePrice      float64 `json:"basePrice"`
	TaxAmount      float64 `json:"taxAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	TotalAmount    float64 `json:"totalAmount"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	ContactNumber   string  `json:"contactNumber"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	// Денормализованные данные площадки
	TurfName string `json:"turfName"`
	TurfCity string `json:"turfCity"`

	ConfirmedAt *string `json:"confirmedAt,omitempty"` // ISO 8601
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CancelBookingResponse ответ на отмену бронирования
type CancelBookingResponse struct {
	BookingID    int64   `json:"bookingId"`
	Status       string  `json:"status"`
	RefundAmount float64 `json:"refundAmount"`
}

// Методы конвертации

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled,
		domain.StatusCompleted, domain.StatusRefunded:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// ToDomainCancellationReason конвертирует строку в domain.CancellationReason
func ToDomainCancellationReason(s string) (domain.CancellationReason, error) {
	reason := domain.CancellationReason(s)
	if !domain.ValidCancellationReason(reason) {
		return "", ErrInvalidReason
	}
	return reason, nil
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		UID:             b.UID,
		TurfID:          b.TurfID,
		UserID:          b.UserID,
		BookingDate:     b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationHours:   b.DurationHours,
		BasePrice:       b.BasePrice,
		TaxAmount:       b.TaxAmount,
		DiscountAmount:  b.DiscountAmount,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		ContactNumber:   b.ContactNumber,
		SpecialRequests: b.SpecialRequests,
		TurfName:        b.TurfName,
		TurfCity:        b.TurfCity,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.ConfirmedAt != nil {
		confirmedStr := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmedStr
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
