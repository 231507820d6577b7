package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	createBooking "github.com/m04kA/SMC-TurfService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TurfID          int64   `json:"turfId"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	EndTime         string  `json:"endTime"`     // "12:00"
	ContactNumber   string  `json:"contactNumber"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// PaymentResponse данные для оплаты на стороне клиента
type PaymentResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // в минорных единицах валюты
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UID           string  `json:"uid"`
	TurfID        int64   `json:"turfId"`
	UserID        int64   `json:"userId"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`

	BasePrice      float64 `json:"basePrice"`
	TaxAmount      float64 `json:"taxAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	TotalAmount    float64 `json:"totalAmount"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	TurfName string `json:"turfName"`
	TurfCity string `json:"turfCity"`

	Payment PaymentResponse `json:"payment"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		TurfID:          r.TurfID,
		Date:            bookingDate,
		StartTime:       startTime,
		EndTime:         endTime,
		ContactNumber:   r.ContactNumber,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		UID:            resp.UID,
		TurfID:         resp.TurfID,
		UserID:         resp.UserID,
		BookingDate:    resp.BookingDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		DurationHours:  resp.DurationHours,
		BasePrice:      resp.BasePrice,
		TaxAmount:      resp.TaxAmount,
		DiscountAmount: resp.DiscountAmount,
		TotalAmount:    resp.TotalAmount,
		Status:         resp.Status,
		PaymentStatus:  resp.PaymentStatus,
		TurfName:       resp.TurfName,
		TurfCity:       resp.TurfCity,
		Payment: PaymentResponse{
			OrderID:  resp.Payment.OrderID,
			Amount:   resp.Payment.Amount,
			Currency: resp.Payment.Currency,
			KeyID:    resp.Payment.KeyID,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
