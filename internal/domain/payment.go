package domain

import "time"

// PaymentMethod represents how a booking was paid
type PaymentMethod string

const (
	MethodGateway      PaymentMethod = "gateway"
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Payment is the record of a completed payment attempt.
// One-to-one with Booking.
type Payment struct {
	ID            int64
	BookingID     int64
	Method        PaymentMethod
	Amount        float64
	TransactionID string
	IsSuccessful  bool
	FailureReason *string
	PaymentDate   time.Time
}
