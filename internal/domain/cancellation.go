package domain

import "time"

// CancellationReason represents the reason code for a booking cancellation
type CancellationReason string

const (
	ReasonUserRequest CancellationReason = "user_request"
	ReasonWeather     CancellationReason = "weather"
	ReasonMaintenance CancellationReason = "maintenance"
	ReasonEmergency   CancellationReason = "emergency"
	ReasonOther       CancellationReason = "other"
)

// ValidCancellationReason reports whether the reason code is known
func ValidCancellationReason(r CancellationReason) bool {
	switch r {
	case ReasonUserRequest, ReasonWeather, ReasonMaintenance, ReasonEmergency, ReasonOther:
		return true
	}
	return false
}

// Cancellation is the record created when a booking is cancelled.
// One-to-one with Booking; RefundAmount is fixed at RefundRate of the total.
type Cancellation struct {
	ID              int64
	BookingID       int64
	Reason          CancellationReason
	Description     string
	CancelledBy     int64
	RefundAmount    float64
	RefundProcessed bool
	CancelledAt     time.Time
}
