package booking_receipt

import "context"

type ReportService interface {
	Receipt(ctx context.Context, bookingID, userID int64) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
