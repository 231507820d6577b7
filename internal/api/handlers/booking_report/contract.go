package booking_report

import "context"

type ReportService interface {
	UserReport(ctx context.Context, userID int64) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
