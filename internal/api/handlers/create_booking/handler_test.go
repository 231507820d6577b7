package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-TurfService/internal/usecase/create_booking"
)

type useCaseMock struct {
	executeFn func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

func (m *useCaseMock) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return m.executeFn(ctx, req)
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, handler *Handler, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		TurfID:        1,
		BookingDate:   "2026-03-15",
		StartTime:     "10:00",
		EndTime:       "12:00",
		ContactNumber: "+919876543210",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &useCaseMock{
		executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			assert.Equal(t, int64(42), req.UserID)
			assert.Equal(t, int64(1), req.TurfID)
			assert.Equal(t, "2026-03-15", req.Date.Format("2006-01-02"))

			return &createBooking.Response{
				ID:            777,
				UID:           "b7b6d1a0-0000-0000-0000-000000000001",
				TurfID:        req.TurfID,
				UserID:        req.UserID,
				BookingDate:   req.Date,
				StartTime:     req.StartTime,
				EndTime:       req.EndTime,
				DurationHours: 2,
				BasePrice:     2000,
				TaxAmount:     360,
				TotalAmount:   2360,
				Status:        "pending",
				PaymentStatus: "pending",
				TurfName:      "Green Field Arena",
				TurfCity:      "Mumbai",
				Payment: createBooking.PaymentInfo{
					OrderID:  "order_ABC123",
					Amount:   236000,
					Currency: "INR",
					KeyID:    "rzp_test_key",
				},
				CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	handler := NewHandler(uc, &noopLogger{})
	rec := doRequest(t, handler, "42", validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(777), resp.ID)
	assert.Equal(t, 2360.0, resp.TotalAmount)
	assert.Equal(t, "order_ABC123", resp.Payment.OrderID)
	assert.Equal(t, "2026-03-15", resp.BookingDate)
}

func TestHandle_Unauthorized(t *testing.T) {
	handler := NewHandler(&useCaseMock{}, &noopLogger{})
	rec := doRequest(t, handler, "", validBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	handler := NewHandler(&useCaseMock{}, &noopLogger{})

	body := validBody()
	body.BookingDate = "15-03-2026"
	rec := doRequest(t, handler, "42", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot conflict", err: createBooking.ErrSlotAlreadyBooked, wantStatus: http.StatusConflict},
		{name: "turf not found", err: createBooking.ErrTurfNotFound, wantStatus: http.StatusNotFound},
		{name: "turf not active", err: createBooking.ErrTurfNotActive, wantStatus: http.StatusBadRequest},
		{name: "past date", err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "bad time range", err: createBooking.ErrInvalidTimeRange, wantStatus: http.StatusBadRequest},
		{name: "bad duration", err: createBooking.ErrInvalidDuration, wantStatus: http.StatusBadRequest},
		{name: "gateway failure", err: createBooking.ErrPaymentGateway, wantStatus: http.StatusBadGateway},
		{name: "internal error", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{
				executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
					return nil, tt.err
				},
			}

			handler := NewHandler(uc, &noopLogger{})
			rec := doRequest(t, handler, "42", validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
