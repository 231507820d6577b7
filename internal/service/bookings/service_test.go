package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TurfService/internal/service/bookings/models"
)

type bookingRepoMock struct {
	getByIDFn            func(ctx context.Context, id int64) (*domain.Booking, error)
	getByUserIDFn        func(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	getByTurfFn          func(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error)
	cancelFn             func(ctx context.Context, id int64) error
	createCancellationFn func(ctx context.Context, c *domain.Cancellation) (*domain.Cancellation, error)
}

func (m *bookingRepoMock) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *bookingRepoMock) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.getByUserIDFn(ctx, userID, status)
}

func (m *bookingRepoMock) GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	return m.getByTurfFn(ctx, filter)
}

func (m *bookingRepoMock) Cancel(ctx context.Context, id int64) error {
	return m.cancelFn(ctx, id)
}

func (m *bookingRepoMock) CreateCancellation(ctx context.Context, c *domain.Cancellation) (*domain.Cancellation, error) {
	return m.createCancellationFn(ctx, c)
}

type turfRepoMock struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Turf, error)
}

func (m *turfRepoMock) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	return m.getByIDFn(ctx, id)
}

type txManagerMock struct{}

func (m *txManagerMock) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *txManagerMock) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:            10,
		UID:           "b7b6d1a0-0000-0000-0000-000000000001",
		TurfID:        3,
		UserID:        42,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "12:00",
		TotalAmount:   2360,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}
}

func newTestService(bookings *bookingRepoMock, turfs *turfRepoMock, now time.Time) *Service {
	return NewService(bookings, turfs, &txManagerMock{}, &fixedTimeProvider{now: now}, &noopLogger{})
}

func TestGetByID_OwnBooking(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
	}

	svc := newTestService(bookings, nil, time.Now())
	resp, err := svc.GetByID(context.Background(), 10, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestGetByID_TurfOwnerHasAccess(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
	}
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return &domain.Turf{ID: 3, OwnerID: 100}, nil
		},
	}

	svc := newTestService(bookings, turfs, time.Now())
	resp, err := svc.GetByID(context.Background(), 10, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
	}
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return &domain.Turf{ID: 3, OwnerID: 100}, nil
		},
	}

	svc := newTestService(bookings, turfs, time.Now())
	_, err := svc.GetByID(context.Background(), 10, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	svc := newTestService(bookings, nil, time.Now())
	_, err := svc.GetByID(context.Background(), 10, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	bookings := &bookingRepoMock{
		getByUserIDFn: func(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
			require.NotNil(t, status)
			assert.Equal(t, domain.StatusConfirmed, *status)
			return []*domain.Booking{confirmedBooking()}, nil
		},
	}

	svc := newTestService(bookings, nil, time.Now())
	status := "confirmed"
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: &status,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(nil, nil, time.Now())
	status := "unknown"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTurfBookings_OwnerOnly(t *testing.T) {
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return &domain.Turf{ID: 3, OwnerID: 100}, nil
		},
	}
	bookings := &bookingRepoMock{
		getByTurfFn: func(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
			assert.Equal(t, int64(3), filter.TurfID)
			return []*domain.Booking{confirmedBooking()}, nil
		},
	}

	svc := newTestService(bookings, turfs, time.Now())

	resp, err := svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{TurfID: 3, UserID: 100})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{TurfID: 3, UserID: 42})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_Success(t *testing.T) {
	var cancelled bool
	var record *domain.Cancellation

	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
		cancelFn: func(ctx context.Context, id int64) error {
			cancelled = true
			return nil
		},
		createCancellationFn: func(ctx context.Context, c *domain.Cancellation) (*domain.Cancellation, error) {
			record = c
			return c, nil
		},
	}

	// За три часа до начала
	now := time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC)
	svc := newTestService(bookings, nil, now)

	resp, err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:      42,
		Reason:      "user_request",
		Description: "planning changed",
	})

	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	// 80% от 2360
	assert.Equal(t, 1888.0, resp.RefundAmount)

	require.NotNil(t, record)
	assert.Equal(t, int64(10), record.BookingID)
	assert.Equal(t, domain.ReasonUserRequest, record.Reason)
	assert.Equal(t, int64(42), record.CancelledBy)
	assert.Equal(t, 1888.0, record.RefundAmount)
}

func TestCancel_TooLateToCancel(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
	}

	// За 90 минут до начала
	now := time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC)
	svc := newTestService(bookings, nil, now)

	_, err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID: 42,
		Reason: "user_request",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := confirmedBooking()
			b.Status = domain.StatusCancelled
			return b, nil
		},
	}

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc := newTestService(bookings, nil, now)

	_, err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID: 42,
		Reason: "user_request",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotOwner(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
	}

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc := newTestService(bookings, nil, now)

	_, err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID: 999,
		Reason: "user_request",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_InvalidReason(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
	}

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc := newTestService(bookings, nil, now)

	_, err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID: 42,
		Reason: "changed_my_mind",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
