package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/integrations/paymentgateway"
	"github.com/m04kA/SMC-TurfService/pkg/ptr"
)

type bookingRepoMock struct {
	createFn          func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	existsFn          func(ctx context.Context, turfID int64, date time.Time, start, end string) (bool, error)
	setPaymentOrderFn func(ctx context.Context, id int64, orderID string) error
}

func (m *bookingRepoMock) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, booking)
}

func (m *bookingRepoMock) ExistsActiveSlot(ctx context.Context, turfID int64, date time.Time, start, end string) (bool, error) {
	return m.existsFn(ctx, turfID, date, start, end)
}

func (m *bookingRepoMock) SetPaymentOrder(ctx context.Context, id int64, orderID string) error {
	return m.setPaymentOrderFn(ctx, id, orderID)
}

type turfRepoMock struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Turf, error)
}

func (m *turfRepoMock) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	return m.getByIDFn(ctx, id)
}

type gatewayMock struct {
	createOrderFn func(ctx context.Context, amount int64, receipt string) (*paymentgateway.Order, error)
}

func (m *gatewayMock) CreateOrder(ctx context.Context, amount int64, receipt string) (*paymentgateway.Order, error) {
	return m.createOrderFn(ctx, amount, receipt)
}

func (m *gatewayMock) KeyID() string    { return "rzp_test_key" }
func (m *gatewayMock) Currency() string { return "INR" }

type txManagerMock struct{}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func activeTurf() *domain.Turf {
	return &domain.Turf{
		ID:           1,
		OwnerID:      100,
		Name:         "Green Field Arena",
		City:         "Mumbai",
		PricePerHour: 1000,
		Status:       domain.TurfActive,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:        42,
		TurfID:        1,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "12:00",
		ContactNumber: "+919876543210",
	}
}

func newTestUseCase(turfs *turfRepoMock, bookings *bookingRepoMock, gw *gatewayMock) *UseCase {
	uc := NewUseCase(bookings, turfs, gw, &txManagerMock{}, &noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	var created *domain.Booking
	bookings := &bookingRepoMock{
		existsFn: func(ctx context.Context, turfID int64, date time.Time, start, end string) (bool, error) {
			assert.Equal(t, int64(1), turfID)
			assert.Equal(t, "10:00", start)
			assert.Equal(t, "12:00", end)
			return false, nil
		},
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = 777
			created = booking
			return booking, nil
		},
		setPaymentOrderFn: func(ctx context.Context, id int64, orderID string) error {
			assert.Equal(t, int64(777), id)
			assert.Equal(t, "order_ABC123", orderID)
			return nil
		},
	}
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return activeTurf(), nil
		},
	}
	gw := &gatewayMock{
		createOrderFn: func(ctx context.Context, amount int64, receipt string) (*paymentgateway.Order, error) {
			// 2360.00 в пайсах
			assert.Equal(t, int64(236000), amount)
			assert.NotEmpty(t, receipt)
			return &paymentgateway.Order{ID: "order_ABC123", Amount: amount, Currency: "INR", Receipt: receipt}, nil
		},
	}

	uc := newTestUseCase(turfs, bookings, gw)
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, created)

	// 1000/час * 2 часа, налог 18%
	assert.Equal(t, 2000.0, resp.BasePrice)
	assert.Equal(t, 360.0, resp.TaxAmount)
	assert.Equal(t, 0.0, resp.DiscountAmount)
	assert.Equal(t, 2360.0, resp.TotalAmount)
	assert.Equal(t, 2.0, resp.DurationHours)

	assert.Equal(t, int64(777), resp.ID)
	assert.Equal(t, created.UID, resp.UID)
	assert.NotEmpty(t, resp.UID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	assert.Equal(t, "Green Field Arena", resp.TurfName)
	assert.Equal(t, "Mumbai", resp.TurfCity)

	assert.Equal(t, "order_ABC123", resp.Payment.OrderID)
	assert.Equal(t, int64(236000), resp.Payment.Amount)
	assert.Equal(t, "INR", resp.Payment.Currency)
	assert.Equal(t, "rzp_test_key", resp.Payment.KeyID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "missing contact number",
			mutate:  func(req *Request) { req.ContactNumber = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero user id",
			mutate:  func(req *Request) { req.UserID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			mutate:  func(req *Request) { req.StartTime = "10am" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "special requests too long",
			mutate: func(req *Request) {
				long := make([]byte, domain.MaxSpecialRequestsLength+1)
				for i := range long {
					long[i] = 'x'
				}
				req.SpecialRequests = ptr.Ptr(string(long))
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "start after end",
			mutate:  func(req *Request) { req.StartTime = "12:00"; req.EndTime = "10:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "start equals end",
			mutate:  func(req *Request) { req.EndTime = req.StartTime },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "duration below one hour",
			mutate:  func(req *Request) { req.StartTime = "10:00"; req.EndTime = "10:30" },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "duration above eight hours",
			mutate:  func(req *Request) { req.StartTime = "08:00"; req.EndTime = "17:00" },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "date in the past",
			mutate:  func(req *Request) { req.Date = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	bookings := &bookingRepoMock{
		existsFn: func(ctx context.Context, turfID int64, date time.Time, start, end string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = 1
			return booking, nil
		},
		setPaymentOrderFn: func(ctx context.Context, id int64, orderID string) error { return nil },
	}
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
	}
	gw := &gatewayMock{
		createOrderFn: func(ctx context.Context, amount int64, receipt string) (*paymentgateway.Order, error) {
			return &paymentgateway.Order{ID: "order_1"}, nil
		},
	}

	uc := newTestUseCase(turfs, bookings, gw)
	req := validRequest()
	req.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_TurfNotFound(t *testing.T) {
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return nil, turfRepo.ErrTurfNotFound
		},
	}

	uc := newTestUseCase(turfs, nil, nil)
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestExecute_TurfNotActive(t *testing.T) {
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			turf := activeTurf()
			turf.Status = domain.TurfMaintenance
			return turf, nil
		},
	}

	uc := newTestUseCase(turfs, nil, nil)
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTurfNotActive)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	bookings := &bookingRepoMock{
		existsFn: func(ctx context.Context, turfID int64, date time.Time, start, end string) (bool, error) {
			return true, nil
		},
	}
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
	}

	uc := newTestUseCase(turfs, bookings, nil)
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_DuplicateSlotOnInsert(t *testing.T) {
	bookings := &bookingRepoMock{
		existsFn: func(ctx context.Context, turfID int64, date time.Time, start, end string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			// Конкурентная вставка упёрлась в уникальный индекс
			return nil, bookingRepo.ErrDuplicateSlot
		},
	}
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
	}

	uc := newTestUseCase(turfs, bookings, nil)
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_PaymentGatewayFailure(t *testing.T) {
	bookings := &bookingRepoMock{
		existsFn: func(ctx context.Context, turfID int64, date time.Time, start, end string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = 5
			return booking, nil
		},
	}
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
	}
	gw := &gatewayMock{
		createOrderFn: func(ctx context.Context, amount int64, receipt string) (*paymentgateway.Order, error) {
			return nil, errors.New("gateway timeout")
		},
	}

	uc := newTestUseCase(turfs, bookings, gw)
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPaymentGateway)
}
