package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

type turfRepoMock struct {
	getByIDFn  func(ctx context.Context, id int64) (*domain.Turf, error)
	getHoursFn func(ctx context.Context, turfID int64, weekday int) (*domain.OperatingHours, error)
}

func (m *turfRepoMock) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	return m.getByIDFn(ctx, id)
}

func (m *turfRepoMock) GetOperatingHoursForWeekday(ctx context.Context, turfID int64, weekday int) (*domain.OperatingHours, error) {
	return m.getHoursFn(ctx, turfID, weekday)
}

type bookingRepoMock struct {
	getActiveFn func(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error)
}

func (m *bookingRepoMock) GetActiveByTurfAndDate(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error) {
	return m.getActiveFn(ctx, turfID, date)
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
	return &domain.Turf{ID: 1, Name: "Green Field Arena", PricePerHour: 1200, Status: domain.TurfActive}
}

func hoursFor(weekday int, opening, closing string, available bool) *domain.OperatingHours {
	return &domain.OperatingHours{
		TurfID:      1,
		Weekday:     weekday,
		OpeningTime: types.TimeString(opening),
		ClosingTime: types.TimeString(closing),
		IsAvailable: available,
	}
}

func newTestUseCase(turfs *turfRepoMock, bookings *bookingRepoMock) *UseCase {
	uc := NewUseCase(turfs, bookings, &noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_FullDay(t *testing.T) {
	// 2026-03-16 - понедельник (weekday 0)
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
		getHoursFn: func(ctx context.Context, turfID int64, weekday int) (*domain.OperatingHours, error) {
			assert.Equal(t, 0, weekday)
			return hoursFor(0, "06:00", "22:00", true), nil
		},
	}
	bookings := &bookingRepoMock{
		getActiveFn: func(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		},
	}

	uc := newTestUseCase(turfs, bookings)
	resp, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, "2026-03-16", resp.Date)

	first := resp.Slots[0]
	assert.Equal(t, "06:00", first.StartTime)
	assert.Equal(t, "07:00", first.EndTime)
	assert.True(t, first.IsAvailable)
	assert.Equal(t, 1200.0, first.Price)

	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, "21:00", last.StartTime)
	assert.Equal(t, "22:00", last.EndTime)
}

func TestExecute_BookedSlotsMarked(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
		getHoursFn: func(ctx context.Context, turfID int64, weekday int) (*domain.OperatingHours, error) {
			return hoursFor(0, "10:00", "14:00", true), nil
		},
	}
	bookings := &bookingRepoMock{
		getActiveFn: func(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{StartTime: "11:00", EndTime: "12:00", Status: domain.StatusConfirmed},
				// Отменённое бронирование слот не занимает
				{StartTime: "12:00", EndTime: "13:00", Status: domain.StatusCancelled},
			}, nil
		},
	}

	uc := newTestUseCase(turfs, bookings)
	resp, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.True(t, resp.Slots[0].IsAvailable)  // 10:00
	assert.False(t, resp.Slots[1].IsAvailable) // 11:00 занят
	assert.True(t, resp.Slots[2].IsAvailable)  // 12:00, бронирование отменено
	assert.True(t, resp.Slots[3].IsAvailable)  // 13:00
}

func TestExecute_PartialTrailingWindowDropped(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
		getHoursFn: func(ctx context.Context, turfID int64, weekday int) (*domain.OperatingHours, error) {
			return hoursFor(0, "09:00", "12:30", true), nil
		},
	}
	bookings := &bookingRepoMock{
		getActiveFn: func(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		},
	}

	uc := newTestUseCase(turfs, bookings)
	resp, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: date})

	require.NoError(t, err)
	// Хвост 12:00-12:30 короче часа и отбрасывается
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "11:00", resp.Slots[2].StartTime)
	assert.Equal(t, "12:00", resp.Slots[2].EndTime)
}

func TestExecute_EmptyForPastDate(t *testing.T) {
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
	}

	uc := newTestUseCase(turfs, nil)
	resp, err := uc.Execute(context.Background(), &Request{
		TurfID: 1,
		Date:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_EmptyForClosedDay(t *testing.T) {
	date := time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC) // воскресенье

	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
		getHoursFn: func(ctx context.Context, turfID int64, weekday int) (*domain.OperatingHours, error) {
			assert.Equal(t, 6, weekday)
			return hoursFor(6, "06:00", "22:00", false), nil
		},
	}

	uc := newTestUseCase(turfs, nil)
	resp, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_EmptyWhenNoSchedule(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return activeTurf(), nil },
		getHoursFn: func(ctx context.Context, turfID int64, weekday int) (*domain.OperatingHours, error) {
			return nil, turfRepo.ErrHoursNotFound
		},
	}

	uc := newTestUseCase(turfs, nil)
	resp, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TurfNotFound(t *testing.T) {
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return nil, turfRepo.ErrTurfNotFound
		},
	}

	uc := newTestUseCase(turfs, nil)
	_, err := uc.Execute(context.Background(), &Request{
		TurfID: 99,
		Date:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestExecute_TurfNotActive(t *testing.T) {
	turfs := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return &domain.Turf{ID: 1, Status: domain.TurfInactive}, nil
		},
	}

	uc := newTestUseCase(turfs, nil)
	_, err := uc.Execute(context.Background(), &Request{
		TurfID: 1,
		Date:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTurfNotActive)
}
