package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

func TestBooking_CanBeCancelled(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	booking := func(status domain.BookingStatus) *domain.Booking {
		return &domain.Booking{
			Date:      date,
			StartTime: "10:00",
			EndTime:   "12:00",
			Status:    status,
		}
	}

	tests := []struct {
		name   string
		status domain.BookingStatus
		now    time.Time
		want   bool
	}{
		{
			name:   "pending, 3 hours before start",
			status: domain.StatusPending,
			now:    time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "confirmed, 121 minutes before start",
			status: domain.StatusConfirmed,
			now:    time.Date(2026, 3, 15, 7, 59, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "exactly at the cutoff",
			status: domain.StatusConfirmed,
			now:    time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "90 minutes before start",
			status: domain.StatusConfirmed,
			now:    time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "already cancelled",
			status: domain.StatusCancelled,
			now:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "completed",
			status: domain.StatusCompleted,
			now:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "refunded",
			status: domain.StatusRefunded,
			now:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking(tt.status).CanBeCancelled(tt.now))
		})
	}
}

func TestBooking_RefundAmount(t *testing.T) {
	b := &domain.Booking{TotalAmount: 2360}
	assert.Equal(t, 1888.0, b.RefundAmount())

	b = &domain.Booking{TotalAmount: 1180.5}
	assert.Equal(t, 944.4, b.RefundAmount())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&domain.Booking{Status: domain.StatusPending}).IsActive())
	assert.True(t, (&domain.Booking{Status: domain.StatusConfirmed}).IsActive())
	assert.False(t, (&domain.Booking{Status: domain.StatusCancelled}).IsActive())
	assert.False(t, (&domain.Booking{Status: domain.StatusCompleted}).IsActive())
	assert.False(t, (&domain.Booking{Status: domain.StatusRefunded}).IsActive())
}

func TestBooking_IsPast(t *testing.T) {
	b := &domain.Booking{
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
	}

	assert.False(t, b.IsPast(time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)))
	assert.True(t, b.IsPast(time.Date(2026, 3, 15, 12, 1, 0, 0, time.UTC)))
	assert.True(t, b.IsPast(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 360.0, domain.RoundMoney(0.18*2000))
	assert.Equal(t, 33.33, domain.RoundMoney(33.3333))
	assert.Equal(t, 270.0, domain.RoundMoney(0.18*1500))
}

func TestWeekdayFromDate(t *testing.T) {
	// 2026-03-16 - понедельник
	assert.Equal(t, 0, domain.WeekdayFromDate(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
	// 2026-03-21 - суббота
	assert.Equal(t, 5, domain.WeekdayFromDate(time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)))
	// 2026-03-22 - воскресенье
	assert.Equal(t, 6, domain.WeekdayFromDate(time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)))
}

func TestTurf_WeekendPricePerHour(t *testing.T) {
	turf := &domain.Turf{PricePerHour: 1000, WeekendPriceMultiplier: 1.5}
	assert.Equal(t, 1500.0, turf.WeekendPricePerHour())

	turf = &domain.Turf{PricePerHour: 999.99, WeekendPriceMultiplier: 1.2}
	assert.Equal(t, 1199.99, turf.WeekendPricePerHour())
}
