package get_available_slots

import (
	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// generateSlots разбивает рабочие часы на часовые слоты.
// Неполный хвостовой слот (когда окно не делится на час нацело) отбрасывается.
// Слот помечается занятым, если его время начала совпадает со временем начала
// одного из активных бронирований; цена слота - часовая ставка площадки.
func generateSlots(
	turf *domain.Turf,
	hours *domain.OperatingHours,
	bookings []*domain.Booking,
) ([]domain.Slot, error) {
	opening, err := hours.OpeningTime.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}
	closing, err := hours.ClosingTime.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}

	// Занятые времена начала
	taken := make(map[types.TimeString]bool, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			taken[b.StartTime] = true
		}
	}

	slots := make([]domain.Slot, 0)

	for start := opening; start+domain.SlotDurationMinutes <= closing; start += domain.SlotDurationMinutes {
		startTime, err := minutesToTimeString(start)
		if err != nil {
			return nil, err
		}
		endTime, err := startTime.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.Slot{
			StartTime:   startTime,
			EndTime:     endTime,
			IsAvailable: !taken[startTime],
			Price:       turf.PricePerHour,
		})
	}

	return slots, nil
}

func minutesToTimeString(minutes int) (types.TimeString, error) {
	midnight := types.TimeString("00:00")
	return midnight.AddMinutes(minutes)
}
