package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
)

// UseCase use case для получения доступных слотов площадки на дату
type UseCase struct {
	turfRepo     TurfRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	turfRepo TurfRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		turfRepo:     turfRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Для прошедших дат, закрытых дней и дней без расписания возвращается
// пустой список слотов, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: turf=%d, date=%s", req.TurfID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	emptyResponse := &Response{
		TurfID: req.TurfID,
		Date:   req.Date.Format(domain.DateFormat),
		Slots:  []SlotResponse{},
	}

	// 2. Получаем площадку, она должна принимать бронирования
	turf, err := uc.turfRepo.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("GetAvailableSlots: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	if !turf.IsActive() {
		uc.logger.Warn("GetAvailableSlots: turf id=%d is not active, status=%s", req.TurfID, turf.Status)
		return nil, ErrTurfNotActive
	}

	// 3. На прошедшие даты слоты не выдаются
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 4. Получаем расписание на день недели
	weekday := domain.WeekdayFromDate(req.Date)
	hours, err := uc.turfRepo.GetOperatingHoursForWeekday(ctx, req.TurfID, weekday)
	if err != nil {
		if errors.Is(err, turfRepo.ErrHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: no schedule for turf=%d on weekday=%d", req.TurfID, weekday)
			return emptyResponse, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get operating hours for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	if !hours.IsAvailable {
		uc.logger.Info("GetAvailableSlots: turf=%d is closed on weekday=%d", req.TurfID, weekday)
		return emptyResponse, nil
	}

	// 5. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetActiveByTurfAndDate(ctx, req.TurfID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Разбиваем рабочие часы на часовые слоты
	slots, err := generateSlots(turf, hours, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	resp := &Response{
		TurfID: req.TurfID,
		Date:   req.Date.Format(domain.DateFormat),
		Slots:  make([]SlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsAvailable: slot.IsAvailable,
			Price:       slot.Price,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for turf=%d", len(resp.Slots), req.TurfID)
	return resp, nil
}
