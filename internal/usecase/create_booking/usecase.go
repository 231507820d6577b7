package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	turfRepo     TurfRepository
	gateway      PaymentGateway
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	turfRepo TurfRepository,
	gateway PaymentGateway,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		turfRepo:     turfRepo,
		gateway:      gateway,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости слота и вставка выполняются в сериализуемой транзакции,
// после чего создаётся платёжный ордер в шлюзе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, turf=%d, date=%s, time=%s-%s",
		req.UserID, req.TurfID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты и временного диапазона
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	durationHours, err := validateTimeRange(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: time range validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем площадку, она должна принимать бронирования
	turf, err := uc.turfRepo.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("CreateBooking: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateBooking: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	if !turf.IsActive() {
		uc.logger.Warn("CreateBooking: turf id=%d is not active, status=%s", req.TurfID, turf.Status)
		return nil, ErrTurfNotActive
	}

	// 4. Считаем стоимость: базовая цена по часовой ставке, налог 18%
	basePrice := domain.RoundMoney(turf.PricePerHour * durationHours)
	taxAmount := domain.RoundMoney(basePrice * domain.TaxRate)
	discountAmount := 0.0
	totalAmount := domain.RoundMoney(basePrice + taxAmount - discountAmount)

	booking := &domain.Booking{
		UID:             uuid.NewString(),
		TurfID:          req.TurfID,
		UserID:          req.UserID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationHours:   durationHours,
		BasePrice:       basePrice,
		TaxAmount:       taxAmount,
		DiscountAmount:  discountAmount,
		TotalAmount:     totalAmount,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		ContactNumber:   req.ContactNumber,
		SpecialRequests: req.SpecialRequests,
		// Денормализация данных площадки
		TurfName: turf.Name,
		TurfCity: turf.City,
	}

	// 5. Проверка занятости слота и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Окно считается занятым только при точном совпадении
		// кортежа (дата, начало, конец) с активным бронированием
		taken, err := uc.bookingRepo.ExistsActiveSlot(txCtx, req.TurfID, req.Date,
			req.StartTime.String(), req.EndTime.String())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot availability: %v", err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot %s-%s on %s already booked for turf=%d",
				req.StartTime, req.EndTime, req.Date.Format(domain.DateFormat), req.TurfID)
			return ErrSlotAlreadyBooked
		}

		// 5.2. Сохраняем бронирование
		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Создаем платёжный ордер: сумма в минорных единицах, receipt - UID
	amountPaise := int64(math.Round(totalAmount * 100))
	order, err := uc.gateway.CreateOrder(ctx, amountPaise, booking.UID)
	if err != nil {
		// Бронирование остаётся pending без ордера, клиент может повторить оплату
		uc.logger.Error("CreateBooking: payment order failed for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	if err := uc.bookingRepo.SetPaymentOrder(ctx, booking.ID, order.ID); err != nil {
		uc.logger.Error("CreateBooking: failed to store payment order for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to store payment order: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, order=%s", booking.ID, order.ID)

	return &Response{
		ID:             booking.ID,
		UID:            booking.UID,
		TurfID:         booking.TurfID,
		UserID:         booking.UserID,
		BookingDate:    booking.Date,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		DurationHours:  booking.DurationHours,
		BasePrice:      booking.BasePrice,
		TaxAmount:      booking.TaxAmount,
		DiscountAmount: booking.DiscountAmount,
		TotalAmount:    booking.TotalAmount,
		Status:         string(booking.Status),
		PaymentStatus:  string(booking.PaymentStatus),
		TurfName:       booking.TurfName,
		TurfCity:       booking.TurfCity,
		Payment: PaymentInfo{
			OrderID:  order.ID,
			Amount:   amountPaise,
			Currency: uc.gateway.Currency(),
			KeyID:    uc.gateway.KeyID(),
		},
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}, nil
}
