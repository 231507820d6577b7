package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/infra/notify"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TurfService/internal/integrations/paymentgateway"
)

// UseCase use case для подтверждения оплаты бронирования
type UseCase struct {
	bookingRepo BookingRepository
	turfRepo    TurfRepository
	gateway     PaymentGateway
	userClient  UserServiceClient
	mailer      Mailer
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	turfRepo TurfRepository,
	gateway PaymentGateway,
	userClient UserServiceClient,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		turfRepo:    turfRepo,
		gateway:     gateway,
		userClient:  userClient,
		mailer:      mailer,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения оплаты.
// Подпись платежа проверяется локально через HMAC; при несовпадении платёж
// помечается неуспешным. После подтверждения отправляется email-уведомление,
// сбои уведомления не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: user=%d, order=%s, payment=%s", req.UserID, req.OrderID, req.PaymentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим бронирование по ордеру
	booking, err := uc.bookingRepo.GetByPaymentOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmPayment: booking for order=%s not found", req.OrderID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: repository error for order=%s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 3. Подтвердить оплату может только владелец бронирования
	if booking.UserID != req.UserID {
		uc.logger.Warn("ConfirmPayment: access denied for user=%d to booking id=%d", req.UserID, booking.ID)
		return nil, ErrAccessDenied
	}

	// 4. Повторное подтверждение не допускается
	if booking.PaymentStatus == domain.PaymentPaid {
		uc.logger.Warn("ConfirmPayment: booking id=%d is already paid", booking.ID)
		return nil, ErrAlreadyConfirmed
	}

	// 5. Проверяем подпись платежа
	if err := uc.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		if errors.Is(err, paymentgateway.ErrSignatureMismatch) {
			uc.logger.Warn("ConfirmPayment: signature mismatch for booking id=%d", booking.ID)
			if markErr := uc.bookingRepo.MarkPaymentFailed(ctx, booking.ID); markErr != nil {
				uc.logger.Error("ConfirmPayment: failed to mark payment failed for booking id=%d: %v",
					booking.ID, markErr)
			}
			return nil, ErrPaymentDeclined
		}
		uc.logger.Error("ConfirmPayment: signature verification error for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: signature verification error: %v", ErrInternal, err)
	}

	// 6. Подтверждаем бронирование и фиксируем платёж
	if err := uc.bookingRepo.ConfirmPayment(ctx, booking.ID, req.PaymentID, req.Signature); err != nil {
		uc.logger.Error("ConfirmPayment: failed to confirm booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	payment := &domain.Payment{
		BookingID:     booking.ID,
		Method:        domain.MethodGateway,
		Amount:        booking.TotalAmount,
		TransactionID: req.PaymentID,
		IsSuccessful:  true,
	}
	if _, err := uc.bookingRepo.CreatePayment(ctx, payment); err != nil {
		uc.logger.Error("ConfirmPayment: failed to record payment for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
	}

	// 7. Увеличиваем счётчик бронирований площадки; сбой не критичен
	if err := uc.turfRepo.IncrementTotalBookings(ctx, booking.TurfID); err != nil {
		uc.logger.Error("ConfirmPayment: failed to increment bookings counter for turf=%d: %v",
			booking.TurfID, err)
	}

	// 8. Отправляем email-уведомление; сбои не влияют на результат
	uc.sendConfirmationEmail(ctx, booking)

	uc.logger.Info("ConfirmPayment: successfully confirmed booking id=%d", booking.ID)

	return &Response{
		BookingID:     booking.ID,
		UID:           booking.UID,
		Status:        string(domain.StatusConfirmed),
		PaymentStatus: string(domain.PaymentPaid),
	}, nil
}

// sendConfirmationEmail получает профиль пользователя и отправляет письмо.
// При недоступности UserService уведомление пропускается.
func (uc *UseCase) sendConfirmationEmail(ctx context.Context, booking *domain.Booking) {
	user, err := uc.userClient.GetUserWithGracefulDegradation(ctx, booking.UserID)
	if err != nil {
		uc.logger.Warn("ConfirmPayment: skipping confirmation email for booking id=%d: %v", booking.ID, err)
		return
	}

	uc.mailer.SendBookingConfirmation(notify.BookingConfirmation{
		To:          user.Email,
		UserName:    user.Name,
		BookingUID:  booking.UID,
		TurfName:    booking.TurfName,
		TurfCity:    booking.TurfCity,
		Date:        booking.Date.Format(domain.DateFormat),
		StartTime:   booking.StartTime.String(),
		EndTime:     booking.EndTime.String(),
		TotalAmount: booking.TotalAmount,
		Currency:    uc.gateway.Currency(),
	})
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.OrderID == "" {
		return fmt.Errorf("%w: orderID is required", ErrInvalidInput)
	}
	if req.PaymentID == "" {
		return fmt.Errorf("%w: paymentID is required", ErrInvalidInput)
	}
	if req.Signature == "" {
		return fmt.Errorf("%w: signature is required", ErrInvalidInput)
	}
	return nil
}
