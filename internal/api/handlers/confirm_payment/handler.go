package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	confirmPayment "github.com/m04kA/SMC-TurfService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нет доступа к этому бронированию"
	msgAlreadyConfirmed   = "бронирование уже подтверждено"
	msgPaymentDeclined    = "платёж отклонён: подпись не прошла проверку"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/payments/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/payments/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/payments/confirm - Booking not found: order=%s", req.OrderID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrAccessDenied):
			h.logger.Warn("POST /bookings/payments/confirm - Access denied: user_id=%d, order=%s", userID, req.OrderID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, confirmPayment.ErrAlreadyConfirmed):
			h.logger.Warn("POST /bookings/payments/confirm - Already confirmed: order=%s", req.OrderID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, confirmPayment.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings/payments/confirm - Payment declined: user_id=%d, order=%s", userID, req.OrderID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/payments/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/payments/confirm - Failed: user_id=%d, order=%s, error=%v",
				userID, req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/payments/confirm - Payment confirmed: booking_id=%d, user_id=%d",
		result.BookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
