package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование по ордеру не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrAccessDenied возвращается при попытке подтвердить чужое бронирование
	ErrAccessDenied = errors.New("confirm_payment: access denied")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении
	ErrAlreadyConfirmed = errors.New("confirm_payment: booking is already confirmed")

	// ErrPaymentDeclined возвращается, когда подпись платежа не прошла проверку
	ErrPaymentDeclined = errors.New("confirm_payment: payment declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
