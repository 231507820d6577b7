package paymentgateway

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payment gateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("payment gateway client: invalid response")

	// ErrSignatureMismatch возвращается, когда подпись платежа не прошла проверку
	ErrSignatureMismatch = errors.New("payment signature mismatch")
)
