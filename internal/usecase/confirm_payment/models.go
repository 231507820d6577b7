package confirm_payment

// Request модель запроса на подтверждение оплаты
type Request struct {
	UserID    int64  // ID пользователя
	OrderID   string // ID ордера в платёжном шлюзе
	PaymentID string // ID платежа в платёжном шлюзе
	Signature string // Подпись платежа (HMAC-SHA256, hex)
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	BookingID     int64  `json:"bookingId"`
	UID           string `json:"uid"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}
