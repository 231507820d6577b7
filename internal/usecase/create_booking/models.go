package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID пользователя
	TurfID          int64            // ID площадки
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	EndTime         types.TimeString // Время окончания (например, "12:00")
	ContactNumber   string           // Контактный телефон
	SpecialRequests *string          // Пожелания (опционально)
}

// PaymentInfo данные для оплаты на стороне клиента
type PaymentInfo struct {
	OrderID  string // ID ордера в платёжном шлюзе
	Amount   int64  // Сумма в минорных единицах валюты (пайсы)
	Currency string
	KeyID    string // Публичный ключ шлюза для чекаута
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	UID           string           // Публичный идентификатор
	TurfID        int64            // ID площадки
	UserID        int64            // ID пользователя
	BookingDate   time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время окончания
	DurationHours float64          // Длительность в часах

	BasePrice      float64 // Стоимость аренды
	TaxAmount      float64 // Налог (18% GST)
	DiscountAmount float64 // Скидка
	TotalAmount    float64 // Итоговая сумма

	Status        string // Статус бронирования
	PaymentStatus string // Статус оплаты

	// Денормализованные данные площадки
	TurfName string
	TurfCity string

	Payment PaymentInfo // Данные для оплаты

	CreatedAt time.Time
	UpdatedAt time.Time
}
