package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/infra/notify"
	"github.com/m04kA/SMC-TurfService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPaymentOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, id int64, paymentID, signature string) error
	MarkPaymentFailed(ctx context.Context, id int64) error
	CreatePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

// TurfRepository интерфейс репозитория площадок
type TurfRepository interface {
	IncrementTotalBookings(ctx context.Context, turfID int64) error
}

// PaymentGateway интерфейс клиента платёжного шлюза
type PaymentGateway interface {
	VerifySignature(orderID, paymentID, signature string) error
	Currency() string
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.User, error)
}

// Mailer интерфейс отправителя email-уведомлений
type Mailer interface {
	SendBookingConfirmation(data notify.BookingConfirmation)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
