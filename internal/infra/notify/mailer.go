package notify

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer отправляет email-уведомления через SMTP.
// Отправка не должна ломать основной сценарий: ошибки только логируются.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
	log     Logger
}

// NewMailer создает новый экземпляр почтового отправителя.
// При enabled=false все отправки превращаются в no-op.
func NewMailer(host string, port int, username, password, from string, enabled bool, log Logger) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(host, port, username, password),
		from:    from,
		enabled: enabled,
		log:     log,
	}
}

// BookingConfirmation данные для письма о подтверждении бронирования
type BookingConfirmation struct {
	To          string
	UserName    string
	BookingUID  string
	TurfName    string
	TurfCity    string
	Date        string
	StartTime   string
	EndTime     string
	TotalAmount float64
	Currency    string
}

// SendBookingConfirmation отправляет письмо о подтверждении бронирования.
// Ошибки отправки логируются и проглатываются.
func (m *Mailer) SendBookingConfirmation(data BookingConfirmation) {
	if !m.enabled {
		m.log.Info("Mailer disabled, skipping confirmation email for booking %s", data.BookingUID)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", data.To)
	msg.SetHeader("Subject", fmt.Sprintf("Booking Confirmed - %s", data.BookingUID))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking has been confirmed.\n\n"+
			"Booking ID: %s\n"+
			"Venue: %s, %s\n"+
			"Date: %s\n"+
			"Time: %s - %s\n"+
			"Amount paid: %.2f %s\n\n"+
			"See you on the field!\n",
		data.UserName,
		data.BookingUID,
		data.TurfName,
		data.TurfCity,
		data.Date,
		data.StartTime,
		data.EndTime,
		data.TotalAmount,
		data.Currency,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send confirmation email for booking %s: %v", data.BookingUID, err)
		return
	}

	m.log.Info("Confirmation email sent for booking %s to %s", data.BookingUID, data.To)
}
