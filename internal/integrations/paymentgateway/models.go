package paymentgateway

// Order платёжный ордер, созданный на стороне шлюза
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // в минорных единицах валюты (пайсы)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
