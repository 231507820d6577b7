package get_available_slots

import "time"

// Request модель запроса доступных слотов
type Request struct {
	TurfID int64
	Date   time.Time
}

// SlotResponse один часовой слот
type SlotResponse struct {
	StartTime   string  `json:"startTime"` // "10:00"
	EndTime     string  `json:"endTime"`   // "11:00"
	IsAvailable bool    `json:"isAvailable"`
	Price       float64 `json:"price"`
}

// Response модель ответа со списком слотов на дату
type Response struct {
	TurfID int64          `json:"turfId"`
	Date   string         `json:"date"` // "2025-10-15"
	Slots  []SlotResponse `json:"slots"`
}
