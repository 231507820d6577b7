package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

var (
	// ErrInvalidSortKey возвращается при некорректном ключе сортировки
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// Request модели

// SearchTurfsRequest запрос на поиск площадок
type SearchTurfsRequest struct {
	Query      string
	City       string
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string
	Limit      uint64
	Offset     uint64
}

// ToDomainFilter конвертирует request в domain фильтр.
// Неизвестный ключ сортировки заменяется сортировкой по имени,
// лимит ограничивается сверху и снизу значениями по умолчанию.
func (r *SearchTurfsRequest) ToDomainFilter() domain.TurfFilter {
	sortBy := domain.TurfSortKey(r.SortBy)
	switch sortBy {
	case domain.SortByName, domain.SortByPriceLow, domain.SortByPriceHigh,
		domain.SortByRating, domain.SortByNewest:
	default:
		sortBy = domain.SortByName
	}

	limit := r.Limit
	if limit == 0 {
		limit = domain.DefaultSearchLimit
	}
	if limit > domain.MaxSearchLimit {
		limit = domain.MaxSearchLimit
	}

	return domain.TurfFilter{
		Query:      r.Query,
		City:       r.City,
		CategoryID: r.CategoryID,
		MinPrice:   r.MinPrice,
		MaxPrice:   r.MaxPrice,
		SortBy:     sortBy,
		Limit:      limit,
		Offset:     r.Offset,
	}
}

// OperatingHoursInput входные данные расписания работы на один день недели
type OperatingHoursInput struct {
	Weekday     int    `json:"weekday"` // 0 = понедельник
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// UpdateAvailabilityRequest запрос на обновление расписания площадки
type UpdateAvailabilityRequest struct {
	TurfID int64
	UserID int64
	Hours  []OperatingHoursInput
}

// TurfInput редактируемые поля площадки, общие для создания и обновления
type TurfInput struct {
	Name        string
	Description string
	CategoryID  int64

	Address   string
	City      string
	State     string
	Pincode   string
	Latitude  *float64
	Longitude *float64

	SurfaceType string
	Length      int
	Width       int
	Capacity    int

	PricePerHour           float64
	WeekendPriceMultiplier float64
}

// ApplyTo переносит редактируемые поля в domain модель
func (in *TurfInput) ApplyTo(t *domain.Turf) {
	t.Name = in.Name
	t.Description = in.Description
	t.CategoryID = in.CategoryID
	t.Address = in.Address
	t.City = in.City
	t.State = in.State
	t.Pincode = in.Pincode
	t.Latitude = in.Latitude
	t.Longitude = in.Longitude
	t.SurfaceType = domain.SurfaceType(in.SurfaceType)
	t.Length = in.Length
	t.Width = in.Width
	t.Capacity = in.Capacity
	t.PricePerHour = in.PricePerHour
	t.WeekendPriceMultiplier = in.WeekendPriceMultiplier
}

// CreateTurfRequest запрос владельца на создание площадки
type CreateTurfRequest struct {
	OwnerID int64
	TurfInput
}

// UpdateTurfRequest запрос владельца на обновление площадки
type UpdateTurfRequest struct {
	TurfID int64
	UserID int64
	TurfInput
}

// Response модели

// TurfResponse краткие данные площадки (для результатов поиска)
type TurfResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CategoryID   int64   `json:"categoryId"`
	City         string  `json:"city"`
	Address      string  `json:"address"`
	SurfaceType  string  `json:"surfaceType"`
	PricePerHour float64 `json:"pricePerHour"`
	Status       string  `json:"status"`

	AverageRating float64 `json:"averageRating"`
	TotalBookings int64   `json:"totalBookings"`
}

// TurfListResponse ответ со списком площадок
type TurfListResponse struct {
	Turfs []TurfResponse `json:"turfs"`
}

// OperatingHoursResponse расписание работы на один день недели
type OperatingHoursResponse struct {
	Weekday     int    `json:"weekday"` // 0 = понедельник
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// TurfDetailResponse полные данные площадки
type TurfDetailResponse struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"ownerId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`

	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Pincode   string   `json:"pincode"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	SurfaceType string `json:"surfaceType"`
	Length      int    `json:"length"`
	Width       int    `json:"width"`
	Area        int    `json:"area"`
	Capacity    int    `json:"capacity"`

	PricePerHour        float64 `json:"pricePerHour"`
	WeekendPricePerHour float64 `json:"weekendPricePerHour"`

	Status        string  `json:"status"`
	AverageRating float64 `json:"averageRating"`
	TotalBookings int64   `json:"totalBookings"`

	OperatingHours []OperatingHoursResponse `json:"operatingHours"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryResponse категория площадок
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// Методы конвертации

// FromDomainTurf конвертирует domain модель в краткое DTO
func FromDomainTurf(t *domain.Turf) *TurfResponse {
	if t == nil {
		return nil
	}

	return &TurfResponse{
		ID:            t.ID,
		Name:          t.Name,
		CategoryID:    t.CategoryID,
		City:          t.City,
		Address:       t.Address,
		SurfaceType:   string(t.SurfaceType),
		PricePerHour:  t.PricePerHour,
		Status:        string(t.Status),
		AverageRating: t.AverageRating,
		TotalBookings: t.TotalBookings,
	}
}

// FromDomainTurfList конвертирует список domain моделей в DTO
func FromDomainTurfList(turfs []*domain.Turf) *TurfListResponse {
	resp := &TurfListResponse{
		Turfs: make([]TurfResponse, 0, len(turfs)),
	}

	for _, turf := range turfs {
		if turfResp := FromDomainTurf(turf); turfResp != nil {
			resp.Turfs = append(resp.Turfs, *turfResp)
		}
	}

	return resp
}

// FromDomainTurfDetail конвертирует domain модель и расписание в детальное DTO
func FromDomainTurfDetail(t *domain.Turf, hours []*domain.OperatingHours) *TurfDetailResponse {
	if t == nil {
		return nil
	}

	resp := &TurfDetailResponse{
		ID:                  t.ID,
		OwnerID:             t.OwnerID,
		Name:                t.Name,
		Description:         t.Description,
		CategoryID:          t.CategoryID,
		Address:             t.Address,
		City:                t.City,
		State:               t.State,
		Pincode:             t.Pincode,
		Latitude:            t.Latitude,
		Longitude:           t.Longitude,
		SurfaceType:         string(t.SurfaceType),
		Length:              t.Length,
		Width:               t.Width,
		Area:                t.Area(),
		Capacity:            t.Capacity,
		PricePerHour:        t.PricePerHour,
		WeekendPricePerHour: t.WeekendPricePerHour(),
		Status:              string(t.Status),
		AverageRating:       t.AverageRating,
		TotalBookings:       t.TotalBookings,
		OperatingHours:      make([]OperatingHoursResponse, 0, len(hours)),
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}

	for _, h := range hours {
		resp.OperatingHours = append(resp.OperatingHours, OperatingHoursResponse{
			Weekday:     h.Weekday,
			OpeningTime: h.OpeningTime.String(),
			ClosingTime: h.ClosingTime.String(),
			IsAvailable: h.IsAvailable,
		})
	}

	return resp
}

// FromDomainCategoryList конвертирует список категорий в DTO
func FromDomainCategoryList(categories []*domain.TurfCategory) *CategoryListResponse {
	resp := &CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}

	for _, c := range categories {
		resp.Categories = append(resp.Categories, CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
		})
	}

	return resp
}
