package domain

import (
	"time"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// TurfStatus represents the availability state of a turf
type TurfStatus string

const (
	TurfActive      TurfStatus = "active"
	TurfInactive    TurfStatus = "inactive"
	TurfMaintenance TurfStatus = "maintenance"
)

// SurfaceType represents the playing surface of a turf
type SurfaceType string

const (
	SurfaceGrass      SurfaceType = "grass"
	SurfaceArtificial SurfaceType = "artificial"
	SurfaceConcrete   SurfaceType = "concrete"
	SurfaceClay       SurfaceType = "clay"
)

// Turf represents a bookable sports venue
type Turf struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	CategoryID  int64

	Address   string
	City      string
	State     string
	Pincode   string
	Latitude  *float64
	Longitude *float64

	SurfaceType SurfaceType
	Length      int
	Width       int
	Capacity    int

	PricePerHour float64
	// Stored per venue but not applied in slot pricing; surfaced on the
	// turf detail endpoint only
	WeekendPriceMultiplier float64

	Status        TurfStatus
	AverageRating float64
	TotalBookings int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the turf accepts bookings
func (t *Turf) IsActive() bool {
	return t.Status == TurfActive
}

// Area returns the playing area in square meters
func (t *Turf) Area() int {
	return t.Length * t.Width
}

// WeekendPricePerHour returns the hourly rate with the weekend multiplier applied
func (t *Turf) WeekendPricePerHour() float64 {
	return RoundMoney(t.PricePerHour * t.WeekendPriceMultiplier)
}

// TurfCategory represents a venue category (football, cricket, ...)
type TurfCategory struct {
	ID          int64
	Name        string
	Description string
	Icon        string
}

// OperatingHours represents opening hours of a turf for one weekday.
// At most one record exists per (turf, weekday); weekday 0 is Monday.
type OperatingHours struct {
	ID          int64
	TurfID      int64
	Weekday     int
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	IsAvailable bool
}

// WeekdayFromDate converts a calendar date to the stored weekday index (0 = Monday)
func WeekdayFromDate(date time.Time) int {
	// time.Weekday начинается с воскресенья, схема хранения - с понедельника
	return (int(date.Weekday()) + 6) % 7
}

// TurfSortKey supported sort orders for turf search
type TurfSortKey string

const (
	SortByName      TurfSortKey = "name"
	SortByPriceLow  TurfSortKey = "price_low"
	SortByPriceHigh TurfSortKey = "price_high"
	SortByRating    TurfSortKey = "rating"
	SortByNewest    TurfSortKey = "newest"
)

// TurfFilter фильтр для поиска площадок
type TurfFilter struct {
	Query      string // свободный текст: имя, описание, город, адрес
	City       string
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     TurfSortKey
	Limit      uint64
	Offset     uint64
}
