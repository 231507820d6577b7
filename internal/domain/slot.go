package domain

import "github.com/m04kA/SMC-TurfService/pkg/types"

// Slot represents a fixed-length candidate booking window derived from
// a turf's operating hours
type Slot struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	Price       float64
}
