package domain

import "time"

// Review represents a per-user rating of a turf.
// At most one review exists per (turf, user).
type Review struct {
	ID        int64
	TurfID    int64
	UserID    int64
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}

// ValidRating reports whether the rating is within bounds
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
