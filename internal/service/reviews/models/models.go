package models

import (
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// Request модели

// AddReviewRequest запрос на добавление отзыва
type AddReviewRequest struct {
	TurfID  int64
	UserID  int64
	Rating  int
	Comment string
}

// GetReviewsRequest запрос на получение отзывов площадки
type GetReviewsRequest struct {
	TurfID int64
	Limit  uint64
	Offset uint64
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID        int64     `json:"id"`
	TurfID    int64     `json:"turfId"`
	UserID    int64     `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов площадки
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
	TotalReviews  int64            `json:"totalReviews"`
}

// AddReviewResponse ответ на добавление отзыва
type AddReviewResponse struct {
	Review        ReviewResponse `json:"review"`
	AverageRating float64        `json:"averageRating"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:        r.ID,
		TurfID:    r.TurfID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review, avg float64, total int64) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews:       make([]ReviewResponse, 0, len(reviews)),
		AverageRating: avg,
		TotalReviews:  total,
	}

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}

	return resp
}
