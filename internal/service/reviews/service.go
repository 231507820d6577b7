package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	reviewRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/review"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/reviews/models"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo ReviewRepository
	turfRepo   TurfRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	turfRepo TurfRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		turfRepo:   turfRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Add добавляет отзыв о площадке.
// Пользователь может оставить не более одного отзыва на площадку.
// Средняя оценка площадки пересчитывается как среднее арифметическое
// всех оценок; вставка отзыва и пересчёт выполняются в одной транзакции.
func (s *Service) Add(ctx context.Context, req *models.AddReviewRequest) (*models.AddReviewResponse, error) {
	s.logger.Info("Add: adding review for turf=%d by user=%d, rating=%d", req.TurfID, req.UserID, req.Rating)

	if !domain.ValidRating(req.Rating) {
		s.logger.Warn("Add: invalid rating=%d for turf=%d", req.Rating, req.TurfID)
		return nil, ErrInvalidRating
	}

	if strings.TrimSpace(req.Comment) == "" {
		s.logger.Warn("Add: empty comment for turf=%d", req.TurfID)
		return nil, fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}

	// Площадка должна существовать
	if _, err := s.turfRepo.GetByID(ctx, req.TurfID); err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("Add: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("Add: repository error for turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	review := &domain.Review{
		TurfID:  req.TurfID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	var avg float64

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.reviewRepo.ExistsByTurfAndUser(ctx, req.TurfID, req.UserID)
		if err != nil {
			return fmt.Errorf("check existing review: %w", err)
		}
		if exists {
			return ErrDuplicateReview
		}

		if _, err := s.reviewRepo.Create(ctx, review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		avg, _, err = s.reviewRepo.AverageRating(ctx, req.TurfID)
		if err != nil {
			return fmt.Errorf("compute average rating: %w", err)
		}

		if err := s.turfRepo.UpdateAverageRating(ctx, req.TurfID, domain.RoundMoney(avg)); err != nil {
			return fmt.Errorf("update turf rating: %w", err)
		}

		return nil
	})
	if err != nil {
		// Уникальный индекс страхует от гонки между проверкой и вставкой
		if errors.Is(err, ErrDuplicateReview) || errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("Add: duplicate review for turf=%d by user=%d", req.TurfID, req.UserID)
			return nil, ErrDuplicateReview
		}
		s.logger.Error("Add: transaction failed for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: Add - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: review id=%d created for turf=%d, new average=%.2f", review.ID, req.TurfID, avg)
	return &models.AddReviewResponse{
		Review:        *models.FromDomainReview(review),
		AverageRating: domain.RoundMoney(avg),
	}, nil
}

// List возвращает отзывы площадки (новые первыми) вместе со сводкой оценок
func (s *Service) List(ctx context.Context, req *models.GetReviewsRequest) (*models.ReviewListResponse, error) {
	s.logger.Info("List: fetching reviews for turf=%d", req.TurfID)

	// Площадка должна существовать
	if _, err := s.turfRepo.GetByID(ctx, req.TurfID); err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("List: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("List: repository error for turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = domain.DefaultSearchLimit
	}
	if limit > domain.MaxSearchLimit {
		limit = domain.MaxSearchLimit
	}

	reviews, err := s.reviewRepo.GetByTurfID(ctx, req.TurfID, limit, req.Offset)
	if err != nil {
		s.logger.Error("List: repository error for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	avg, total, err := s.reviewRepo.AverageRating(ctx, req.TurfID)
	if err != nil {
		s.logger.Error("List: failed to compute average for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reviews for turf=%d", len(reviews), req.TurfID)
	return models.FromDomainReviewList(reviews, domain.RoundMoney(avg), total), nil
}
