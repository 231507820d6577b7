package turfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// Service сервис для работы с площадками
type Service struct {
	turfRepo  TurfRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(turfRepo TurfRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		turfRepo:  turfRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Search выполняет поиск площадок по свободному тексту и фильтрам
func (s *Service) Search(ctx context.Context, req *models.SearchTurfsRequest) (*models.TurfListResponse, error) {
	s.logger.Info("Search: query=%q, city=%q, sort=%s", req.Query, req.City, req.SortBy)

	filter := req.ToDomainFilter()

	turfs, err := s.turfRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d turfs", len(turfs))
	return models.FromDomainTurfList(turfs), nil
}

// GetByID получает детальную карточку площадки вместе с расписанием работы
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TurfDetailResponse, error) {
	s.logger.Info("GetByID: fetching turf id=%d", id)

	turf, err := s.turfRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("GetByID: turf id=%d not found", id)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("GetByID: repository error for turf id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	hours, err := s.turfRepo.GetOperatingHours(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch operating hours for turf id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - operating hours error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched turf id=%d", id)
	return models.FromDomainTurfDetail(turf, hours), nil
}

// ListCategories возвращает все категории площадок
func (s *Service) ListCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.turfRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategoryList(categories), nil
}

// Create создает новую площадку. Владельцем становится вызывающий пользователь.
func (s *Service) Create(ctx context.Context, req *models.CreateTurfRequest) (*models.TurfDetailResponse, error) {
	s.logger.Info("Create: new turf %q by user=%d", req.Name, req.OwnerID)

	if err := validateTurfInput(&req.TurfInput); err != nil {
		s.logger.Warn("Create: invalid turf data: %v", err)
		return nil, err
	}

	turf := &domain.Turf{
		OwnerID: req.OwnerID,
		Status:  domain.TurfActive,
	}
	req.TurfInput.ApplyTo(turf)

	created, err := s.turfRepo.Create(ctx, turf)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: turf id=%d created by user=%d", created.ID, req.OwnerID)
	return models.FromDomainTurfDetail(created, nil), nil
}

// Update обновляет данные площадки. Доступно только владельцу;
// статус, рейтинг и счётчики бронирований не редактируются.
func (s *Service) Update(ctx context.Context, req *models.UpdateTurfRequest) (*models.TurfDetailResponse, error) {
	s.logger.Info("Update: updating turf=%d by user=%d", req.TurfID, req.UserID)

	turf, err := s.turfRepo.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("Update: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("Update: repository error for turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Только владелец может редактировать площадку
	if turf.OwnerID != req.UserID {
		s.logger.Warn("Update: user=%d is not the owner of turf=%d", req.UserID, req.TurfID)
		return nil, ErrAccessDenied
	}

	if err := validateTurfInput(&req.TurfInput); err != nil {
		s.logger.Warn("Update: invalid turf data for turf=%d: %v", req.TurfID, err)
		return nil, err
	}

	req.TurfInput.ApplyTo(turf)

	if err := s.turfRepo.Update(ctx, turf); err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			return nil, ErrTurfNotFound
		}
		s.logger.Error("Update: repository error for turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	hours, err := s.turfRepo.GetOperatingHours(ctx, req.TurfID)
	if err != nil {
		s.logger.Error("Update: failed to fetch operating hours for turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: Update - operating hours error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated turf id=%d", req.TurfID)
	return models.FromDomainTurfDetail(turf, hours), nil
}

// UpdateAvailability заменяет расписание работы площадки.
// Доступно только владельцу; всё расписание заменяется атомарно.
func (s *Service) UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) error {
	s.logger.Info("UpdateAvailability: updating schedule for turf=%d by user=%d", req.TurfID, req.UserID)

	turf, err := s.turfRepo.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("UpdateAvailability: turf id=%d not found", req.TurfID)
			return ErrTurfNotFound
		}
		s.logger.Error("UpdateAvailability: repository error for turf id=%d: %v", req.TurfID, err)
		return fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
	}

	// Только владелец может менять расписание
	if turf.OwnerID != req.UserID {
		s.logger.Warn("UpdateAvailability: user=%d is not the owner of turf=%d", req.UserID, req.TurfID)
		return ErrAccessDenied
	}

	hours, err := s.validateHours(req)
	if err != nil {
		s.logger.Warn("UpdateAvailability: invalid schedule for turf=%d: %v", req.TurfID, err)
		return err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.turfRepo.ReplaceOperatingHours(ctx, req.TurfID, hours)
	})
	if err != nil {
		s.logger.Error("UpdateAvailability: transaction failed for turf=%d: %v", req.TurfID, err)
		return fmt.Errorf("%w: UpdateAvailability - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailability: successfully updated schedule for turf=%d", req.TurfID)
	return nil
}

// validateTurfInput проверяет редактируемые поля площадки.
// Нулевой множитель цены выходного дня заменяется единицей.
func validateTurfInput(in *models.TurfInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Address) == "" || strings.TrimSpace(in.City) == "" {
		return fmt.Errorf("%w: address and city are required", ErrInvalidInput)
	}
	if in.CategoryID <= 0 {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	switch domain.SurfaceType(in.SurfaceType) {
	case domain.SurfaceGrass, domain.SurfaceArtificial, domain.SurfaceConcrete, domain.SurfaceClay:
	default:
		return fmt.Errorf("%w: unknown surface type %q", ErrInvalidInput, in.SurfaceType)
	}

	if in.Length <= 0 || in.Width <= 0 {
		return fmt.Errorf("%w: dimensions must be positive", ErrInvalidInput)
	}
	if in.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if in.PricePerHour <= 0 {
		return fmt.Errorf("%w: price per hour must be positive", ErrInvalidInput)
	}

	if in.WeekendPriceMultiplier == 0 {
		in.WeekendPriceMultiplier = 1
	}
	if in.WeekendPriceMultiplier < 1 {
		return fmt.Errorf("%w: weekend price multiplier must be at least 1", ErrInvalidInput)
	}

	return nil
}

// validateHours проверяет расписание: день недели в пределах 0..6 без
// повторов, время в формате HH:MM, открытие строго раньше закрытия
func (s *Service) validateHours(req *models.UpdateAvailabilityRequest) ([]*domain.OperatingHours, error) {
	if len(req.Hours) == 0 {
		return nil, fmt.Errorf("%w: empty schedule", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(req.Hours))
	hours := make([]*domain.OperatingHours, 0, len(req.Hours))

	for _, h := range req.Hours {
		if h.Weekday < 0 || h.Weekday > 6 {
			return nil, fmt.Errorf("%w: weekday %d out of range", ErrInvalidInput, h.Weekday)
		}
		if seen[h.Weekday] {
			return nil, fmt.Errorf("%w: duplicate weekday %d", ErrInvalidInput, h.Weekday)
		}
		seen[h.Weekday] = true

		opening, err := types.NewTimeStringFromString(h.OpeningTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid opening time %q", ErrInvalidInput, h.OpeningTime)
		}
		closing, err := types.NewTimeStringFromString(h.ClosingTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid closing time %q", ErrInvalidInput, h.ClosingTime)
		}
		if !opening.IsBefore(closing) {
			return nil, fmt.Errorf("%w: opening time %s must be before closing time %s",
				ErrInvalidInput, opening, closing)
		}

		hours = append(hours, &domain.OperatingHours{
			TurfID:      req.TurfID,
			Weekday:     h.Weekday,
			OpeningTime: opening,
			ClosingTime: closing,
			IsAvailable: h.IsAvailable,
		})
	}

	return hours, nil
}
