package turf

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/psqlbuilder"
)

var turfColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"category_id",
	"address",
	"city",
	"state",
	"pincode",
	"latitude",
	"longitude",
	"surface_type",
	"length",
	"width",
	"capacity",
	"price_per_hour",
	"weekend_price_multiplier",
	"status",
	"average_rating",
	"total_bookings",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками, категориями и расписанием работы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку.
// Рейтинг и счётчик бронирований стартуют с нуля на уровне БД.
func (r *Repository) Create(ctx context.Context, t *domain.Turf) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turfs").
		Columns(
			"owner_id",
			"name",
			"description",
			"category_id",
			"address",
			"city",
			"state",
			"pincode",
			"latitude",
			"longitude",
			"surface_type",
			"length",
			"width",
			"capacity",
			"price_per_hour",
			"weekend_price_multiplier",
			"status",
		).
		Values(
			t.OwnerID,
			t.Name,
			t.Description,
			t.CategoryID,
			t.Address,
			t.City,
			t.State,
			t.Pincode,
			t.Latitude,
			t.Longitude,
			t.SurfaceType,
			t.Length,
			t.Width,
			t.Capacity,
			t.PricePerHour,
			t.WeekendPriceMultiplier,
			t.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// Update обновляет редактируемые поля площадки.
// Владелец, статус, рейтинг и счётчики через этот метод не меняются.
func (r *Repository) Update(ctx context.Context, t *domain.Turf) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turfs").
		SetMap(map[string]interface{}{
			"name":                     t.Name,
			"description":              t.Description,
			"category_id":              t.CategoryID,
			"address":                  t.Address,
			"city":                     t.City,
			"state":                    t.State,
			"pincode":                  t.Pincode,
			"latitude":                 t.Latitude,
			"longitude":                t.Longitude,
			"surface_type":             t.SurfaceType,
			"length":                   t.Length,
			"width":                    t.Width,
			"capacity":                 t.Capacity,
			"price_per_hour":           t.PricePerHour,
			"weekend_price_multiplier": t.WeekendPriceMultiplier,
			"updated_at":               squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTurfNotFound
	}

	return nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(turfColumns...).
		From("turfs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	turf, err := scanTurf(row)
	if err == sql.ErrNoRows {
		return nil, ErrTurfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan turf: %v", ErrScanRow, err)
	}

	return turf, nil
}

// List получает активные площадки с фильтрацией и сортировкой
// Поиск по свободному тексту покрывает имя, описание, город и адрес (ILIKE)
func (r *Repository) List(ctx context.Context, filter domain.TurfFilter) ([]*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(turfColumns...).
		From("turfs").
		Where(squirrel.Eq{"status": domain.TurfActive})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"city": pattern},
			squirrel.ILike{"address": pattern},
		})
	}

	if filter.City != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"city": "%" + filter.City + "%"})
	}

	if filter.CategoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": *filter.CategoryID})
	}

	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"price_per_hour": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price_per_hour": *filter.MaxPrice})
	}

	switch filter.SortBy {
	case domain.SortByPriceLow:
		selectBuilder = selectBuilder.OrderBy("price_per_hour ASC, name ASC")
	case domain.SortByPriceHigh:
		selectBuilder = selectBuilder.OrderBy("price_per_hour DESC, name ASC")
	case domain.SortByRating:
		selectBuilder = selectBuilder.OrderBy("average_rating DESC, name ASC")
	case domain.SortByNewest:
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	default:
		selectBuilder = selectBuilder.OrderBy("name ASC")
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	turfs := make([]*domain.Turf, 0)
	for rows.Next() {
		turf, err := scanTurf(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		turfs = append(turfs, turf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return turfs, nil
}

// ListCategories получает все категории площадок
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.TurfCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "icon").
		From("turf_categories").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.TurfCategory, 0)
	for rows.Next() {
		var c domain.TurfCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetOperatingHours получает расписание работы площадки на всю неделю
func (r *Repository) GetOperatingHours(ctx context.Context, turfID int64) ([]*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"turf_id",
		"weekday",
		"opening_time",
		"closing_time",
		"is_available",
	).
		From("turf_operating_hours").
		Where(squirrel.Eq{"turf_id": turfID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.OperatingHours, 0)
	for rows.Next() {
		var h domain.OperatingHours
		if err := rows.Scan(&h.ID, &h.TurfID, &h.Weekday, &h.OpeningTime, &h.ClosingTime, &h.IsAvailable); err != nil {
			return nil, fmt.Errorf("%w: GetOperatingHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetOperatingHoursForWeekday получает расписание площадки на один день недели (0 = понедельник)
func (r *Repository) GetOperatingHoursForWeekday(ctx context.Context, turfID int64, weekday int) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"turf_id",
		"weekday",
		"opening_time",
		"closing_time",
		"is_available",
	).
		From("turf_operating_hours").
		Where(squirrel.Eq{"turf_id": turfID, "weekday": weekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHoursForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.OperatingHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.TurfID,
		&h.Weekday,
		&h.OpeningTime,
		&h.ClosingTime,
		&h.IsAvailable,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHoursForWeekday - scan row: %v", ErrScanRow, err)
	}

	return &h, nil
}

// ReplaceOperatingHours заменяет расписание площадки целиком (delete + insert)
// Вызывается внутри транзакции, переданной через context
func (r *Repository) ReplaceOperatingHours(ctx context.Context, turfID int64, hours []*domain.OperatingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("turf_operating_hours").
		Where(squirrel.Eq{"turf_id": turfID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceOperatingHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceOperatingHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("turf_operating_hours").
		Columns("turf_id", "weekday", "opening_time", "closing_time", "is_available")

	for _, h := range hours {
		insertBuilder = insertBuilder.Values(turfID, h.Weekday, h.OpeningTime, h.ClosingTime, h.IsAvailable)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceOperatingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceOperatingHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateAverageRating обновляет сохранённый средний рейтинг площадки
func (r *Repository) UpdateAverageRating(ctx context.Context, turfID int64, avg float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turfs").
		Set("average_rating", avg).
		Where(squirrel.Eq{"id": turfID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAverageRating - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAverageRating - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAverageRating - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTurfNotFound
	}

	return nil
}

// IncrementTotalBookings увеличивает счётчик подтверждённых бронирований площадки
func (r *Repository) IncrementTotalBookings(ctx context.Context, turfID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turfs").
		Set("total_bookings", squirrel.Expr("total_bookings + 1")).
		Where(squirrel.Eq{"id": turfID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementTotalBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementTotalBookings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementTotalBookings - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTurfNotFound
	}

	return nil
}

// scanTurf сканирует одну строку в domain.Turf
func scanTurf(row squirrel.RowScanner) (*domain.Turf, error) {
	var t domain.Turf
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Name,
		&t.Description,
		&t.CategoryID,
		&t.Address,
		&t.City,
		&t.State,
		&t.Pincode,
		&t.Latitude,
		&t.Longitude,
		&t.SurfaceType,
		&t.Length,
		&t.Width,
		&t.Capacity,
		&t.PricePerHour,
		&t.WeekendPriceMultiplier,
		&t.Status,
		&t.AverageRating,
		&t.TotalBookings,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
