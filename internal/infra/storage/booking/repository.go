package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"uid",
	"turf_id",
	"user_id",
	"booking_date",
	"start_time",
	"end_time",
	"duration_hours",
	"base_price",
	"tax_amount",
	"discount_amount",
	"total_amount",
	"status",
	"payment_status",
	"contact_number",
	"special_requests",
	"turf_name",
	"turf_city",
	"payment_order_id",
	"payment_id",
	"payment_signature",
	"created_at",
	"updated_at",
	"confirmed_at",
	"cancelled_at",
}

// Repository репозиторий для работы с бронированиями, платежами и отменами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникальности (turf_id, booking_date, start_time, end_time)
// маппится в ErrDuplicateSlot - это страховка от гонки между проверкой
// занятости слота и вставкой.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"uid",
			"turf_id",
			"user_id",
			"booking_date",
			"start_time",
			"end_time",
			"duration_hours",
			"base_price",
			"tax_amount",
			"discount_amount",
			"total_amount",
			"status",
			"payment_status",
			"contact_number",
			"special_requests",
			"turf_name",
			"turf_city",
		).
		Values(
			b.UID,
			b.TurfID,
			b.UserID,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.DurationHours,
			b.BasePrice,
			b.TaxAmount,
			b.DiscountAmount,
			b.TotalAmount,
			b.Status,
			b.PaymentStatus,
			b.ContactNumber,
			b.SpecialRequests,
			b.TurfName,
			b.TurfCity,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByPaymentOrderID получает бронирование по идентификатору платёжного ордера
func (r *Repository) GetByPaymentOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"payment_order_id": orderID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ExistsActiveSlot проверяет, занято ли точное окно (дата, начало, конец)
// активным бронированием (pending/confirmed).
// Проверка по точному совпадению кортежа, не по пересечению интервалов.
// Внутри транзакции добавляет FOR UPDATE для блокировки найденных строк.
func (r *Repository) ExistsActiveSlot(ctx context.Context, turfID int64, date time.Time, start, end string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"turf_id":      turfID,
			"booking_date": date,
			"start_time":   start,
			"end_time":     end,
			"status":       domain.ActiveStatuses,
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveSlot - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveSlot - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetActiveByTurfAndDate получает активные бронирования площадки на дату
// Используется генератором слотов для разметки занятых окон
func (r *Repository) GetActiveByTurfAndDate(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"turf_id":      turfID,
			"booking_date": date,
			"status":       domain.ActiveStatuses,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTurfAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTurfAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByUserID получает бронирования пользователя (новые первыми)
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetRecentByUserID получает последние limit бронирований пользователя
// Используется генератором PDF-отчётов
func (r *Repository) GetRecentByUserID(ctx context.Context, userID int64, limit uint64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRecentByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecentByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByTurfWithFilter получает бронирования площадки с фильтрацией
// по периоду и статусу (для владельца площадки)
func (r *Repository) GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"turf_id": filter.TurfID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// SetPaymentOrder сохраняет идентификатор платёжного ордера, выданный шлюзом
func (r *Repository) SetPaymentOrder(ctx context.Context, id int64, orderID string) error {
	return r.update(ctx, "SetPaymentOrder", id, map[string]interface{}{
		"payment_order_id": orderID,
	})
}

// ConfirmPayment переводит бронирование в confirmed/paid и сохраняет
// идентификаторы платежа и подпись как есть
func (r *Repository) ConfirmPayment(ctx context.Context, id int64, paymentID, signature string) error {
	return r.update(ctx, "ConfirmPayment", id, map[string]interface{}{
		"status":            domain.StatusConfirmed,
		"payment_status":    domain.PaymentPaid,
		"payment_id":        paymentID,
		"payment_signature": signature,
		"confirmed_at":      squirrel.Expr("NOW()"),
	})
}

// MarkPaymentFailed помечает платёж неуспешным; статус бронирования не меняется
func (r *Repository) MarkPaymentFailed(ctx context.Context, id int64) error {
	return r.update(ctx, "MarkPaymentFailed", id, map[string]interface{}{
		"payment_status": domain.PaymentFailed,
	})
}

// Cancel отменяет бронирование
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	return r.update(ctx, "Cancel", id, map[string]interface{}{
		"status":       domain.StatusCancelled,
		"cancelled_at": squirrel.Expr("NOW()"),
	})
}

func (r *Repository) update(ctx context.Context, op string, id int64, sets map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").Where(squirrel.Eq{"id": id})
	updateBuilder = updateBuilder.SetMap(sets)

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CreatePayment создает запись о платеже (one-to-one с бронированием)
func (r *Repository) CreatePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"payment_method",
			"amount",
			"transaction_id",
			"is_successful",
			"failure_reason",
		).
		Values(
			p.BookingID,
			p.Method,
			p.Amount,
			p.TransactionID,
			p.IsSuccessful,
			p.FailureReason,
		).
		Suffix("RETURNING id, payment_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePayment - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePayment - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// CreateCancellation создает запись об отмене бронирования
func (r *Repository) CreateCancellation(ctx context.Context, c *domain.Cancellation) (*domain.Cancellation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_cancellations").
		Columns(
			"booking_id",
			"reason",
			"description",
			"cancelled_by",
			"refund_amount",
			"refund_processed",
		).
		Values(
			c.BookingID,
			c.Reason,
			c.Description,
			c.CancelledBy,
			c.RefundAmount,
			c.RefundProcessed,
		).
		Suffix("RETURNING id, cancelled_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCancellation - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CancelledAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCancellation - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// scanBooking сканирует одну строку в domain.Booking
func scanBooking(row squirrel.RowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UID,
		&b.TurfID,
		&b.UserID,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.DurationHours,
		&b.BasePrice,
		&b.TaxAmount,
		&b.DiscountAmount,
		&b.TotalAmount,
		&b.Status,
		&b.PaymentStatus,
		&b.ContactNumber,
		&b.SpecialRequests,
		&b.TurfName,
		&b.TurfCity,
		&b.PaymentOrderID,
		&b.PaymentID,
		&b.PaymentSignature,
		&createdAt,
		&updatedAt,
		&b.ConfirmedAt,
		&b.CancelledAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
