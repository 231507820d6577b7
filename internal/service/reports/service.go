package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
)

// Валютный код пишется текстом: встроенные шрифты gofpdf не содержат
// глифа для символа рупии
const currencyLabel = "INR"

// monthlyStat агрегат отчёта за один календарный месяц
type monthlyStat struct {
	count  int
	amount float64
}

// Service сервис генерации PDF-документов: квитанции и отчёты по истории
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Receipt генерирует PDF-квитанцию по бронированию.
// Доступна только владельцу бронирования.
func (s *Service) Receipt(ctx context.Context, bookingID, userID int64) ([]byte, error) {
	s.logger.Info("Receipt: generating receipt for booking=%d, user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Receipt: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Receipt: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Receipt - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("Receipt: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Заголовок
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Booking Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Receipt for booking %s", booking.UID), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Детали бронирования
	s.writeRow(pdf, "Booking ID", booking.UID)
	s.writeRow(pdf, "Venue", fmt.Sprintf("%s, %s", booking.TurfName, booking.TurfCity))
	s.writeRow(pdf, "Date", booking.Date.Format(domain.DateFormat))
	s.writeRow(pdf, "Time", fmt.Sprintf("%s - %s", booking.StartTime, booking.EndTime))
	s.writeRow(pdf, "Duration", fmt.Sprintf("%.1f h", booking.DurationHours))
	s.writeRow(pdf, "Status", string(booking.Status))
	s.writeRow(pdf, "Payment status", string(booking.PaymentStatus))
	pdf.Ln(6)

	// Суммы
	s.writeAmountRow(pdf, "Base price", booking.BasePrice)
	s.writeAmountRow(pdf, "Tax (18% GST)", booking.TaxAmount)
	s.writeAmountRow(pdf, "Discount", booking.DiscountAmount)
	pdf.SetFont("Helvetica", "B", 11)
	s.writeAmountRow(pdf, "Total", booking.TotalAmount)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		s.logger.Error("Receipt: failed to render PDF for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Receipt - render error: %v", ErrInternal, err)
	}

	s.logger.Info("Receipt: generated %d bytes for booking=%d", buf.Len(), bookingID)
	return buf.Bytes(), nil
}

// UserReport генерирует PDF-отчёт по истории бронирований пользователя.
// В отчёт попадают последние бронирования (не более лимита) и сводка
// по количеству и потраченной сумме.
func (s *Service) UserReport(ctx context.Context, userID int64) ([]byte, error) {
	s.logger.Info("UserReport: generating report for user=%d", userID)

	bookings, err := s.bookingRepo.GetRecentByUserID(ctx, userID, domain.ReportBookingsLimit)
	if err != nil {
		s.logger.Error("UserReport: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: UserReport - repository error: %v", ErrInternal, err)
	}

	var totalSpent float64
	var confirmedCount, cancelledCount int
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusConfirmed, domain.StatusCompleted:
			totalSpent += b.TotalAmount
			confirmedCount++
		case domain.StatusCancelled, domain.StatusRefunded:
			cancelledCount++
		}
	}

	monthly, months := monthlyBreakdown(bookings)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	// Заголовок и сводка
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Booking History Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total bookings: %d", len(bookings)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Confirmed: %d, cancelled: %d", confirmedCount, cancelledCount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total spent: %.2f %s", totalSpent, currencyLabel), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Помесячная статистика
	if len(months) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, "Monthly breakdown", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, m := range months {
			stat := monthly[m]
			pdf.CellFormat(0, 6,
				fmt.Sprintf("%s: %d bookings, paid %.2f %s", m, stat.count, stat.amount, currencyLabel),
				"", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	// Шапка таблицы
	headers := []struct {
		title string
		width float64
	}{
		{"Booking ID", 60},
		{"Venue", 70},
		{"Date", 30},
		{"Time", 35},
		{"Status", 30},
		{"Amount", 35},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range headers {
		pdf.CellFormat(h.width, 8, h.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Строки таблицы
	pdf.SetFont("Helvetica", "", 8)
	for _, b := range bookings {
		pdf.CellFormat(headers[0].width, 7, b.UID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(headers[1].width, 7, fmt.Sprintf("%s, %s", b.TurfName, b.TurfCity), "1", 0, "L", false, 0, "")
		pdf.CellFormat(headers[2].width, 7, b.Date.Format(domain.DateFormat), "1", 0, "C", false, 0, "")
		pdf.CellFormat(headers[3].width, 7, fmt.Sprintf("%s - %s", b.StartTime, b.EndTime), "1", 0, "C", false, 0, "")
		pdf.CellFormat(headers[4].width, 7, string(b.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(headers[5].width, 7, fmt.Sprintf("%.2f %s", b.TotalAmount, currencyLabel), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		s.logger.Error("UserReport: failed to render PDF for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: UserReport - render error: %v", ErrInternal, err)
	}

	s.logger.Info("UserReport: generated %d bytes for user=%d", buf.Len(), userID)
	return buf.Bytes(), nil
}

// monthlyBreakdown группирует бронирования по месяцу создания.
// Количество считается по всем бронированиям, сумма — только по
// оплаченным. Месяцы возвращаются в хронологическом порядке.
func monthlyBreakdown(bookings []*domain.Booking) (map[string]*monthlyStat, []string) {
	monthly := make(map[string]*monthlyStat)
	for _, b := range bookings {
		key := b.CreatedAt.Format("2006-01")
		stat, ok := monthly[key]
		if !ok {
			stat = &monthlyStat{}
			monthly[key] = stat
		}
		stat.count++
		if b.PaymentStatus == domain.PaymentPaid {
			stat.amount += b.TotalAmount
		}
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)

	return monthly, months
}

func (s *Service) writeRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}

func (s *Service) writeAmountRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("%.2f %s", amount, currencyLabel), "", 1, "L", false, 0, "")
}
