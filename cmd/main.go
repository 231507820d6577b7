package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addReviewHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/add_review"
	bookingReceiptHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/booking_receipt"
	bookingReportHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/booking_report"
	cancelBookingHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/cancel_booking"
	confirmPaymentHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/create_booking"
	createTurfHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/create_turf"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_booking"
	getTurfHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_turf"
	getTurfBookingsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_turf_bookings"
	getTurfCategoriesHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_turf_categories"
	getTurfReviewsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_turf_reviews"
	getUserBookingsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_user_bookings"
	searchTurfsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/search_turfs"
	updateTurfHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/update_turf"
	updateTurfAvailabilityHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/update_turf_availability"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/config"
	"github.com/m04kA/SMC-TurfService/internal/infra/notify"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/review"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/integrations/paymentgateway"
	userServiceClient "github.com/m04kA/SMC-TurfService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/SMC-TurfService/internal/service/bookings"
	reportsService "github.com/m04kA/SMC-TurfService/internal/service/reports"
	reviewsService "github.com/m04kA/SMC-TurfService/internal/service/reviews"
	turfsService "github.com/m04kA/SMC-TurfService/internal/service/turfs"
	confirmPaymentUC "github.com/m04kA/SMC-TurfService/internal/usecase/confirm_payment"
	createBookingUC "github.com/m04kA/SMC-TurfService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-TurfService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/logger"
	"github.com/m04kA/SMC-TurfService/pkg/metrics"
	"github.com/m04kA/SMC-TurfService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TurfService/pkg/txmanager"
)

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TurfService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	gatewayClient := paymentgateway.NewClient(
		cfg.Payments.BaseURL,
		cfg.Payments.KeyID,
		cfg.Payments.KeySecret,
		cfg.Payments.Currency,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	mailer := notify.NewMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.Enabled,
		log,
	)
	log.Info("Integration clients initialized (PaymentGateway=%s, UserService=%s, SMTP enabled=%t)",
		cfg.Payments.BaseURL, cfg.UserService.URL, cfg.SMTP.Enabled)

	// Интерфейс для transaction manager (переключается по конфигурации метрик)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		turfRepository    *turfRepo.Repository
		reviewRepository  *reviewRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		turfRepository = turfRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		turfRepository = turfRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		turfRepository,
		txMgr,
		realTimeProvider{},
		log,
	)
	turfSvc := turfsService.NewService(turfRepository, txMgr, log)
	reviewSvc := reviewsService.NewService(reviewRepository, turfRepository, txMgr, log)
	reportSvc := reportsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		turfRepository,
		gatewayClient,
		txMgr,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		turfRepository,
		gatewayClient,
		userClient,
		mailer,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		turfRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getTurfBookings := getTurfBookingsHandler.NewHandler(bookingSvc, log)
	searchTurfs := searchTurfsHandler.NewHandler(turfSvc, log)
	getTurf := getTurfHandler.NewHandler(turfSvc, log)
	getTurfCategories := getTurfCategoriesHandler.NewHandler(turfSvc, log)
	createTurf := createTurfHandler.NewHandler(turfSvc, log)
	updateTurf := updateTurfHandler.NewHandler(turfSvc, log)
	updateTurfAvailability := updateTurfAvailabilityHandler.NewHandler(turfSvc, log)
	addReview := addReviewHandler.NewHandler(reviewSvc, log)
	getTurfReviews := getTurfReviewsHandler.NewHandler(reviewSvc, log)
	bookingReceipt := bookingReceiptHandler.NewHandler(reportSvc, log)
	bookingReport := bookingReportHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог площадок
	api.HandleFunc("/turfs", searchTurfs.Handle).Methods(http.MethodGet)
	api.HandleFunc("/turfs/categories", getTurfCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/turfs/{id:[0-9]+}", getTurf.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/turfs/{id:[0-9]+}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Отзывы о площадке
	api.HandleFunc("/turfs/{id:[0-9]+}/reviews", getTurfReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/report", bookingReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/payments/confirm", confirmPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id:[0-9]+}/receipt", bookingReceipt.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для владельцев) ---
	protected.HandleFunc("/turfs", createTurf.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/turfs/{id:[0-9]+}", updateTurf.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/turfs/{id:[0-9]+}/bookings", getTurfBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/turfs/{id:[0-9]+}/availability", updateTurfAvailability.Handle).Methods(http.MethodPut)

	// --- Отзывы ---
	protected.HandleFunc("/turfs/{id:[0-9]+}/reviews", addReview.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
