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

	completeBookingHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/get_booking"
	getClosureHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/get_closure"
	getDayBookingsHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/get_day_bookings"
	getProfitReportHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/get_profit_report"
	getWeekBookingsHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/get_week_bookings"
	listClosuresHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/list_closures"
	sendProfitReportHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/send_profit_report"
	upsertClosureHandler "github.com/masterbarber/MB-BookingService/internal/api/handlers/upsert_closure"
	"github.com/masterbarber/MB-BookingService/internal/api/middleware"
	"github.com/masterbarber/MB-BookingService/internal/config"
	bookingRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/booking"
	closureRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/closure"
	whatsappClient "github.com/masterbarber/MB-BookingService/internal/integrations/whatsapp"
	availabilityService "github.com/masterbarber/MB-BookingService/internal/service/availability"
	bookingsService "github.com/masterbarber/MB-BookingService/internal/service/bookings"
	reportsService "github.com/masterbarber/MB-BookingService/internal/service/reports"
	createBookingUC "github.com/masterbarber/MB-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/masterbarber/MB-BookingService/internal/usecase/get_available_slots"
	"github.com/masterbarber/MB-BookingService/pkg/dbmetrics"
	"github.com/masterbarber/MB-BookingService/pkg/logger"
	"github.com/masterbarber/MB-BookingService/pkg/metrics"
	"github.com/masterbarber/MB-BookingService/pkg/simpletxmanager"
	"github.com/masterbarber/MB-BookingService/pkg/txmanager"
)

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

	log.Info("Starting MB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем WhatsApp клиент для уведомлений владельца
	whatsapp := whatsappClient.NewClient(
		cfg.WhatsApp.GatewayURL,
		cfg.WhatsApp.OwnerPhone,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		log,
	)
	if cfg.WhatsApp.GatewayURL != "" {
		log.Info("WhatsApp notifications enabled (gateway=%s, owner=%s)",
			cfg.WhatsApp.GatewayURL, cfg.WhatsApp.OwnerPhone)
	} else {
		log.Warn("WhatsApp gateway not configured, notifications disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		closureRepository *closureRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	availabilitySvc := availabilityService.NewService(closureRepository, log)
	reportSvc := reportsService.NewService(bookingRepository, whatsapp, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		closureRepository,
		txMgr,
		whatsapp,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		closureRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getWeekBookings := getWeekBookingsHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	upsertClosure := upsertClosureHandler.NewHandler(availabilitySvc, log)
	getClosure := getClosureHandler.NewHandler(availabilitySvc, log)
	listClosures := listClosuresHandler.NewHandler(availabilitySvc, log)
	getProfitReport := getProfitReportHandler.NewHandler(reportSvc, log)
	sendProfitReport := sendProfitReportHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская запись, без аутентификации)
	// ============================================================

	// Доступные времена начала для выбранных услуг
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования (по записи или walk-in)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (владелец, требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Auth.AdminToken, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/bookings/day", getDayBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/bookings/week", getWeekBookings.Handle).Methods(http.MethodGet)

	// --- Закрытия дней ---
	protected.HandleFunc("/admin/closures", listClosures.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/closures/{date}", getClosure.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/closures/{date}", upsertClosure.Handle).Methods(http.MethodPut)

	// --- Отчеты ---
	protected.HandleFunc("/admin/reports/profit", getProfitReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/reports/profit/send", sendProfitReport.Handle).Methods(http.MethodPost)

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
